package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ziswaf_backend/internals/constants"
	reportController "ziswaf_backend/internals/features/reports/controller"
	authMw "ziswaf_backend/internals/middlewares/auth"
)

func ReportRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := reportController.NewReportController(db)

	reports := api.Group("/reports",
		authMw.OnlyRoles(constants.RoleErrorAdmin("laporan"), constants.RoleAdmin))
	reports.Get("/donations/export", ctrl.ExportDonations)
}
