package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ziswaf_backend/internals/constants"
	statisticsController "ziswaf_backend/internals/features/statistics/controller"
	authMw "ziswaf_backend/internals/middlewares/auth"
)

func StatisticsRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := statisticsController.NewStatisticsController(db)

	statistics := api.Group("/statistics")
	statistics.Get("/",
		authMw.OnlyRoles(constants.RoleErrorAdmin("statistik global"), constants.RoleAdmin),
		ctrl.GetAll)
	statistics.Get("/:relawan_id", ctrl.GetByRelawan)
}
