package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ziswaf_backend/internals/constants"
	donationController "ziswaf_backend/internals/features/donations/controller"
	authMw "ziswaf_backend/internals/middlewares/auth"
)

func DonationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := donationController.NewDonationController(db)

	donations := api.Group("/donations")
	donations.Get("/", ctrl.GetAll)
	donations.Post("/", ctrl.Create)
	donations.Post("/online", ctrl.CreateOnline)
	donations.Delete("/:id", ctrl.Delete)

	// Bukti transfer
	donations.Post("/:id/bukti", ctrl.UploadBukti)
	donations.Get("/:id/bukti", ctrl.GetBukti)

	// Kwitansi PDF
	donations.Get("/:id/receipt", ctrl.DownloadReceipt)

	// Validasi — admin saja; kolom validasi tidak tersentuh jalur lain
	donations.Put("/:id/validate",
		authMw.OnlyRoles(constants.RoleErrorAdmin("validasi donasi"), constants.RoleAdmin),
		ctrl.ValidateDonation)
	donations.Put("/:id/reject",
		authMw.OnlyRoles(constants.RoleErrorAdmin("validasi donasi"), constants.RoleAdmin),
		ctrl.Reject)
}
