package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	muzakkiController "ziswaf_backend/internals/features/muzakki/controller"
)

func MuzakkiRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := muzakkiController.NewMuzakkiController(db)

	muzakki := api.Group("/muzakki")
	muzakki.Get("/", ctrl.GetByRelawan)
	muzakki.Post("/", ctrl.Create)
	muzakki.Put("/:id", ctrl.Update)
	muzakki.Delete("/:id", ctrl.Delete)

	// Riwayat komunikasi per muzakki
	muzakki.Get("/:id/komunikasi", ctrl.GetKomunikasi)
	muzakki.Post("/:id/komunikasi", ctrl.AddKomunikasi)
}
