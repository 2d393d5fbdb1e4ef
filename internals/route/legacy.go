// 📁 route/legacy.go
// Kompat untuk client lama yang masih memakai router endpoint-string.
// Pemetaannya memang parsial: kombinasi yang dulu tidak pernah dipetakan
// tetap menjawab 501 secara eksplisit — client lama nge-branch pada error
// ini, jangan diganti data kosong.
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	muzakkiController "ziswaf_backend/internals/features/muzakki/controller"
	reguController "ziswaf_backend/internals/features/regu/controller"
	statisticsController "ziswaf_backend/internals/features/statistics/controller"
	helper "ziswaf_backend/internals/helpers"
)

// LegacyEndpointMapped menjawab apakah kombinasi method+endpoint pernah
// dipetakan di router lama. Dipisah sebagai fungsi murni supaya gampang diuji.
func LegacyEndpointMapped(method, endpoint string) bool {
	switch endpoint {
	case "statistics":
		return method == fiber.MethodGet
	case "muzakki":
		return method == fiber.MethodGet
	case "chat":
		return method == fiber.MethodGet || method == fiber.MethodPost
	default:
		// donations GET, regus GET dan sisanya: stub yang selalu gagal.
		return false
	}
}

func legacyNotImplemented(c *fiber.Ctx) error {
	endpoint := c.Params("endpoint")
	if endpoint == "" {
		endpoint = c.Path()
	}
	return helper.Error(c, fiber.StatusNotImplemented,
		"Endpoint "+endpoint+" ("+c.Method()+") belum dipetakan")
}

// LegacyRoutes memasang permukaan router lama di bawah /api/legacy.
func LegacyRoutes(api fiber.Router, db *gorm.DB) {
	muzakkiCtrl := muzakkiController.NewMuzakkiController(db)
	reguCtrl := reguController.NewReguController(db)
	statisticsCtrl := statisticsController.NewStatisticsController(db)

	legacy := api.Group("/legacy")

	legacy.Get("/statistics/:relawan_id", statisticsCtrl.GetByRelawan)
	legacy.Get("/muzakki", muzakkiCtrl.GetByRelawan)
	legacy.Get("/chat/:regu_id", reguCtrl.GetChat)
	legacy.Post("/chat/:regu_id", reguCtrl.SendChat)

	// Semua kombinasi lain — termasuk donations GET dan regus GET — 501.
	legacy.All("/:endpoint", legacyNotImplemented)
	legacy.All("/:endpoint/*", legacyNotImplemented)
}
