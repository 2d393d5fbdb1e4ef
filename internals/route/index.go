// 📁 route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ziswaf_backend/internals/configs"
	donationController "ziswaf_backend/internals/features/donations/controller"
	authMw "ziswaf_backend/internals/middlewares/auth"
	routeDetails "ziswaf_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// 🔔 Webhook Midtrans — tanpa auth, dipanggil server gateway
	app.Post("/api/donations/notification", donationController.HandleMidtransNotification)

	// 📎 File bukti yang disimpan driver lokal
	app.Static(configs.BuktiBaseURL, configs.BuktiBaseDir)

	// ===================== PRIVATE (JWT) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	api := app.Group("/api", authMw.AuthMiddleware(db))

	routeDetails.UserRoutes(api, db)
	routeDetails.MuzakkiRoutes(api, db)
	routeDetails.DonationRoutes(api, db)
	routeDetails.ReguRoutes(api, db)
	routeDetails.StatisticsRoutes(api, db)
	routeDetails.TemplateRoutes(api, db)
	routeDetails.ReportRoutes(api, db)

	// Router lama (parsial — lihat legacy.go)
	log.Println("[INFO] Setting up LegacyRoutes...")
	LegacyRoutes(api, db)
}
