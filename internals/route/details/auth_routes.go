package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "ziswaf_backend/internals/features/users/auth/controller"
	"ziswaf_backend/internals/middlewares"
	authMw "ziswaf_backend/internals/middlewares/auth"
)

// 🔌 Endpoint autentikasi: OTP, login, register, Google, logout, sesi
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")

	auth.Post("/send-otp", middlewares.OtpRateLimiter(), ctrl.SendOtp)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)

	// Butuh token valid
	auth.Get("/me", authMw.AuthMiddleware(db), ctrl.Me)
	auth.Post("/logout", authMw.AuthMiddleware(db), ctrl.Logout)
}
