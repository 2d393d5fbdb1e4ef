package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DBMiddleware menaruh koneksi GORM di locals "db".
// Dipakai handler tanpa receiver, mis. webhook notifikasi Midtrans
// yang terdaftar di luar group ber-auth.
func DBMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("db", db)
		return c.Next()
	}
}
