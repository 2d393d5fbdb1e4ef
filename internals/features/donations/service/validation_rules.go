// 📁 service/validation_rules.go
package service

import "github.com/gofiber/fiber/v2"

// Aturan transisi status donasi. Validasi bersifat final: donasi yang
// sudah tervalidasi tidak bisa divalidasi ulang maupun dihapus.

func EnsureCanValidate(status string) error {
	if status == "validated" {
		return fiber.NewError(fiber.StatusConflict, "Donasi sudah divalidasi")
	}
	return nil
}

func EnsureCanDelete(status string) error {
	if status == "validated" {
		return fiber.NewError(fiber.StatusConflict, "Donasi tervalidasi tidak bisa dihapus")
	}
	return nil
}
