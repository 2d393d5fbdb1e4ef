// helpers/regu_scope.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnsureSameRegu memastikan relawan target satu regu dengan pembimbing
// yang sedang login. Pembimbing tanpa regu ditolak sebelum menyentuh DB.
func EnsureSameRegu(c *fiber.Ctx, db *gorm.DB, relawanID uuid.UUID) error {
	reguID, ok := GetReguIDFromLocals(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "Pembimbing belum tergabung di regu")
	}

	var target struct {
		UserReguID *uuid.UUID
	}
	err := db.Table("users").
		Select("user_regu_id").
		Where("user_id = ? AND deleted_at IS NULL", relawanID).
		Take(&target).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Relawan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa regu relawan")
	}

	if target.UserReguID == nil || *target.UserReguID != reguID {
		return fiber.NewError(fiber.StatusForbidden, "Relawan bukan anggota regu Anda")
	}
	return nil
}
