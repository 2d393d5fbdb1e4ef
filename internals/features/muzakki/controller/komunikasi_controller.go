package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ziswaf_backend/internals/features/muzakki/dto"
	"ziswaf_backend/internals/features/muzakki/model"
	helper "ziswaf_backend/internals/helpers"
)

// 🟢 GET /api/muzakki/:id/komunikasi — riwayat kontak, terbaru dulu
func (ctrl *MuzakkiController) GetKomunikasi(c *fiber.Ctx) error {
	muzakkiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Muzakki ID tidak valid")
	}

	if _, err := ctrl.findOwned(c, muzakkiID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var records []model.Komunikasi
	if err := ctrl.DB.
		Where("komunikasi_muzakki_id = ?", muzakkiID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat komunikasi")
	}

	return helper.Success(c, "Riwayat komunikasi berhasil diambil", records)
}

// 🟢 POST /api/muzakki/:id/komunikasi — catat kontak baru
func (ctrl *MuzakkiController) AddKomunikasi(c *fiber.Ctx) error {
	muzakkiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Muzakki ID tidak valid")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if _, err := ctrl.findOwned(c, muzakkiID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateKomunikasiRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	record := model.Komunikasi{
		KomunikasiMuzakkiID: muzakkiID,
		KomunikasiAuthorID:  userID,
		KomunikasiType:      body.KomunikasiType,
		KomunikasiNote:      body.KomunikasiNote,
	}

	if err := ctrl.DB.Create(&record).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan komunikasi")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Komunikasi berhasil dicatat", record)
}
