// 📁 controller/donation_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ziswaf_backend/internals/constants"
	"ziswaf_backend/internals/features/donations/dto"
	"ziswaf_backend/internals/features/donations/model"
	helper "ziswaf_backend/internals/helpers"
	"ziswaf_backend/internals/helpers/storage"
)

type DonationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{DB: db, Validate: validator.New()}
}

// 🟢 GET /api/donations?relawan_id=&status=&category=
// relawan_id kosong ditolak sebelum query (scope wajib); admin boleh tanpa scope.
func (ctrl *DonationController) GetAll(c *fiber.Ctx) error {
	role := helper.GetRoleFromLocals(c)
	relawanIDStr := strings.TrimSpace(c.Query("relawan_id"))

	q := ctrl.DB.Model(&model.Donation{})

	if role != constants.RoleAdmin {
		if relawanIDStr == "" {
			return helper.Error(c, fiber.StatusBadRequest, "relawan_id wajib diisi")
		}
		relawanID, err := uuid.Parse(relawanIDStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "relawan_id tidak valid")
		}
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		if role == constants.RoleRelawan && userID != relawanID {
			return helper.Error(c, fiber.StatusForbidden, "Tidak boleh mengakses donasi relawan lain")
		}
		// Pembimbing hanya boleh melihat donasi relawan di regunya sendiri
		if role == constants.RolePembimbing && userID != relawanID {
			if err := helper.EnsureSameRegu(c, ctrl.DB, relawanID); err != nil {
				return helper.FromFiberError(c, err)
			}
		}
		q = q.Where("donation_relawan_id = ?", relawanID)
	} else if relawanIDStr != "" {
		relawanID, err := uuid.Parse(relawanIDStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "relawan_id tidak valid")
		}
		q = q.Where("donation_relawan_id = ?", relawanID)
	}

	if status := c.Query("status"); status != "" {
		q = q.Where("donation_status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("donation_category = ?", category)
	}

	paging := helper.ResolvePaging(c, 50, 500)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung donasi")
	}

	var donations []model.Donation
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data donasi")
	}

	return helper.Success(c, "Data donasi berhasil diambil", fiber.Map{
		"donations":  donations,
		"pagination": helper.BuildPagination(paging, total, len(donations)),
	})
}

// 🟢 POST /api/donations — catat donasi, opsional multipart "bukti".
// Record dibuat DULU, upload bukti belakangan. Kalau upload gagal, record
// TETAP tersimpan tanpa bukti dan error upload diteruskan ke client berikut
// donation_id supaya bukti bisa diunggah ulang. Tanpa rollback — sengaja.
func (ctrl *DonationController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateDonationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	donationType := body.DonationType
	if donationType == "" {
		donationType = "incoming"
	}

	var muzakkiID *uuid.UUID
	if body.DonationMuzakkiID != "" {
		parsed, err := uuid.Parse(body.DonationMuzakkiID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "donation_muzakki_id tidak valid")
		}
		muzakkiID = &parsed
	}

	donation := model.Donation{
		DonationRelawanID: userID,
		DonationMuzakkiID: muzakkiID,
		DonationAmount:    body.DonationAmount,
		DonationCategory:  body.DonationCategory,
		DonationType:      donationType,
		DonationNote:      body.DonationNote,
		DonationReceiptNo: helper.GenerateReceiptNumber(time.Now()),
		DonationStatus:    "pending",
	}

	// 📂 Simpan donasi ke database (langkah 1, selalu duluan)
	if err := ctrl.DB.Create(&donation).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan donasi")
	}

	// 📎 Upload bukti (langkah 2, opsional)
	if fileHeader, err := c.FormFile("bukti"); err == nil && fileHeader != nil {
		url, upErr := storage.SaveBuktiImage(fileHeader)
		if upErr != nil {
			// Donasi sudah tersimpan; laporkan gagal upload apa adanya.
			return helper.ErrorWithDetails(c, fiber.StatusInternalServerError,
				"Donasi tersimpan tapi upload bukti gagal: "+upErr.Error(),
				fiber.Map{"donation_id": donation.DonationID})
		}
		if err := ctrl.DB.Model(&donation).Update("donation_bukti_url", url).Error; err != nil {
			return helper.ErrorWithDetails(c, fiber.StatusInternalServerError,
				"Donasi tersimpan tapi gagal menautkan bukti",
				fiber.Map{"donation_id": donation.DonationID})
		}
		donation.DonationBuktiURL = url
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Donasi berhasil dicatat", donation)
}

// 🟢 POST /api/donations/:id/bukti — unggah/unggah-ulang bukti transfer
func (ctrl *DonationController) UploadBukti(c *fiber.Ctx) error {
	donationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Donation ID tidak valid")
	}

	donation, err := ctrl.findOwned(c, donationID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fileHeader, err := c.FormFile("bukti")
	if err != nil || fileHeader == nil {
		return helper.Error(c, fiber.StatusBadRequest, "File bukti wajib dilampirkan")
	}

	url, err := storage.SaveBuktiImage(fileHeader)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Upload bukti gagal: "+err.Error())
	}

	if err := ctrl.DB.Model(donation).Update("donation_bukti_url", url).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menautkan bukti")
	}

	return helper.Success(c, "Bukti transfer berhasil diunggah", fiber.Map{
		"donation_id": donation.DonationID,
		"bukti_url":   url,
	})
}

// 🟢 GET /api/donations/:id/bukti — URL bukti transfer
func (ctrl *DonationController) GetBukti(c *fiber.Ctx) error {
	donationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Donation ID tidak valid")
	}

	donation, err := ctrl.findOwned(c, donationID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if donation.DonationBuktiURL == "" {
		return helper.Error(c, fiber.StatusNotFound, "Donasi belum memiliki bukti transfer")
	}

	return helper.Success(c, "Bukti transfer ditemukan", fiber.Map{
		"donation_id": donation.DonationID,
		"bukti_url":   donation.DonationBuktiURL,
	})
}

// findOwned mengambil donasi & memastikan pencatatnya user login (admin bebas).
func (ctrl *DonationController) findOwned(c *fiber.Ctx, donationID uuid.UUID) (*model.Donation, error) {
	var donation model.Donation
	if err := ctrl.DB.First(&donation, "donation_id = ?", donationID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Donasi tidak ditemukan")
	}

	if helper.GetRoleFromLocals(c) != constants.RoleAdmin {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return nil, err
		}
		if donation.DonationRelawanID != userID {
			return nil, fiber.NewError(fiber.StatusForbidden, "Donasi ini dicatat relawan lain")
		}
	}
	return &donation, nil
}
