// 📁 controller/muzakki_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ziswaf_backend/internals/constants"
	"ziswaf_backend/internals/features/muzakki/dto"
	"ziswaf_backend/internals/features/muzakki/model"
	helper "ziswaf_backend/internals/helpers"
)

type MuzakkiController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMuzakkiController(db *gorm.DB) *MuzakkiController {
	return &MuzakkiController{DB: db, Validate: validator.New()}
}

// 🟢 GET /api/muzakki?relawan_id=&status=&q=
// relawan_id kosong ditolak SEBELUM query DB — jangan pernah list tanpa scope.
func (ctrl *MuzakkiController) GetByRelawan(c *fiber.Ctx) error {
	relawanIDStr := strings.TrimSpace(c.Query("relawan_id"))
	if relawanIDStr == "" {
		return helper.Error(c, fiber.StatusBadRequest, "relawan_id wajib diisi")
	}
	relawanID, err := uuid.Parse(relawanIDStr)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "relawan_id tidak valid")
	}

	// Relawan hanya boleh melihat list miliknya sendiri;
	// pembimbing dibatasi ke relawan satu regu.
	role := helper.GetRoleFromLocals(c)
	if role == constants.RoleRelawan {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		if userID != relawanID {
			return helper.Error(c, fiber.StatusForbidden, "Tidak boleh mengakses muzakki relawan lain")
		}
	}
	if role == constants.RolePembimbing {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		if userID != relawanID {
			if err := helper.EnsureSameRegu(c, ctrl.DB, relawanID); err != nil {
				return helper.FromFiberError(c, err)
			}
		}
	}

	q := ctrl.DB.Model(&model.Muzakki{}).Where("muzakki_relawan_id = ?", relawanID)
	if status := c.Query("status"); status != "" {
		q = q.Where("muzakki_status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("muzakki_name ILIKE ?", "%"+search+"%")
	}

	var muzakkis []model.Muzakki
	if err := q.Order("created_at DESC").Find(&muzakkis).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data muzakki")
	}

	return helper.Success(c, "Data muzakki berhasil diambil", muzakkis)
}

// 🟢 POST /api/muzakki — buat prospek baru milik relawan yang login
func (ctrl *MuzakkiController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateMuzakkiRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	status := body.MuzakkiStatus
	if status == "" {
		status = "baru"
	}

	muzakki := model.Muzakki{
		MuzakkiName:      strings.TrimSpace(body.MuzakkiName),
		MuzakkiPhone:     strings.TrimSpace(body.MuzakkiPhone),
		MuzakkiCity:      strings.TrimSpace(body.MuzakkiCity),
		MuzakkiNotes:     body.MuzakkiNotes,
		MuzakkiStatus:    status,
		MuzakkiRelawanID: userID,
	}

	if err := ctrl.DB.Create(&muzakki).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan muzakki")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Muzakki berhasil ditambahkan", muzakki)
}

// 🟢 PUT /api/muzakki/:id — update field/status (transisi status bebas)
func (ctrl *MuzakkiController) Update(c *fiber.Ctx) error {
	muzakkiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Muzakki ID tidak valid")
	}

	var body dto.UpdateMuzakkiRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	muzakki, err := ctrl.findOwned(c, muzakkiID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	updates := map[string]interface{}{}
	if body.MuzakkiName != nil {
		updates["muzakki_name"] = strings.TrimSpace(*body.MuzakkiName)
	}
	if body.MuzakkiPhone != nil {
		updates["muzakki_phone"] = strings.TrimSpace(*body.MuzakkiPhone)
	}
	if body.MuzakkiCity != nil {
		updates["muzakki_city"] = strings.TrimSpace(*body.MuzakkiCity)
	}
	if body.MuzakkiNotes != nil {
		updates["muzakki_notes"] = *body.MuzakkiNotes
	}
	if body.MuzakkiStatus != nil {
		updates["muzakki_status"] = *body.MuzakkiStatus
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctrl.DB.Model(muzakki).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update muzakki")
	}

	return helper.Success(c, "Muzakki berhasil diperbarui", muzakki)
}

// 🟢 DELETE /api/muzakki/:id?relawan_id= — hapus eksplisit (soft delete)
func (ctrl *MuzakkiController) Delete(c *fiber.Ctx) error {
	muzakkiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Muzakki ID tidak valid")
	}

	muzakki, err := ctrl.findOwned(c, muzakkiID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// relawan_id di query dicek silang bila dikirim (kompat client lama)
	if q := strings.TrimSpace(c.Query("relawan_id")); q != "" {
		if qid, err := uuid.Parse(q); err != nil || qid != muzakki.MuzakkiRelawanID {
			return helper.Error(c, fiber.StatusForbidden, "relawan_id tidak cocok dengan pemilik muzakki")
		}
	}

	if err := ctrl.DB.Delete(muzakki).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus muzakki")
	}

	return helper.Success(c, "Muzakki berhasil dihapus", nil)
}

// findOwned mengambil muzakki & memastikan pemiliknya user login (admin bebas).
func (ctrl *MuzakkiController) findOwned(c *fiber.Ctx, muzakkiID uuid.UUID) (*model.Muzakki, error) {
	var muzakki model.Muzakki
	if err := ctrl.DB.First(&muzakki, "muzakki_id = ?", muzakkiID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Muzakki tidak ditemukan")
	}

	if helper.GetRoleFromLocals(c) != constants.RoleAdmin {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return nil, err
		}
		if muzakki.MuzakkiRelawanID != userID {
			return nil, fiber.NewError(fiber.StatusForbidden, "Muzakki ini milik relawan lain")
		}
	}
	return &muzakki, nil
}
