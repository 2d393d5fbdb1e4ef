// 📁 controller/regu_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ziswaf_backend/internals/constants"
	"ziswaf_backend/internals/features/regu/dto"
	"ziswaf_backend/internals/features/regu/model"
	userDto "ziswaf_backend/internals/features/users/user/dto"
	userModel "ziswaf_backend/internals/features/users/user/model"
	helper "ziswaf_backend/internals/helpers"
)

type ReguController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewReguController(db *gorm.DB) *ReguController {
	return &ReguController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/regus — pembimbing membuat regu baru, join code digenerate unik
func (ctrl *ReguController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateReguRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	joinCode, err := helper.EnsureUniqueJoinCode(ctrl.DB, helper.JoinCodeOptions{
		Table:            "regus",
		CodeColumn:       "regu_join_code",
		SoftDeleteColumn: "deleted_at",
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	regu := model.Regu{
		ReguName:         body.ReguName,
		ReguJoinCode:     joinCode,
		ReguPembimbingID: userID,
		ReguTargetAmount: body.ReguTargetAmount,
	}
	if err := ctrl.DB.Create(&regu).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat regu")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Regu berhasil dibuat", regu)
}

// 🟢 POST /api/regus/join — relawan bergabung lewat join code.
// Bergabung ulang ke regu yang sama dianggap sukses (idempoten).
func (ctrl *ReguController) Join(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.JoinReguRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	code := strings.ToUpper(strings.TrimSpace(body.JoinCode))

	var regu model.Regu
	if err := ctrl.DB.First(&regu, "regu_join_code = ?", code).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Join code tidak ditemukan")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	if user.ReguID != nil {
		if *user.ReguID == regu.ReguID {
			return helper.Success(c, "Sudah tergabung di regu ini", regu)
		}
		return helper.Error(c, fiber.StatusConflict, "Sudah tergabung di regu lain")
	}

	if err := ctrl.DB.Model(&user).Update("user_regu_id", regu.ReguID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal bergabung ke regu")
	}

	return helper.Success(c, "Berhasil bergabung ke regu", regu)
}

// 🟢 GET /api/regus/:id — detail regu + progres penghimpunan
func (ctrl *ReguController) GetByID(c *fiber.Ctx) error {
	reguID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Regu ID tidak valid")
	}

	regu, err := ctrl.findAccessible(c, reguID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	collected, err := ctrl.collectedAmount(reguID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung penghimpunan")
	}

	return helper.Success(c, "Detail regu berhasil diambil", fiber.Map{
		"regu":             regu,
		"collected_amount": collected,
		"target_amount":    regu.ReguTargetAmount,
	})
}

// 🟢 GET /api/regus/:id/members — daftar anggota regu
func (ctrl *ReguController) GetMembers(c *fiber.Ctx) error {
	reguID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Regu ID tidak valid")
	}

	if _, err := ctrl.findAccessible(c, reguID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var members []userModel.UserModel
	if err := ctrl.DB.
		Where("user_regu_id = ?", reguID).
		Order("user_full_name ASC").
		Find(&members).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil anggota regu")
	}

	responses := make([]userDto.UserResponse, 0, len(members))
	for i := range members {
		responses = append(responses, userDto.ToUserResponse(&members[i]))
	}

	return helper.Success(c, "Anggota regu berhasil diambil", responses)
}

// 🟢 PUT /api/regus/:id/target — pembimbing mengubah target penghimpunan
func (ctrl *ReguController) UpdateTarget(c *fiber.Ctx) error {
	reguID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Regu ID tidak valid")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.UpdateTargetRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var regu model.Regu
	if err := ctrl.DB.First(&regu, "regu_id = ?", reguID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Regu tidak ditemukan")
	}

	if helper.GetRoleFromLocals(c) != constants.RoleAdmin && regu.ReguPembimbingID != userID {
		return helper.Error(c, fiber.StatusForbidden, "Hanya pembimbing regu yang boleh mengubah target")
	}

	if err := ctrl.DB.Model(&regu).Update("regu_target_amount", body.ReguTargetAmount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengubah target")
	}

	return helper.Success(c, "Target regu berhasil diubah", fiber.Map{
		"regu_id":            regu.ReguID,
		"regu_target_amount": body.ReguTargetAmount,
	})
}

// collectedAmount menjumlahkan donasi masuk yang sudah divalidasi dari semua
// anggota regu (termasuk pembimbing).
func (ctrl *ReguController) collectedAmount(reguID uuid.UUID) (int64, error) {
	var total int64
	err := ctrl.DB.Table("donations").
		Joins("JOIN users ON users.user_id = donations.donation_relawan_id").
		Where("users.user_regu_id = ?", reguID).
		Where("donations.donation_status = ?", "validated").
		Where("donations.donation_type = ?", "incoming").
		Where("donations.deleted_at IS NULL").
		Select("COALESCE(SUM(donations.donation_amount), 0)").
		Scan(&total).Error
	return total, err
}

// findAccessible: anggota regu, pembimbingnya, atau admin.
func (ctrl *ReguController) findAccessible(c *fiber.Ctx, reguID uuid.UUID) (*model.Regu, error) {
	var regu model.Regu
	if err := ctrl.DB.First(&regu, "regu_id = ?", reguID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Regu tidak ditemukan")
	}

	if helper.GetRoleFromLocals(c) == constants.RoleAdmin {
		return &regu, nil
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	if regu.ReguPembimbingID == userID {
		return &regu, nil
	}

	var count int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_id = ? AND user_regu_id = ?", userID, reguID).
		Count(&count).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa keanggotaan")
	}
	if count == 0 {
		return nil, fiber.NewError(fiber.StatusForbidden, "Bukan anggota regu ini")
	}
	return &regu, nil
}
