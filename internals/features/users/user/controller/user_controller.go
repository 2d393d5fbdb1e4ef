package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userDTO "ziswaf_backend/internals/features/users/user/dto"
	userModel "ziswaf_backend/internals/features/users/user/model"
	helper "ziswaf_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// 🟢 GET /api/users (admin) — daftar user + filter role/regu
func (ctrl *UserController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&userModel.UserModel{})
	if role := c.Query("role"); role != "" {
		q = q.Where("user_role = ?", role)
	}
	if reguID := c.Query("regu_id"); reguID != "" {
		id, err := uuid.Parse(reguID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "regu_id tidak valid")
		}
		q = q.Where("user_regu_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var users []userModel.UserModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	resp := make([]userDTO.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, userDTO.ToUserResponse(&users[i]))
	}

	return helper.Success(c, "Data user berhasil diambil", fiber.Map{
		"users":      resp,
		"pagination": helper.BuildPagination(paging, total, len(resp)),
	})
}

// 🟢 PUT /api/users/profile — update profil diri sendiri
func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body userDTO.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if body.FullName != nil {
		updates["user_full_name"] = *body.FullName
	}
	if body.City != nil {
		updates["user_city"] = *body.City
	}
	if body.Email != nil {
		updates["user_email"] = *body.Email
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_id = ?", userID).
		Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update profil")
	}

	return helper.Success(c, "Profil berhasil diperbarui", nil)
}

// 🟢 PUT /api/users/:id/role (admin) — ubah role user
func (ctrl *UserController) UpdateRole(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	var body userDTO.UpdateUserRoleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_id = ?", targetID).
		Update("user_role", body.Role)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update role")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.Success(c, "Role berhasil diperbarui", nil)
}
