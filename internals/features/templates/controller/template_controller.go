// 📁 controller/template_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"ziswaf_backend/internals/features/templates/dto"
	"ziswaf_backend/internals/features/templates/model"
	helper "ziswaf_backend/internals/helpers"
)

type TemplateController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTemplateController(db *gorm.DB) *TemplateController {
	return &TemplateController{DB: db, Validate: validator.New()}
}

// 🟢 GET /api/templates?category= — daftar templat pesan untuk semua role
func (ctrl *TemplateController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.MessageTemplate{})
	if category := c.Query("category"); category != "" {
		q = q.Where("template_category = ?", category)
	}

	var templates []model.MessageTemplate
	if err := q.Order("template_title ASC").Find(&templates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil templat")
	}

	return helper.Success(c, "Templat pesan berhasil diambil", templates)
}

// 🟢 POST /api/templates — admin menambah templat
func (ctrl *TemplateController) Create(c *fiber.Ctx) error {
	var body dto.CreateTemplateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	template := model.MessageTemplate{
		TemplateTitle:     body.TemplateTitle,
		TemplateBody:      body.TemplateBody,
		TemplateVariables: pq.StringArray(body.TemplateVariables),
		TemplateCategory:  body.TemplateCategory,
	}
	if err := ctrl.DB.Create(&template).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan templat")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Templat berhasil dibuat", template)
}

// 🟢 PUT /api/templates/:id — admin mengubah templat
func (ctrl *TemplateController) Update(c *fiber.Ctx) error {
	templateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Template ID tidak valid")
	}

	var body dto.UpdateTemplateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var template model.MessageTemplate
	if err := ctrl.DB.First(&template, "template_id = ?", templateID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Templat tidak ditemukan")
	}

	updates := map[string]interface{}{}
	if body.TemplateTitle != "" {
		updates["template_title"] = body.TemplateTitle
	}
	if body.TemplateBody != "" {
		updates["template_body"] = body.TemplateBody
	}
	if body.TemplateVariables != nil {
		updates["template_variables"] = pq.StringArray(body.TemplateVariables)
	}
	if body.TemplateCategory != "" {
		updates["template_category"] = body.TemplateCategory
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&template).Updates(updates).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengubah templat")
		}
	}

	return helper.Success(c, "Templat berhasil diubah", fiber.Map{"template_id": template.TemplateID})
}

// 🟢 DELETE /api/templates/:id — admin menghapus templat (soft delete)
func (ctrl *TemplateController) Delete(c *fiber.Ctx) error {
	templateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Template ID tidak valid")
	}

	if err := ctrl.DB.Delete(&model.MessageTemplate{}, "template_id = ?", templateID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus templat")
	}

	return helper.Success(c, "Templat berhasil dihapus", fiber.Map{"template_id": templateID})
}
