// 📁 controller/program_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ziswaf_backend/internals/features/templates/dto"
	"ziswaf_backend/internals/features/templates/model"
	helper "ziswaf_backend/internals/helpers"
)

// 🟢 GET /api/programs?category=&all= — program aktif (all=1 khusus admin)
func (ctrl *TemplateController) GetPrograms(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.Program{})

	if c.Query("all") != "1" {
		q = q.Where("program_is_active = ?", true)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("program_category = ?", category)
	}

	var programs []model.Program
	if err := q.Order("program_name ASC").Find(&programs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil program")
	}

	return helper.Success(c, "Program berhasil diambil", programs)
}

// 🟢 POST /api/programs — admin menambah program
func (ctrl *TemplateController) CreateProgram(c *fiber.Ctx) error {
	var body dto.CreateProgramRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	program := model.Program{
		ProgramName:        body.ProgramName,
		ProgramDescription: body.ProgramDescription,
		ProgramCategory:    body.ProgramCategory,
		ProgramIsActive:    true,
		ProgramMetadata:    body.ProgramMetadata,
	}
	if err := ctrl.DB.Create(&program).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan program")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Program berhasil dibuat", program)
}

// 🟢 PUT /api/programs/:id — admin mengubah program
func (ctrl *TemplateController) UpdateProgram(c *fiber.Ctx) error {
	programID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Program ID tidak valid")
	}

	var body dto.UpdateProgramRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var program model.Program
	if err := ctrl.DB.First(&program, "program_id = ?", programID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Program tidak ditemukan")
	}

	updates := map[string]interface{}{}
	if body.ProgramName != "" {
		updates["program_name"] = body.ProgramName
	}
	if body.ProgramDescription != nil {
		updates["program_description"] = *body.ProgramDescription
	}
	if body.ProgramCategory != nil {
		updates["program_category"] = *body.ProgramCategory
	}
	if body.ProgramIsActive != nil {
		updates["program_is_active"] = *body.ProgramIsActive
	}
	if body.ProgramMetadata != nil {
		updates["program_metadata"] = body.ProgramMetadata
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&program).Updates(updates).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengubah program")
		}
	}

	return helper.Success(c, "Program berhasil diubah", fiber.Map{"program_id": program.ProgramID})
}

// 🟢 DELETE /api/programs/:id — admin menghapus program (soft delete)
func (ctrl *TemplateController) DeleteProgram(c *fiber.Ctx) error {
	programID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Program ID tidak valid")
	}

	if err := ctrl.DB.Delete(&model.Program{}, "program_id = ?", programID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus program")
	}

	return helper.Success(c, "Program berhasil dihapus", fiber.Map{"program_id": programID})
}
