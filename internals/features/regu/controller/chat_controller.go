// 📁 controller/chat_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ziswaf_backend/internals/features/regu/dto"
	"ziswaf_backend/internals/features/regu/model"
	helper "ziswaf_backend/internals/helpers"
)

// 🟢 GET /api/chat/:regu_id — riwayat pesan regu, terlama dulu
func (ctrl *ReguController) GetChat(c *fiber.Ctx) error {
	reguID, err := uuid.Parse(c.Params("regu_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Regu ID tidak valid")
	}

	if _, err := ctrl.findAccessible(c, reguID); err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 100, 500)

	var messages []model.ChatMessage
	if err := ctrl.DB.
		Where("chat_regu_id = ?", reguID).
		Order("created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&messages).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}

	return helper.Success(c, "Pesan regu berhasil diambil", messages)
}

// 🟢 POST /api/chat/:regu_id — kirim pesan ke regu
func (ctrl *ReguController) SendChat(c *fiber.Ctx) error {
	reguID, err := uuid.Parse(c.Params("regu_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Regu ID tidak valid")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if _, err := ctrl.findAccessible(c, reguID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.SendChatRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	message := model.ChatMessage{
		ChatReguID:   reguID,
		ChatSenderID: userID,
		ChatText:     body.ChatText,
	}
	if err := ctrl.DB.Create(&message).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengirim pesan")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pesan terkirim", message)
}
