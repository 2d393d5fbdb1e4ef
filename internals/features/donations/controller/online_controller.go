// 📁 controller/online_controller.go
package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ziswaf_backend/internals/features/donations/dto"
	"ziswaf_backend/internals/features/donations/model"
	"ziswaf_backend/internals/features/donations/service"
	helper "ziswaf_backend/internals/helpers"
)

// 🟢 POST /api/donations/online — donasi via payment gateway (Midtrans Snap)
func (ctrl *DonationController) CreateOnline(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateOnlineDonationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var muzakkiID *uuid.UUID
	if body.DonationMuzakkiID != "" {
		parsed, err := uuid.Parse(body.DonationMuzakkiID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "donation_muzakki_id tidak valid")
		}
		muzakkiID = &parsed
	}

	orderID := fmt.Sprintf("DONATION-%d", time.Now().UnixNano())
	donation := model.Donation{
		DonationRelawanID:      userID,
		DonationMuzakkiID:      muzakkiID,
		DonationAmount:         body.DonationAmount,
		DonationCategory:       body.DonationCategory,
		DonationType:           "incoming",
		DonationNote:           body.DonationNote,
		DonationReceiptNo:      helper.GenerateReceiptNumber(time.Now()),
		DonationStatus:         "pending",
		DonationOrderID:        &orderID,
		DonationPaymentGateway: "midtrans",
	}

	if err := ctrl.DB.Create(&donation).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan donasi")
	}

	snapToken, err := service.GenerateSnapToken(donation, body.DonationName, body.DonationEmail)
	if err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError,
			"Donasi tersimpan tapi gagal membuat token pembayaran",
			fiber.Map{"donation_id": donation.DonationID})
	}

	if err := ctrl.DB.Model(&donation).Update("donation_payment_token", snapToken).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan payment token untuk %s: %v", orderID, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Token pembayaran berhasil dibuat", fiber.Map{
		"donation_id": donation.DonationID,
		"order_id":    orderID,
		"snap_token":  snapToken,
	})
}

// 🟢 POST /api/donations/notification — webhook status pembayaran Midtrans
// Endpoint ini TANPA auth (dipanggil server Midtrans), selalu balas 200
// supaya notifikasi tidak di-retry terus-menerus.
func HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid notification payload")
	}

	db, ok := c.Locals("db").(*gorm.DB)
	if !ok {
		return helper.Error(c, fiber.StatusInternalServerError, "Database tidak tersedia")
	}

	if err := service.HandleDonationStatusWebhook(db, body); err != nil {
		log.Printf("[ERROR] Webhook Midtrans gagal: %v", err)
	}

	return helper.Success(c, "Notification processed", nil)
}
