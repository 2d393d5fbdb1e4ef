// 📁 controller/validation_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ziswaf_backend/internals/features/donations/dto"
	"ziswaf_backend/internals/features/donations/model"
	"ziswaf_backend/internals/features/donations/service"
	helper "ziswaf_backend/internals/helpers"
)

// 🟢 PUT /api/donations/:id/validate — admin menyetujui donasi
func (ctrl *DonationController) ValidateDonation(c *fiber.Ctx) error {
	donationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Donation ID tidak valid")
	}

	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var donation model.Donation
	if err := ctrl.DB.First(&donation, "donation_id = ?", donationID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Donasi tidak ditemukan")
	}
	if err := service.EnsureCanValidate(donation.DonationStatus); err != nil {
		return helper.FromFiberError(c, err)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"donation_status":           "validated",
		"donation_validated_by":     adminID,
		"donation_validated_at":     now,
		"donation_rejection_reason": "",
	}
	if err := ctrl.DB.Model(&donation).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memvalidasi donasi")
	}

	return helper.Success(c, "Donasi berhasil divalidasi", fiber.Map{
		"donation_id":  donation.DonationID,
		"status":       "validated",
		"validated_at": now,
	})
}

// 🟢 PUT /api/donations/:id/reject — admin menolak donasi dengan alasan
func (ctrl *DonationController) Reject(c *fiber.Ctx) error {
	donationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Donation ID tidak valid")
	}

	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.RejectDonationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var donation model.Donation
	if err := ctrl.DB.First(&donation, "donation_id = ?", donationID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Donasi tidak ditemukan")
	}

	now := time.Now()
	updates := map[string]interface{}{
		"donation_status":           "rejected",
		"donation_validated_by":     adminID,
		"donation_validated_at":     now,
		"donation_rejection_reason": body.Reason,
	}
	if err := ctrl.DB.Model(&donation).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menolak donasi")
	}

	return helper.Success(c, "Donasi ditolak", fiber.Map{
		"donation_id": donation.DonationID,
		"status":      "rejected",
		"reason":      body.Reason,
	})
}

// 🟢 DELETE /api/donations/:id — soft delete, data tidak pernah hilang permanen
func (ctrl *DonationController) Delete(c *fiber.Ctx) error {
	donationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Donation ID tidak valid")
	}

	donation, err := ctrl.findOwned(c, donationID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := service.EnsureCanDelete(donation.DonationStatus); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.DB.Delete(donation).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus donasi")
	}

	return helper.Success(c, "Donasi berhasil dihapus", fiber.Map{
		"donation_id": donation.DonationID,
	})
}
