// 📁 controller/receipt_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	muzakkiModel "ziswaf_backend/internals/features/muzakki/model"
	userModel "ziswaf_backend/internals/features/users/user/model"
	"ziswaf_backend/internals/features/donations/service"
	helper "ziswaf_backend/internals/helpers"
)

// 🟢 GET /api/donations/:id/receipt — unduh kwitansi PDF
func (ctrl *DonationController) DownloadReceipt(c *fiber.Ctx) error {
	donationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Donation ID tidak valid")
	}

	donation, err := ctrl.findOwned(c, donationID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	muzakkiName := ""
	if donation.DonationMuzakkiID != nil {
		var m muzakkiModel.Muzakki
		if err := ctrl.DB.First(&m, "muzakki_id = ?", *donation.DonationMuzakkiID).Error; err == nil {
			muzakkiName = m.MuzakkiName
		}
	}

	relawanName := ""
	var relawan userModel.UserModel
	if err := ctrl.DB.First(&relawan, "user_id = ?", donation.DonationRelawanID).Error; err == nil {
		relawanName = relawan.FullName
	}

	pdfBytes, err := service.GenerateReceiptPDF(donation, muzakkiName, relawanName)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat kwitansi: "+err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+donation.DonationReceiptNo+`.pdf"`)
	return c.Send(pdfBytes)
}
