// 📁 controller/report_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	donationModel "ziswaf_backend/internals/features/donations/model"
	muzakkiModel "ziswaf_backend/internals/features/muzakki/model"
	"ziswaf_backend/internals/features/reports/service"
	userModel "ziswaf_backend/internals/features/users/user/model"
	helper "ziswaf_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// 🟢 GET /api/reports/donations/export?month=YYYY-MM — rekap XLSX (admin)
func (ctrl *ReportController) ExportDonations(c *fiber.Ctx) error {
	monthStr := c.Query("month")
	if monthStr == "" {
		monthStr = time.Now().Format("2006-01")
	}
	monthStart, err := time.Parse("2006-01", monthStr)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format month harus YYYY-MM")
	}
	monthEnd := monthStart.AddDate(0, 1, 0)

	var donations []donationModel.Donation
	if err := ctrl.DB.
		Where("created_at >= ? AND created_at < ?", monthStart, monthEnd).
		Order("created_at ASC").
		Find(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data donasi")
	}

	muzakkiNames, relawanNames, err := ctrl.resolveNames(donations)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pendukung")
	}

	rows := make([]service.DonationRow, 0, len(donations))
	for _, d := range donations {
		row := service.DonationRow{
			Donation:    d,
			RelawanName: relawanNames[d.DonationRelawanID],
		}
		if d.DonationMuzakkiID != nil {
			row.MuzakkiName = muzakkiNames[*d.DonationMuzakkiID]
		}
		rows = append(rows, row)
	}

	buf, err := service.ExportDonationsXLSX(rows, monthStr)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat laporan: "+err.Error())
	}

	filename := "rekap-donasi-" + monthStr + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func (ctrl *ReportController) resolveNames(donations []donationModel.Donation) (map[uuid.UUID]string, map[uuid.UUID]string, error) {
	muzakkiIDs := make([]uuid.UUID, 0, len(donations))
	relawanIDs := make([]uuid.UUID, 0, len(donations))
	for _, d := range donations {
		if d.DonationMuzakkiID != nil {
			muzakkiIDs = append(muzakkiIDs, *d.DonationMuzakkiID)
		}
		relawanIDs = append(relawanIDs, d.DonationRelawanID)
	}

	muzakkiNames := make(map[uuid.UUID]string)
	if len(muzakkiIDs) > 0 {
		var muzakkis []muzakkiModel.Muzakki
		if err := ctrl.DB.Where("muzakki_id IN ?", muzakkiIDs).Find(&muzakkis).Error; err != nil {
			return nil, nil, err
		}
		for _, m := range muzakkis {
			muzakkiNames[m.MuzakkiID] = m.MuzakkiName
		}
	}

	relawanNames := make(map[uuid.UUID]string)
	if len(relawanIDs) > 0 {
		var users []userModel.UserModel
		if err := ctrl.DB.Where("user_id IN ?", relawanIDs).Find(&users).Error; err != nil {
			return nil, nil, err
		}
		for _, u := range users {
			relawanNames[u.UserID] = u.FullName
		}
	}

	return muzakkiNames, relawanNames, nil
}
