// 📁 controller/statistics_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ziswaf_backend/internals/constants"
	donationModel "ziswaf_backend/internals/features/donations/model"
	muzakkiModel "ziswaf_backend/internals/features/muzakki/model"
	"ziswaf_backend/internals/features/statistics/service"
	helper "ziswaf_backend/internals/helpers"
)

type StatisticsController struct {
	DB *gorm.DB
}

func NewStatisticsController(db *gorm.DB) *StatisticsController {
	return &StatisticsController{DB: db}
}

// 🟢 GET /api/statistics/:relawan_id — dashboard relawan
func (ctrl *StatisticsController) GetByRelawan(c *fiber.Ctx) error {
	relawanIDStr := strings.TrimSpace(c.Params("relawan_id"))
	if relawanIDStr == "" {
		return helper.Error(c, fiber.StatusBadRequest, "relawan_id wajib diisi")
	}
	relawanID, err := uuid.Parse(relawanIDStr)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "relawan_id tidak valid")
	}

	role := helper.GetRoleFromLocals(c)
	if role == constants.RoleRelawan {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		if userID != relawanID {
			return helper.Error(c, fiber.StatusForbidden, "Tidak boleh melihat statistik relawan lain")
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

	return ctrl.respondStatistics(c, ctrl.DB.Where("donation_relawan_id = ?", relawanID), relawanID)
}

// 🟢 GET /api/statistics — dashboard admin, seluruh data
func (ctrl *StatisticsController) GetAll(c *fiber.Ctx) error {
	return ctrl.respondStatistics(c, ctrl.DB, uuid.Nil)
}

func (ctrl *StatisticsController) respondStatistics(c *fiber.Ctx, scope *gorm.DB, relawanID uuid.UUID) error {
	var donations []donationModel.Donation
	if err := scope.Model(&donationModel.Donation{}).Find(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data donasi")
	}

	muzakkiQuery := ctrl.DB.Model(&muzakkiModel.Muzakki{})
	if relawanID != uuid.Nil {
		muzakkiQuery = muzakkiQuery.Where("muzakki_relawan_id = ?", relawanID)
	}
	var muzakkis []muzakkiModel.Muzakki
	if err := muzakkiQuery.Find(&muzakkis).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data muzakki")
	}

	records := toRecords(donations)
	muzakkiRecords := make([]service.MuzakkiRecord, 0, len(muzakkis))
	for _, m := range muzakkis {
		muzakkiRecords = append(muzakkiRecords, service.MuzakkiRecord{
			MuzakkiID: m.MuzakkiID,
			Name:      m.MuzakkiName,
		})
	}

	now := time.Now()

	currentWeek := sumIncomingSince(records, now.AddDate(0, 0, -6), now)
	previousWeek := service.GetPreviousPeriodData(records, "week", now)

	return helper.Success(c, "Statistik berhasil diambil", fiber.Map{
		"monthly_donations": service.GetMonthlyDonations(records, now),
		"weekly_trend":      service.GetWeeklyTrend(records, now),
		"monthly_trend":     service.GetMonthlyTrend(records, now),
		"top_muzakki":       service.GetTopMuzakki(records, muzakkiRecords, 5),
		"weekly_change":     service.CalculatePercentageChange(currentWeek, previousWeek),
		"total_muzakki":     len(muzakkis),
		"total_donations":   len(donations),
	})
}

func toRecords(donations []donationModel.Donation) []service.DonationRecord {
	records := make([]service.DonationRecord, 0, len(donations))
	for _, d := range donations {
		records = append(records, service.DonationRecord{
			MuzakkiID: d.DonationMuzakkiID,
			Amount:    int64(d.DonationAmount),
			Category:  d.DonationCategory,
			Type:      d.DonationType,
			CreatedAt: d.CreatedAt,
		})
	}
	return records
}

func sumIncomingSince(records []service.DonationRecord, start, end time.Time) int64 {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	var total int64
	for _, r := range records {
		if r.Type != "incoming" {
			continue
		}
		if !r.CreatedAt.Before(startDay) && !r.CreatedAt.After(end) {
			total += r.Amount
		}
	}
	return total
}
