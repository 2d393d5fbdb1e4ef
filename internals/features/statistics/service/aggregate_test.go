package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func incoming(amount int64, category string, at time.Time) DonationRecord {
	return DonationRecord{Amount: amount, Category: category, Type: "incoming", CreatedAt: at}
}

func outgoing(amount int64, category string, at time.Time) DonationRecord {
	return DonationRecord{Amount: amount, Category: category, Type: "outgoing", CreatedAt: at}
}

func TestGetMonthlyDonations_TotalMatchesIncomingSum(t *testing.T) {
	donations := []DonationRecord{
		incoming(100_000, "zakat", testNow),
		incoming(50_000, "infaq", testNow.AddDate(0, -2, 0)),
		incoming(25_000, "sedekah", testNow.AddDate(0, -5, 0)),
		outgoing(999_000, "zakat", testNow), // donasi keluar tidak dihitung
		incoming(75_000, "wakaf", testNow.AddDate(0, -7, 0)), // di luar jendela 6 bulan
	}

	buckets := GetMonthlyDonations(donations, testNow)
	require.Len(t, buckets, 6)

	var total int64
	for _, b := range buckets {
		total += b.Total
	}
	assert.Equal(t, int64(175_000), total)
}

func TestGetMonthlyDonations_OldestFirstZeroFilled(t *testing.T) {
	buckets := GetMonthlyDonations(nil, testNow)
	require.Len(t, buckets, 6)

	assert.Equal(t, "2024-10", buckets[0].Month)
	assert.Equal(t, "2025-03", buckets[5].Month)
	for _, b := range buckets {
		assert.Zero(t, b.Total, "bulan tanpa donasi harus nol")
	}
}

func TestGetMonthlyDonations_OutgoingExcludedFromCategory(t *testing.T) {
	donations := []DonationRecord{
		incoming(100, "zakat", testNow),
		outgoing(50, "zakat", testNow),
	}

	buckets := GetMonthlyDonations(donations, testNow)
	current := buckets[5]
	assert.Equal(t, "2025-03", current.Month)
	assert.Equal(t, int64(100), current.Zakat)
	assert.Equal(t, int64(100), current.Total)
}

func TestGetWeeklyTrend_SevenDaysEndingToday(t *testing.T) {
	buckets := GetWeeklyTrend(nil, testNow)
	require.Len(t, buckets, 7)

	assert.Equal(t, "2025-03-09", buckets[0].DateKey)
	assert.Equal(t, "2025-03-15", buckets[6].DateKey)

	seen := map[string]bool{}
	for _, b := range buckets {
		assert.False(t, seen[b.DateKey], "tanggal harus unik")
		seen[b.DateKey] = true
	}

	// 15 Maret 2025 jatuh hari Sabtu; 9 Maret hari Minggu.
	assert.Equal(t, "Minggu", buckets[0].Day)
	assert.Equal(t, "Sabtu", buckets[6].Day)
}

func TestGetWeeklyTrend_SumsIncomingPerDay(t *testing.T) {
	donations := []DonationRecord{
		incoming(10, "zakat", testNow),
		incoming(20, "infaq", testNow),
		incoming(30, "zakat", testNow.AddDate(0, 0, -3)),
		outgoing(99, "zakat", testNow),
		incoming(40, "zakat", testNow.AddDate(0, 0, -10)), // di luar jendela
	}

	buckets := GetWeeklyTrend(donations, testNow)
	assert.Equal(t, int64(30), buckets[6].Total)
	assert.Equal(t, int64(30), buckets[3].Total)
	assert.Equal(t, int64(0), buckets[0].Total)
}

func TestGetTopMuzakki(t *testing.T) {
	idA := uuid.New()
	idB := uuid.New()
	idUnknown := uuid.New()

	muzakkis := []MuzakkiRecord{
		{MuzakkiID: idA, Name: "Pak Ahmad"},
		{MuzakkiID: idB, Name: "Bu Siti"},
	}
	donations := []DonationRecord{
		{MuzakkiID: &idA, Amount: 100, Type: "incoming", CreatedAt: testNow},
		{MuzakkiID: &idA, Amount: 50, Type: "outgoing", CreatedAt: testNow}, // semua tipe ikut
		{MuzakkiID: &idB, Amount: 120, Type: "incoming", CreatedAt: testNow},
		{MuzakkiID: &idUnknown, Amount: 999, Type: "incoming", CreatedAt: testNow},
		{MuzakkiID: nil, Amount: 777, Type: "incoming", CreatedAt: testNow},
	}

	top := GetTopMuzakki(donations, muzakkis, 5)
	require.Len(t, top, 2)

	assert.Equal(t, "Pak Ahmad", top[0].Name)
	assert.Equal(t, int64(150), top[0].Total)
	assert.Equal(t, "Bu Siti", top[1].Name)
	assert.Equal(t, int64(120), top[1].Total)
}

func TestGetTopMuzakki_RespectsLimitAndOrder(t *testing.T) {
	muzakkis := make([]MuzakkiRecord, 10)
	donations := make([]DonationRecord, 10)
	for i := 0; i < 10; i++ {
		id := uuid.New()
		muzakkis[i] = MuzakkiRecord{MuzakkiID: id, Name: "M"}
		donations[i] = DonationRecord{MuzakkiID: &id, Amount: int64((i + 1) * 10), Type: "incoming", CreatedAt: testNow}
	}

	top := GetTopMuzakki(donations, muzakkis, 3)
	require.Len(t, top, 3)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Total, top[i].Total)
	}
	assert.Equal(t, int64(100), top[0].Total)
}

func TestGetMonthlyTrend_SplitsByDirection(t *testing.T) {
	donations := []DonationRecord{
		incoming(500, "zakat", testNow),
		outgoing(200, "zakat", testNow),
		incoming(100, "infaq", testNow.AddDate(0, -1, 0)),
	}

	trend := GetMonthlyTrend(donations, testNow)
	require.Len(t, trend, 6)

	assert.Equal(t, int64(500), trend[5].Donasi)
	assert.Equal(t, int64(200), trend[5].Penyaluran)
	assert.Equal(t, int64(100), trend[4].Donasi)
	assert.Equal(t, int64(0), trend[4].Penyaluran)
}

func TestCalculatePercentageChange(t *testing.T) {
	assert.Equal(t, "+0%", CalculatePercentageChange(0, 0))
	assert.Equal(t, "+0%", CalculatePercentageChange(500, 0))
	assert.Equal(t, "+50.0%", CalculatePercentageChange(150, 100))
	assert.Equal(t, "-50.0%", CalculatePercentageChange(50, 100))
	assert.Equal(t, "+0.0%", CalculatePercentageChange(100, 100))
}

func TestGetPreviousPeriodData_NoTypeFilter(t *testing.T) {
	prevWeek := testNow.AddDate(0, 0, -8)
	donations := []DonationRecord{
		incoming(100, "zakat", prevWeek),
		outgoing(40, "zakat", prevWeek), // ikut terjumlah, tanpa filter tipe
		incoming(999, "zakat", testNow), // periode berjalan, bukan sebelumnya
	}

	total := GetPreviousPeriodData(donations, "week", testNow)
	assert.Equal(t, int64(140), total)
}

func TestGetPreviousPeriodData_CalendarMonthAndYear(t *testing.T) {
	donations := []DonationRecord{
		incoming(100, "zakat", time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)),
		incoming(30, "zakat", time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)),
		incoming(7, "zakat", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)),
	}

	assert.Equal(t, int64(100), GetPreviousPeriodData(donations, "month", testNow))
	assert.Equal(t, int64(7), GetPreviousPeriodData(donations, "year", testNow))
	assert.Equal(t, int64(0), GetPreviousPeriodData(donations, "quarter", testNow))
}
