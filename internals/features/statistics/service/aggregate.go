// 📁 service/aggregate.go
// Agregasi murni untuk dashboard — tanpa I/O, gampang diunit-test.
package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// DonationRecord adalah potongan data donasi yang dibutuhkan agregasi.
type DonationRecord struct {
	MuzakkiID *uuid.UUID
	Amount    int64
	Category  string
	Type      string // incoming | outgoing
	CreatedAt time.Time
}

// MuzakkiRecord dipakai GetTopMuzakki untuk resolve nama.
type MuzakkiRecord struct {
	MuzakkiID uuid.UUID
	Name      string
}

type MonthlyBucket struct {
	Month   string `json:"month"` // YYYY-MM
	Zakat   int64  `json:"zakat"`
	Infaq   int64  `json:"infaq"`
	Sedekah int64  `json:"sedekah"`
	Wakaf   int64  `json:"wakaf"`
	Total   int64  `json:"total"`
}

type DailyBucket struct {
	DateKey string `json:"date_key"` // YYYY-MM-DD
	Day     string `json:"day"`      // Minggu..Sabtu
	Total   int64  `json:"total"`
}

type TopMuzakkiEntry struct {
	MuzakkiID uuid.UUID `json:"muzakki_id"`
	Name      string    `json:"name"`
	Total     int64     `json:"total"`
}

type TrendBucket struct {
	Month      string `json:"month"`
	Donasi     int64  `json:"donasi"`     // incoming
	Penyaluran int64  `json:"penyaluran"` // outgoing
}

// Label hari Indonesia, index mengikuti time.Weekday (Minggu = 0).
var dayLabels = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// GetMonthlyDonations membucket 6 bulan kalender terakhir (terlama dulu),
// menjumlah per kategori + total, hanya donasi masuk. Bulan kosong tetap nol.
func GetMonthlyDonations(donations []DonationRecord, now time.Time) []MonthlyBucket {
	buckets := make([]MonthlyBucket, 0, 6)
	index := make(map[string]int, 6)

	for i := 5; i >= 0; i-- {
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		key := monthKey(m)
		index[key] = len(buckets)
		buckets = append(buckets, MonthlyBucket{Month: key})
	}

	for _, d := range donations {
		if d.Type != "incoming" {
			continue
		}
		i, ok := index[monthKey(d.CreatedAt)]
		if !ok {
			continue
		}
		switch d.Category {
		case "zakat":
			buckets[i].Zakat += d.Amount
		case "infaq":
			buckets[i].Infaq += d.Amount
		case "sedekah":
			buckets[i].Sedekah += d.Amount
		case "wakaf":
			buckets[i].Wakaf += d.Amount
		}
		buckets[i].Total += d.Amount
	}

	return buckets
}

// GetWeeklyTrend membucket 7 hari terakhir (terlama dulu, berakhir hari ini),
// menjumlah donasi masuk per hari.
func GetWeeklyTrend(donations []DonationRecord, now time.Time) []DailyBucket {
	buckets := make([]DailyBucket, 0, 7)
	index := make(map[string]int, 7)

	for i := 6; i >= 0; i-- {
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -i)
		key := dayKey(day)
		index[key] = len(buckets)
		buckets = append(buckets, DailyBucket{
			DateKey: key,
			Day:     dayLabels[int(day.Weekday())],
		})
	}

	for _, d := range donations {
		if d.Type != "incoming" {
			continue
		}
		if i, ok := index[dayKey(d.CreatedAt)]; ok {
			buckets[i].Total += d.Amount
		}
	}

	return buckets
}

// GetTopMuzakki menjumlah amount per muzakki untuk SEMUA tipe donasi (masuk
// dan keluar ikut dihitung — perilaku lama dipertahankan, jangan diubah diam-
// diam), resolve nama lewat lookup linear, urut menurun, potong ke limit.
// Donasi dengan muzakki_id yang tidak ditemukan di daftar dibuang saat pertama
// kali ketemu.
func GetTopMuzakki(donations []DonationRecord, muzakkiList []MuzakkiRecord, limit int) []TopMuzakkiEntry {
	totals := make(map[uuid.UUID]int64)
	names := make(map[uuid.UUID]string)
	unknown := make(map[uuid.UUID]bool)

	for _, d := range donations {
		if d.MuzakkiID == nil {
			continue
		}
		id := *d.MuzakkiID
		if unknown[id] {
			continue
		}
		if _, known := names[id]; !known {
			found := false
			for _, m := range muzakkiList {
				if m.MuzakkiID == id {
					names[id] = m.Name
					found = true
					break
				}
			}
			if !found {
				unknown[id] = true
				continue
			}
		}
		totals[id] += d.Amount
	}

	entries := make([]TopMuzakkiEntry, 0, len(totals))
	for id, total := range totals {
		entries = append(entries, TopMuzakkiEntry{MuzakkiID: id, Name: names[id], Total: total})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total > entries[j].Total
	})

	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// GetMonthlyTrend seperti GetMonthlyDonations tapi dipecah per arah:
// donasi (masuk) vs penyaluran (keluar).
func GetMonthlyTrend(donations []DonationRecord, now time.Time) []TrendBucket {
	buckets := make([]TrendBucket, 0, 6)
	index := make(map[string]int, 6)

	for i := 5; i >= 0; i-- {
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		key := monthKey(m)
		index[key] = len(buckets)
		buckets = append(buckets, TrendBucket{Month: key})
	}

	for _, d := range donations {
		i, ok := index[monthKey(d.CreatedAt)]
		if !ok {
			continue
		}
		switch d.Type {
		case "incoming":
			buckets[i].Donasi += d.Amount
		case "outgoing":
			buckets[i].Penyaluran += d.Amount
		}
	}

	return buckets
}

// CalculatePercentageChange mengembalikan "+0%" kalau previous nol (sentinel
// penghindar bagi-nol, bukan persentase beneran), selain itu persen bertanda
// satu desimal.
func CalculatePercentageChange(current, previous int64) string {
	if previous == 0 {
		return "+0%"
	}
	change := float64(current-previous) / float64(previous) * 100
	return fmt.Sprintf("%+.1f%%", change)
}

// GetPreviousPeriodData menjumlah amount donasi pada periode sebelumnya:
// "week" = jendela 7 hari sebelum jendela berjalan, "month" = bulan kalender
// lalu, "year" = tahun kalender lalu. TANPA filter tipe — donasi keluar ikut
// terjumlah, sama seperti perilaku lama.
func GetPreviousPeriodData(donations []DonationRecord, period string, now time.Time) int64 {
	var start, end time.Time
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch period {
	case "week":
		// Jendela berjalan: 7 hari berakhir hari ini; sebelumnya: 7 hari sebelum itu.
		end = today.AddDate(0, 0, -6)
		start = end.AddDate(0, 0, -7)
	case "month":
		end = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		start = end.AddDate(0, -1, 0)
	case "year":
		end = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		start = end.AddDate(-1, 0, 0)
	default:
		return 0
	}

	var total int64
	for _, d := range donations {
		if !d.CreatedAt.Before(start) && d.CreatedAt.Before(end) {
			total += d.Amount
		}
	}
	return total
}
