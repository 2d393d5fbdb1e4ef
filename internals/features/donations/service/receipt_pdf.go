package service

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/signintech/gopdf"

	"ziswaf_backend/internals/configs"
	donationModel "ziswaf_backend/internals/features/donations/model"
)

var categoryLabels = map[string]string{
	"zakat":   "Zakat",
	"infaq":   "Infaq",
	"sedekah": "Sedekah",
	"wakaf":   "Wakaf",
}

// GenerateReceiptPDF membuat kwitansi donasi (A4) dan mengembalikan byte PDF-nya.
// Font TTF diambil dari RECEIPT_FONT_PATH (regular + bold).
func GenerateReceiptPDF(d *donationModel.Donation, muzakkiName, relawanName string) ([]byte, error) {
	fontPath := configs.GetEnv("RECEIPT_FONT_PATH", "./assets/fonts/DejaVuSans.ttf")
	fontBoldPath := configs.GetEnv("RECEIPT_FONT_BOLD_PATH", "./assets/fonts/DejaVuSans-Bold.ttf")

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})

	if err := pdf.AddTTFFont("Regular", fontPath); err != nil {
		return nil, fmt.Errorf("gagal memuat font kwitansi: %w", err)
	}
	if err := pdf.AddTTFFont("Bold", fontBoldPath); err != nil {
		return nil, fmt.Errorf("gagal memuat font bold kwitansi: %w", err)
	}

	pdf.AddPage()

	// Header hijau ZISWAF
	pdf.SetFillColor(22, 122, 74)
	pdf.RectFromUpperLeftWithStyle(0, 0, 595, 110, "F")

	pdf.SetTextColor(255, 255, 255)
	_ = pdf.SetFont("Bold", "", 26)
	pdf.SetXY(40, 30)
	_ = pdf.Cell(nil, "ZISWAF Manager")

	_ = pdf.SetFont("Regular", "", 14)
	pdf.SetXY(40, 65)
	_ = pdf.Cell(nil, "Kwitansi Donasi")

	pdf.SetXY(40, 85)
	_ = pdf.SetFont("Regular", "", 11)
	_ = pdf.Cell(nil, fmt.Sprintf("No. %s", d.DonationReceiptNo))

	// Isi kwitansi
	pdf.SetTextColor(45, 52, 54)
	y := 150.0
	rows := [][2]string{
		{"Tanggal", d.CreatedAt.In(jakartaLoc()).Format("02 January 2006 15:04")},
		{"Kategori", categoryLabel(d.DonationCategory)},
		{"Jumlah", formatRupiah(d.DonationAmount)},
		{"Muzakki", emptyDash(muzakkiName)},
		{"Relawan", emptyDash(relawanName)},
		{"Status", capitalize(d.DonationStatus)},
	}
	for _, row := range rows {
		_ = pdf.SetFont("Bold", "", 12)
		pdf.SetXY(40, y)
		_ = pdf.Cell(nil, row[0])
		_ = pdf.SetFont("Regular", "", 12)
		pdf.SetXY(180, y)
		_ = pdf.Cell(nil, ": "+row[1])
		y += 26
	}

	if d.DonationNote != "" {
		_ = pdf.SetFont("Bold", "", 12)
		pdf.SetXY(40, y)
		_ = pdf.Cell(nil, "Catatan")
		_ = pdf.SetFont("Regular", "", 12)
		pdf.SetXY(180, y)
		_ = pdf.Cell(nil, ": "+d.DonationNote)
		y += 26
	}

	// Footer
	_ = pdf.SetFont("Regular", "", 10)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(40, 780)
	_ = pdf.Cell(nil, "Kwitansi ini dibuat otomatis oleh sistem ZISWAF Manager.")

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("gagal menulis PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func categoryLabel(cat string) string {
	if label, ok := categoryLabels[cat]; ok {
		return label
	}
	return cat
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func emptyDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// formatRupiah: 1500000 -> "Rp 1.500.000"
func formatRupiah(amount int) string {
	s := fmt.Sprintf("%d", amount)
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
		if len(s) > pre {
			b.WriteString(".")
		}
	}
	for i := pre; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteString(".")
		}
	}
	return "Rp " + b.String()
}

func jakartaLoc() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.UTC
	}
	return loc
}
