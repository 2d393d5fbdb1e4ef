// 📁 service/export_xlsx.go
package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	donationModel "ziswaf_backend/internals/features/donations/model"
)

// DonationRow adalah satu baris rekap siap tulis ke sheet.
type DonationRow struct {
	Donation    donationModel.Donation
	MuzakkiName string
	RelawanName string
}

var jakartaLoc = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*3600)
	}
	return loc
}()

// ExportDonationsXLSX menyusun rekap donasi satu bulan ke workbook XLSX.
func ExportDonationsXLSX(rows []DonationRow, month string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Rekap Donasi"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"16A34A"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("gagal membuat style header: %w", err)
	}
	rupiahStyle, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: func() *string { s := `"Rp"#,##0`; return &s }(),
	})
	if err != nil {
		return nil, fmt.Errorf("gagal membuat style rupiah: %w", err)
	}

	headers := []string{"No", "Tanggal", "No. Kwitansi", "Muzakki", "Relawan", "Kategori", "Tipe", "Jumlah", "Status", "Catatan"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastHeader, headerStyle)

	var totalIncoming, totalOutgoing int64
	for i, row := range rows {
		d := row.Donation
		r := i + 2

		f.SetCellValue(sheet, fmt.Sprintf("A%d", r), i+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", r), d.CreatedAt.In(jakartaLoc).Format("02-01-2006 15:04"))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", r), d.DonationReceiptNo)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", r), emptyDash(row.MuzakkiName))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", r), emptyDash(row.RelawanName))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", r), d.DonationCategory)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", r), d.DonationType)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", r), d.DonationAmount)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", r), d.DonationStatus)
		f.SetCellValue(sheet, fmt.Sprintf("J%d", r), d.DonationNote)

		if d.DonationType == "incoming" {
			totalIncoming += int64(d.DonationAmount)
		} else {
			totalOutgoing += int64(d.DonationAmount)
		}
	}
	if len(rows) > 0 {
		f.SetCellStyle(sheet, "H2", fmt.Sprintf("H%d", len(rows)+1), rupiahStyle)
	}

	// Ringkasan di bawah tabel
	summaryRow := len(rows) + 3
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("Rekap bulan %s", month))
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow+1), "Total penghimpunan")
	f.SetCellValue(sheet, fmt.Sprintf("H%d", summaryRow+1), totalIncoming)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow+2), "Total penyaluran")
	f.SetCellValue(sheet, fmt.Sprintf("H%d", summaryRow+2), totalOutgoing)
	f.SetCellStyle(sheet, fmt.Sprintf("H%d", summaryRow+1), fmt.Sprintf("H%d", summaryRow+2), rupiahStyle)

	f.SetColWidth(sheet, "B", "B", 18)
	f.SetColWidth(sheet, "C", "E", 22)
	f.SetColWidth(sheet, "H", "H", 16)
	f.SetColWidth(sheet, "J", "J", 30)

	return f.WriteToBuffer()
}

func emptyDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
