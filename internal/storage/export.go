package storage

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"lumiere-studio/internal/booking"
)

// ExportBookingsToExcel writes the given bookings to an .xlsx file in
// dir and returns its path. Used for the admin lead handoff.
func ExportBookingsToExcel(bookings []booking.Booking, dir string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{
		"ID", "Customer", "Phone", "Region", "Car Model",
		"Date", "Time", "Method", "TXID",
		"Base Price (KRW)", "Deposit (KRW)", "USDT Amount",
		"Status", "Created At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, b := range bookings {
		values := []any{
			b.ID,
			b.CustomerName,
			booking.FormatPhone(b.Phone),
			b.Region,
			b.CarModel,
			b.VisitDate,
			b.VisitTime,
			string(b.Method),
			b.TxID,
			b.BasePrice,
			b.Deposit,
			b.USDTAmount,
			string(b.Status),
			b.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellStyle(sheet, "A1", "N1", style)

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s/bookings_%s.xlsx", dir, time.Now().Format("20060102_150405"))
	if err := f.SaveAs(filename); err != nil {
		return "", fmt.Errorf("failed to save export: %w", err)
	}
	return filename, nil
}
