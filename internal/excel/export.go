package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/linguanest/lingua-back/internal/models"
)

const bookingsSheet = "Bookings"

var bookingHeader = []string{
	"ID", "Student", "Email", "Phone", "Course", "Language", "Level",
	"Date", "Time", "Status", "Created",
}

// BuildBookingsWorkbook renders bookings into an xlsx workbook with one row
// per booking plus a per-status summary sheet. The caller owns the returned
// file and must Close it.
func BuildBookingsWorkbook(bookings []models.Booking) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", bookingsSheet); err != nil {
		return nil, err
	}

	for i, h := range bookingHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(bookingsSheet, cell, h); err != nil {
			return nil, err
		}
	}

	counts := map[string]int{}
	for i, b := range bookings {
		row := []interface{}{
			b.ID, b.StudentName, b.StudentEmail, b.StudentPhone,
			b.CourseTitle, b.CourseLanguage, b.CourseLevel,
			b.Date, b.Time, b.Status, b.CreatedAt.Format("2006-01-02 15:04"),
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(bookingsSheet, start, &row); err != nil {
			return nil, err
		}
		counts[b.Status]++
	}

	if err := writeSummary(f, counts, len(bookings)); err != nil {
		return nil, err
	}

	return f, nil
}

func writeSummary(f *excelize.File, counts map[string]int, total int) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Status", "Count"},
		{models.BookingPending, counts[models.BookingPending]},
		{models.BookingConfirmed, counts[models.BookingConfirmed]},
		{models.BookingCompleted, counts[models.BookingCompleted]},
		{models.BookingCancelled, counts[models.BookingCancelled]},
		{"Total", total},
	}
	for i, row := range rows {
		start := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, start, &row); err != nil {
			return err
		}
	}
	return nil
}
