package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/linguanest/lingua-back/internal/models"
)

func TestBuildBookingsWorkbook(t *testing.T) {
	created := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
	bookings := []models.Booking{
		{
			ID: "b-1", StudentName: "Ada", StudentEmail: "ada@example.com",
			StudentPhone: "+90 532 000 0000", CourseTitle: "Turkish for Beginners",
			CourseLanguage: "Turkish", CourseLevel: "Beginner",
			Date: "2026-09-01", Time: "10:00",
			Status: models.BookingConfirmed, CreatedAt: created,
		},
		{
			ID: "b-2", StudentName: "Bora", StudentEmail: "bora@example.com",
			CourseTitle: "Business English", CourseLanguage: "English", CourseLevel: "Advanced",
			Date: "2026-09-02", Time: "18:00",
			Status: models.BookingPending, CreatedAt: created,
		},
	}

	f, err := BuildBookingsWorkbook(bookings)
	require.NoError(t, err)
	defer f.Close()

	// Round-trip through the serialized bytes, the way a download would.
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	reread, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer reread.Close()

	rows, err := reread.GetRows("Bookings")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "Student", rows[0][1])
	assert.Equal(t, "Ada", rows[1][1])
	assert.Equal(t, "Turkish for Beginners", rows[1][4])
	assert.Equal(t, "confirmed", rows[1][9])
	assert.Equal(t, "2026-08-01 09:30", rows[1][10])
	assert.Equal(t, "pending", rows[2][9])

	summary, err := reread.GetRows("Summary")
	require.NoError(t, err)
	require.NotEmpty(t, summary)
	assert.Equal(t, []string{"Status", "Count"}, summary[0][:2])
	assert.Equal(t, "pending", summary[1][0])
	assert.Equal(t, "1", summary[1][1])
	assert.Equal(t, "Total", summary[5][0])
	assert.Equal(t, "2", summary[5][1])
}

func TestBuildBookingsWorkbookEmpty(t *testing.T) {
	f, err := BuildBookingsWorkbook(nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Bookings")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
