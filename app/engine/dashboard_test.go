package engine

import (
	"context"
	"testing"

	"github.com/alishbasheba1-droid/SMS/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()
	today := day("2025-03-10")

	asha := mustRegisterStudent(t, eng, "Asha", "R100")
	binta := mustRegisterStudent(t, eng, "Binta", "R200")
	_, err := eng.Teachers.Register(ctx, &models.Teacher{Name: "Mr. Okello", TeacherID: "T01"})
	require.NoError(t, err)
	mustAddBook(t, eng, "Go Basics", "ISBN-1", 2)

	_, err = eng.Fees.RecordPayment(ctx, asha, 1000, 400, today)
	require.NoError(t, err)
	_, err = eng.Fees.RecordPayment(ctx, binta, 500, 500, today)
	require.NoError(t, err)

	require.NoError(t, eng.Attendance.Mark(ctx, today, []models.AttendanceEntry{
		{StudentID: asha, Status: models.Present},
		{StudentID: binta, Status: models.Absent},
	}))

	stats, err := eng.Dashboard.Stats(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalStudents)
	assert.Equal(t, 1, stats.TotalTeachers)
	assert.Equal(t, 1, stats.TotalBooks)
	assert.InDelta(t, 600, stats.OutstandingDues, 0.001)
	assert.Equal(t, 1, stats.PresentToday)

	// A different day has its own present count.
	other, err := eng.Dashboard.Stats(ctx, day("2025-03-11"))
	require.NoError(t, err)
	assert.Equal(t, 0, other.PresentToday)
}
