package engine

import (
	"context"
	"testing"

	"github.com/alishbasheba1-droid/SMS/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterStudentValidation(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		student models.Student
	}{
		{"missing name", models.Student{RollNo: "R1", Age: 12}},
		{"missing roll number", models.Student{Name: "Asha", Age: 12}},
		{"blank roll number", models.Student{Name: "Asha", RollNo: "   ", Age: 12}},
		{"age too low", models.Student{Name: "Asha", RollNo: "R1", Age: 4}},
		{"age too high", models.Student{Name: "Asha", RollNo: "R1", Age: 31}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.Students.Register(ctx, &tt.student)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestRegisterStudentDuplicateRoll(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	mustRegisterStudent(t, eng, "Asha", "R100")

	_, err := eng.Students.Register(ctx, &models.Student{Name: "Binta", RollNo: "R100", Age: 14})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	// Roll numbers are normalised to upper case, so this collides too.
	_, err = eng.Students.Register(ctx, &models.Student{Name: "Chen", RollNo: "r100", Age: 14})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	students, err := eng.Students.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestListStudentsFilter(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	mustRegisterStudent(t, eng, "Asha Nansubuga", "R100")
	mustRegisterStudent(t, eng, "Binta Kalema", "R200")
	mustRegisterStudent(t, eng, "Chen Wei", "X300")

	all, err := eng.Students.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Insertion order.
	assert.Equal(t, "R100", all[0].RollNo)
	assert.Equal(t, "R200", all[1].RollNo)
	assert.Equal(t, "X300", all[2].RollNo)

	byName, err := eng.Students.List(ctx, "binta")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Binta Kalema", byName[0].Name)

	byRoll, err := eng.Students.List(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, byRoll, 1)
	assert.Equal(t, "R100", byRoll[0].RollNo)

	none, err := eng.Students.List(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteStudentNotFound(t *testing.T) {
	eng := newTestEngine(t)
	err := eng.Students.Delete(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteStudentCascades(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	studentID := mustRegisterStudent(t, eng, "Asha", "R100")
	examID := mustCreateExam(t, eng, "Mid Term", 100)
	bookID := mustAddBook(t, eng, "Go Basics", "ISBN-1", 2)

	require.NoError(t, eng.Attendance.Mark(ctx, day("2025-03-10"), []models.AttendanceEntry{
		{StudentID: studentID, Status: models.Present},
	}))
	require.NoError(t, eng.Exams.RecordResult(ctx, studentID, examID, 80))
	_, err := eng.Fees.RecordPayment(ctx, studentID, 1000, 400, day("2025-03-10"))
	require.NoError(t, err)
	_, err = eng.Library.Issue(ctx, bookID, studentID, day("2025-03-10"))
	require.NoError(t, err)

	require.NoError(t, eng.Students.Delete(ctx, studentID))

	history, err := eng.Attendance.History(ctx, studentID)
	require.NoError(t, err)
	assert.Empty(t, history)

	sheet, err := eng.Exams.ResultsForExam(ctx, examID)
	require.NoError(t, err)
	assert.Empty(t, sheet)

	dues, err := eng.Fees.OutstandingDues(ctx)
	require.NoError(t, err)
	assert.Empty(t, dues)

	// The copy the student had out is back on the shelf.
	books, err := eng.Library.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, 2, books[0].AvailableCopies)
}
