package engine

import (
	"context"
	"testing"

	"github.com/alishbasheba1-droid/SMS/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateExamValidation(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	_, err := eng.Exams.CreateExam(ctx, &models.Exam{MaxMarks: 100})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = eng.Exams.CreateExam(ctx, &models.Exam{ExamName: "Mid Term", MaxMarks: 0})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRecordResultMarksRange(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	studentID := mustRegisterStudent(t, eng, "Asha", "R100")
	examID := mustCreateExam(t, eng, "Mid Term", 100)

	err := eng.Exams.RecordResult(ctx, studentID, examID, 101)
	assert.ErrorIs(t, err, ErrValidation)

	err = eng.Exams.RecordResult(ctx, studentID, examID, -1)
	assert.ErrorIs(t, err, ErrValidation)

	// Zero marks is a valid result.
	require.NoError(t, eng.Exams.RecordResult(ctx, studentID, examID, 0))
}

func TestRecordResultNoSilentOverwrite(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	studentID := mustRegisterStudent(t, eng, "Asha", "R100")
	examID := mustCreateExam(t, eng, "Mid Term", 100)

	require.NoError(t, eng.Exams.RecordResult(ctx, studentID, examID, 70))

	err := eng.Exams.RecordResult(ctx, studentID, examID, 90)
	assert.ErrorIs(t, err, ErrDuplicateKey)

	// The explicit update path changes it.
	require.NoError(t, eng.Exams.UpdateResult(ctx, studentID, examID, 90))

	sheet, err := eng.Exams.ResultsForExam(ctx, examID)
	require.NoError(t, err)
	require.Len(t, sheet, 1)
	assert.Equal(t, 90, sheet[0].MarksObtained)
}

func TestUpdateResultMissing(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	studentID := mustRegisterStudent(t, eng, "Asha", "R100")
	examID := mustCreateExam(t, eng, "Mid Term", 100)

	err := eng.Exams.UpdateResult(ctx, studentID, examID, 50)
	assert.ErrorIs(t, err, ErrNotFound)

	err = eng.Exams.UpdateResult(ctx, studentID, "no-such-exam", 50)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordResultUnknownReferences(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	studentID := mustRegisterStudent(t, eng, "Asha", "R100")
	examID := mustCreateExam(t, eng, "Mid Term", 100)

	err := eng.Exams.RecordResult(ctx, studentID, "no-such-exam", 10)
	assert.ErrorIs(t, err, ErrNotFound)

	err = eng.Exams.RecordResult(ctx, "no-such-student", examID, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResultsForExamRanking(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	examID := mustCreateExam(t, eng, "Mid Term", 100)
	asha := mustRegisterStudent(t, eng, "Asha", "R100")
	binta := mustRegisterStudent(t, eng, "Binta", "R200")
	chen := mustRegisterStudent(t, eng, "Chen", "R300")

	require.NoError(t, eng.Exams.RecordResult(ctx, binta, examID, 85))
	require.NoError(t, eng.Exams.RecordResult(ctx, chen, examID, 92))
	require.NoError(t, eng.Exams.RecordResult(ctx, asha, examID, 85))

	sheet, err := eng.Exams.ResultsForExam(ctx, examID)
	require.NoError(t, err)
	require.Len(t, sheet, 3)
	// Marks descending, ties broken by name ascending.
	assert.Equal(t, "Chen", sheet[0].Name)
	assert.Equal(t, "Asha", sheet[1].Name)
	assert.Equal(t, "Binta", sheet[2].Name)
}

func TestResultsForStudent(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	studentID := mustRegisterStudent(t, eng, "Asha", "R100")
	mid := mustCreateExam(t, eng, "Mid Term", 100)
	final := mustCreateExam(t, eng, "Final", 50)

	require.NoError(t, eng.Exams.RecordResult(ctx, studentID, mid, 80))
	require.NoError(t, eng.Exams.RecordResult(ctx, studentID, final, 45))

	results, err := eng.Exams.ResultsForStudent(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.LessOrEqual(t, r.MarksObtained, r.MaxMarks)
		assert.NotEmpty(t, r.ExamName)
	}

	_, err = eng.Exams.ResultsForExam(ctx, "no-such-exam")
	assert.ErrorIs(t, err, ErrNotFound)
}
