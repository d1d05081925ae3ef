package engine

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/alishbasheba1-droid/SMS/app/models"
	"github.com/google/uuid"
)

// Gradebook manages exam definitions and per-student results.
type Gradebook struct {
	db *sql.DB
}

// CreateExam validates and inserts an exam definition.
func (g *Gradebook) CreateExam(ctx context.Context, e *models.Exam) (string, error) {
	e.ExamName = strings.TrimSpace(e.ExamName)
	if e.ExamName == "" {
		return "", validationf("exam name is required")
	}
	if e.MaxMarks <= 0 {
		return "", validationf("max marks must be positive, got %d", e.MaxMarks)
	}

	e.ID = uuid.New().String()
	e.CreatedAt = time.Now().UTC()
	_, err := g.db.ExecContext(ctx,
		`INSERT INTO exams (id, exam_name, class, subject, max_marks, date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.ExamName, e.Class, e.Subject, e.MaxMarks, e.Date, e.CreatedAt,
	)
	if err != nil {
		return "", mapWriteErr(err, "exam", "exam")
	}
	return e.ID, nil
}

// ListExams returns exam definitions in insertion order.
func (g *Gradebook) ListExams(ctx context.Context) ([]*models.Exam, error) {
	rows, err := g.db.QueryContext(ctx,
		`SELECT id, exam_name, class, subject, max_marks, date, created_at
		 FROM exams ORDER BY created_at, id`)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	exams := []*models.Exam{}
	for rows.Next() {
		e := &models.Exam{}
		if err := rows.Scan(&e.ID, &e.ExamName, &e.Class, &e.Subject, &e.MaxMarks, &e.Date, &e.CreatedAt); err != nil {
			return nil, storageErr(err)
		}
		exams = append(exams, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return exams, nil
}

// RecordResult enters a student's marks for an exam. Marks must lie in
// [0, max_marks] of the exam. An existing result for the pair is never
// silently overwritten; change it through UpdateResult.
func (g *Gradebook) RecordResult(ctx context.Context, studentID, examID string, marks int) error {
	return withTx(ctx, g.db, func(tx *sql.Tx) error {
		maxMarks, err := examMaxMarks(ctx, tx, examID)
		if err != nil {
			return err
		}
		if marks < 0 || marks > maxMarks {
			return validationf("marks %d outside [0, %d]", marks, maxMarks)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO results (id, student_id, exam_id, marks_obtained)
			 VALUES ($1, $2, $3, $4)`,
			uuid.New().String(), studentID, examID, marks,
		)
		return mapWriteErr(err, "result for this student and exam", "student")
	})
}

// UpdateResult replaces the marks of an existing result, re-validated
// against the exam's maximum.
func (g *Gradebook) UpdateResult(ctx context.Context, studentID, examID string, marks int) error {
	return withTx(ctx, g.db, func(tx *sql.Tx) error {
		maxMarks, err := examMaxMarks(ctx, tx, examID)
		if err != nil {
			return err
		}
		if marks < 0 || marks > maxMarks {
			return validationf("marks %d outside [0, %d]", marks, maxMarks)
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE results SET marks_obtained = $1 WHERE student_id = $2 AND exam_id = $3`,
			marks, studentID, examID,
		)
		if err != nil {
			return storageErr(err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return storageErr(err)
		}
		if n == 0 {
			return notFoundf("no result for student %s in exam %s", studentID, examID)
		}
		return nil
	})
}

func examMaxMarks(ctx context.Context, tx *sql.Tx, examID string) (int, error) {
	var maxMarks int
	err := tx.QueryRowContext(ctx, `SELECT max_marks FROM exams WHERE id = $1`, examID).Scan(&maxMarks)
	if err == sql.ErrNoRows {
		return 0, notFoundf("exam %s", examID)
	}
	if err != nil {
		return 0, storageErr(err)
	}
	return maxMarks, nil
}

// ResultsForExam returns the ranked sheet for one exam: marks descending,
// ties broken by student name.
func (g *Gradebook) ResultsForExam(ctx context.Context, examID string) ([]models.ExamResult, error) {
	var exists int
	err := g.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM exams WHERE id = $1`, examID).Scan(&exists)
	if err != nil {
		return nil, storageErr(err)
	}
	if exists == 0 {
		return nil, notFoundf("exam %s", examID)
	}

	rows, err := g.db.QueryContext(ctx,
		`SELECT s.id, s.name, s.roll_no, r.marks_obtained
		 FROM results r
		 JOIN students s ON r.student_id = s.id
		 WHERE r.exam_id = $1
		 ORDER BY r.marks_obtained DESC, s.name`,
		examID,
	)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	sheet := []models.ExamResult{}
	for rows.Next() {
		var r models.ExamResult
		if err := rows.Scan(&r.StudentID, &r.Name, &r.RollNo, &r.MarksObtained); err != nil {
			return nil, storageErr(err)
		}
		sheet = append(sheet, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return sheet, nil
}

// ResultsForStudent returns a student's marks across exams with the exam
// context needed to read them.
func (g *Gradebook) ResultsForStudent(ctx context.Context, studentID string) ([]models.StudentResult, error) {
	rows, err := g.db.QueryContext(ctx,
		`SELECT e.id, e.exam_name, e.subject, r.marks_obtained, e.max_marks
		 FROM results r
		 JOIN exams e ON r.exam_id = e.id
		 WHERE r.student_id = $1
		 ORDER BY e.date, e.exam_name`,
		studentID,
	)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	results := []models.StudentResult{}
	for rows.Next() {
		var r models.StudentResult
		if err := rows.Scan(&r.ExamID, &r.ExamName, &r.Subject, &r.MarksObtained, &r.MaxMarks); err != nil {
			return nil, storageErr(err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return results, nil
}
