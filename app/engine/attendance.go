package engine

import (
	"context"
	"database/sql"
	"time"

	"github.com/alishbasheba1-droid/SMS/app/models"
	"github.com/google/uuid"
)

// AttendanceLedger records one status per student per date.
type AttendanceLedger struct {
	db *sql.DB
}

// Mark upserts the whole batch for one date atomically: every entry commits
// or none do. Re-marking a (student, date) pair replaces the earlier status.
func (l *AttendanceLedger) Mark(ctx context.Context, date time.Time, entries []models.AttendanceEntry) error {
	if len(entries) == 0 {
		return validationf("attendance batch is empty")
	}
	for _, e := range entries {
		if e.StudentID == "" {
			return validationf("entry missing student id")
		}
		if !e.Status.Valid() {
			return validationf("invalid attendance status %q", e.Status)
		}
	}

	day := fmtDate(date)
	return withTx(ctx, l.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO attendance (id, student_id, date, status)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (student_id, date) DO UPDATE SET status = excluded.status`)
		if err != nil {
			return storageErr(err)
		}
		defer stmt.Close()

		for _, e := range entries {
			if _, err := stmt.ExecContext(ctx, uuid.New().String(), e.StudentID, day, e.Status); err != nil {
				return mapWriteErr(err, "attendance record", "student")
			}
		}
		return nil
	})
}

// PresentCount returns how many students were marked present on date.
func (l *AttendanceLedger) PresentCount(ctx context.Context, date time.Time) (int, error) {
	var n int
	err := l.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attendance WHERE date = $1 AND status = $2`,
		fmtDate(date), models.Present,
	).Scan(&n)
	if err != nil {
		return 0, storageErr(err)
	}
	return n, nil
}

// History returns a student's marks in ascending date order. A student with
// no records (or no longer on the roll) yields an empty history.
func (l *AttendanceLedger) History(ctx context.Context, studentID string) ([]models.AttendanceMark, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT date, status FROM attendance WHERE student_id = $1 ORDER BY date`,
		studentID,
	)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	marks := []models.AttendanceMark{}
	for rows.Next() {
		var m models.AttendanceMark
		if err := rows.Scan(&m.Date, &m.Status); err != nil {
			return nil, storageErr(err)
		}
		marks = append(marks, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return marks, nil
}

// ByDate returns the register for a date: every mark joined with the
// student's display fields, in roll-number order.
func (l *AttendanceLedger) ByDate(ctx context.Context, date time.Time) ([]models.DayAttendance, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT s.id, s.name, s.roll_no, a.status
		 FROM attendance a
		 JOIN students s ON a.student_id = s.id
		 WHERE a.date = $1
		 ORDER BY s.roll_no`,
		fmtDate(date),
	)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	register := []models.DayAttendance{}
	for rows.Next() {
		var d models.DayAttendance
		if err := rows.Scan(&d.StudentID, &d.Name, &d.RollNo, &d.Status); err != nil {
			return nil, storageErr(err)
		}
		register = append(register, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return register, nil
}
