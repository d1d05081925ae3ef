package engine

import (
	"context"
	"database/sql"
	"time"

	"github.com/alishbasheba1-droid/SMS/app/models"
	"github.com/google/uuid"
)

// FeeLedger records fee payment events. Entries are immutable; dues are
// always derived by summing over them.
type FeeLedger struct {
	db *sql.DB
}

// RecordPayment appends one ledger entry for a student. Status is derived:
// paid when amountPaid covers amountDue, pending otherwise.
func (l *FeeLedger) RecordPayment(ctx context.Context, studentID string, amountDue, amountPaid float64, date time.Time) (string, error) {
	if studentID == "" {
		return "", validationf("student id is required")
	}
	if amountDue < 0 || amountPaid < 0 {
		return "", validationf("amounts must not be negative")
	}

	status := models.FeePending
	if amountPaid >= amountDue {
		status = models.FeePaid
	}

	id := uuid.New().String()
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO fees (id, student_id, amount_due, amount_paid, payment_date, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, studentID, amountDue, amountPaid, fmtDate(date), status, time.Now().UTC(),
	)
	if err != nil {
		return "", mapWriteErr(err, "payment", "student")
	}
	return id, nil
}

// OutstandingDues reports, per student, the sum of due minus paid across all
// their entries, keeping only positive balances, most owed first.
func (l *FeeLedger) OutstandingDues(ctx context.Context) ([]models.OutstandingDue, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT s.id, s.name, s.roll_no, SUM(f.amount_due - f.amount_paid) AS total_due
		 FROM fees f
		 JOIN students s ON f.student_id = s.id
		 GROUP BY s.id, s.name, s.roll_no
		 HAVING SUM(f.amount_due - f.amount_paid) > 0
		 ORDER BY total_due DESC`)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	dues := []models.OutstandingDue{}
	for rows.Next() {
		var d models.OutstandingDue
		if err := rows.Scan(&d.StudentID, &d.Name, &d.RollNo, &d.TotalDue); err != nil {
			return nil, storageErr(err)
		}
		dues = append(dues, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return dues, nil
}

// PaymentsForStudent returns a student's ledger entries, oldest first.
func (l *FeeLedger) PaymentsForStudent(ctx context.Context, studentID string) ([]*models.FeePayment, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, student_id, amount_due, amount_paid, payment_date, status, created_at
		 FROM fees WHERE student_id = $1
		 ORDER BY payment_date, created_at`,
		studentID,
	)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	payments := []*models.FeePayment{}
	for rows.Next() {
		p := &models.FeePayment{}
		if err := rows.Scan(&p.ID, &p.StudentID, &p.AmountDue, &p.AmountPaid, &p.PaymentDate, &p.Status, &p.CreatedAt); err != nil {
			return nil, storageErr(err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return payments, nil
}
