package engine

import (
	"context"
	"database/sql"
	"time"

	"github.com/alishbasheba1-droid/SMS/app/models"
)

// Dashboard is the read-only aggregation facade. It owns no state; every
// figure is computed from the store on each call.
type Dashboard struct {
	db *sql.DB
}

// Stats returns the overview figures for the given day.
func (d *Dashboard) Stats(ctx context.Context, today time.Time) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	if err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM students`).Scan(&stats.TotalStudents); err != nil {
		return nil, storageErr(err)
	}
	if err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM teachers`).Scan(&stats.TotalTeachers); err != nil {
		return nil, storageErr(err)
	}
	if err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM books`).Scan(&stats.TotalBooks); err != nil {
		return nil, storageErr(err)
	}

	// Sum of positive per-student balances, matching the dues report.
	err := d.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(due), 0) FROM (
			SELECT SUM(amount_due - amount_paid) AS due
			FROM fees GROUP BY student_id
			HAVING SUM(amount_due - amount_paid) > 0
		 ) balances`).Scan(&stats.OutstandingDues)
	if err != nil {
		return nil, storageErr(err)
	}

	err = d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attendance WHERE date = $1 AND status = $2`,
		fmtDate(today), models.Present,
	).Scan(&stats.PresentToday)
	if err != nil {
		return nil, storageErr(err)
	}

	return stats, nil
}
