package engine

import (
	"context"
	"database/sql"
	"strings"

	"github.com/alishbasheba1-droid/SMS/app/models"
	"github.com/google/uuid"
)

// Timetable keeps the class/day/period assignment grid. Last write wins for
// a slot; there is no derived state to maintain.
type Timetable struct {
	db *sql.DB
}

// SetSlot upserts the assignment for (class, day, period).
func (t *Timetable) SetSlot(ctx context.Context, slot models.TimetableSlot) error {
	slot.Class = strings.TrimSpace(slot.Class)
	slot.Day = strings.ToLower(strings.TrimSpace(slot.Day))
	slot.Subject = strings.TrimSpace(slot.Subject)
	if slot.Class == "" || slot.Day == "" || slot.Subject == "" {
		return validationf("class, day and subject are required")
	}
	if slot.Period < 1 {
		return validationf("period must be at least 1, got %d", slot.Period)
	}

	_, err := t.db.ExecContext(ctx,
		`INSERT INTO timetable (id, class, day, period, subject, teacher)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (class, day, period) DO UPDATE
		 SET subject = excluded.subject, teacher = excluded.teacher`,
		uuid.New().String(), slot.Class, slot.Day, slot.Period, slot.Subject, slot.Teacher,
	)
	if err != nil {
		return storageErr(err)
	}
	return nil
}

// Grid returns a class's slots ordered by day then period.
func (t *Timetable) Grid(ctx context.Context, class string) ([]models.TimetableSlot, error) {
	rows, err := t.db.QueryContext(ctx,
		`SELECT class, day, period, subject, teacher
		 FROM timetable WHERE class = $1
		 ORDER BY day, period`,
		class,
	)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	grid := []models.TimetableSlot{}
	for rows.Next() {
		var s models.TimetableSlot
		if err := rows.Scan(&s.Class, &s.Day, &s.Period, &s.Subject, &s.Teacher); err != nil {
			return nil, storageErr(err)
		}
		grid = append(grid, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return grid, nil
}
