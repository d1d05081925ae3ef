package engine

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alishbasheba1-droid/SMS/app/models"
	"github.com/google/uuid"
)

// TeacherRegistry manages teaching staff records.
type TeacherRegistry struct {
	db *sql.DB
}

// Register validates and inserts a new teacher, returning the surrogate id.
func (r *TeacherRegistry) Register(ctx context.Context, t *models.Teacher) (string, error) {
	t.Name = strings.TrimSpace(t.Name)
	t.TeacherID = strings.ToUpper(strings.TrimSpace(t.TeacherID))
	if t.Name == "" {
		return "", validationf("name is required")
	}
	if t.TeacherID == "" {
		return "", validationf("teacher id is required")
	}

	t.ID = uuid.New().String()
	t.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO teachers (id, name, teacher_id, subject, phone, email, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.Name, t.TeacherID, t.Subject, t.Phone, t.Email, t.CreatedAt,
	)
	if err != nil {
		return "", mapWriteErr(err, "teacher id", "teacher")
	}
	return t.ID, nil
}

// List returns teachers in insertion order, optionally filtered by a
// case-insensitive substring over name and teacher id.
func (r *TeacherRegistry) List(ctx context.Context, search string) ([]*models.Teacher, error) {
	query := `SELECT id, name, teacher_id, subject, phone, email, created_at
			  FROM teachers`
	args := []interface{}{}
	if search = strings.TrimSpace(search); search != "" {
		query += ` WHERE lower(name) LIKE $1 OR lower(teacher_id) LIKE $2`
		pattern := "%" + strings.ToLower(search) + "%"
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	teachers := []*models.Teacher{}
	for rows.Next() {
		t := &models.Teacher{}
		if err := rows.Scan(&t.ID, &t.Name, &t.TeacherID, &t.Subject, &t.Phone, &t.Email, &t.CreatedAt); err != nil {
			return nil, storageErr(err)
		}
		teachers = append(teachers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return teachers, nil
}

// Delete removes a teacher. It refuses with Conflict while any timetable
// slot still names the teacher, to keep the published schedule honest.
func (r *TeacherRegistry) Delete(ctx context.Context, id string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var name string
		err := tx.QueryRowContext(ctx, `SELECT name FROM teachers WHERE id = $1`, id).Scan(&name)
		if err == sql.ErrNoRows {
			return notFoundf("teacher %s", id)
		}
		if err != nil {
			return storageErr(err)
		}

		var slots int
		err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM timetable WHERE teacher = $1`, name).Scan(&slots)
		if err != nil {
			return storageErr(err)
		}
		if slots > 0 {
			return fmt.Errorf("%w: teacher %q is assigned to %d timetable slot(s)", ErrConflict, name, slots)
		}

		_, err = tx.ExecContext(ctx, `DELETE FROM teachers WHERE id = $1`, id)
		if err != nil {
			return storageErr(err)
		}
		return nil
	})
}
