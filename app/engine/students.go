package engine

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/alishbasheba1-droid/SMS/app/models"
	"github.com/google/uuid"
)

// StudentRegistry manages enrolled student records.
type StudentRegistry struct {
	db *sql.DB
}

// Register validates and inserts a new student, returning the surrogate id.
// Roll numbers are normalised to upper case before the uniqueness check.
func (r *StudentRegistry) Register(ctx context.Context, s *models.Student) (string, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.RollNo = strings.ToUpper(strings.TrimSpace(s.RollNo))
	s.Section = strings.ToUpper(strings.TrimSpace(s.Section))
	if s.Name == "" {
		return "", validationf("name is required")
	}
	if s.RollNo == "" {
		return "", validationf("roll number is required")
	}
	if s.Age < 5 || s.Age > 30 {
		return "", validationf("age must be between 5 and 30, got %d", s.Age)
	}

	s.ID = uuid.New().String()
	s.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO students (id, name, roll_no, class, section, age, phone, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.Name, s.RollNo, s.Class, s.Section, s.Age, s.Phone, s.CreatedAt,
	)
	if err != nil {
		return "", mapWriteErr(err, "roll number", "student")
	}
	return s.ID, nil
}

// List returns students in insertion order. A non-empty search narrows the
// result to names and roll numbers containing it, case-insensitively.
func (r *StudentRegistry) List(ctx context.Context, search string) ([]*models.Student, error) {
	query := `SELECT id, name, roll_no, class, section, age, phone, created_at
			  FROM students`
	args := []interface{}{}
	if search = strings.TrimSpace(search); search != "" {
		query += ` WHERE lower(name) LIKE $1 OR lower(roll_no) LIKE $2`
		pattern := "%" + strings.ToLower(search) + "%"
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.Name, &s.RollNo, &s.Class, &s.Section, &s.Age, &s.Phone, &s.CreatedAt); err != nil {
			return nil, storageErr(err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return students, nil
}

// Get fetches one student by surrogate id.
func (r *StudentRegistry) Get(ctx context.Context, id string) (*models.Student, error) {
	s := &models.Student{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, roll_no, class, section, age, phone, created_at
		 FROM students WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.RollNo, &s.Class, &s.Section, &s.Age, &s.Phone, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, notFoundf("student %s", id)
	}
	if err != nil {
		return nil, storageErr(err)
	}
	return s, nil
}

// Delete removes a student and cascades to their attendance, fee, result and
// loan rows. Copies for any loans still out come back to their books inside
// the same transaction, so the availability invariant survives the cascade.
func (r *StudentRegistry) Delete(ctx context.Context, id string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`UPDATE books
			 SET available_copies = available_copies + (
				 SELECT COUNT(*) FROM library_transactions lt
				 WHERE lt.book_id = books.id AND lt.student_id = $1 AND lt.status = 'issued'
			 )
			 WHERE id IN (
				 SELECT book_id FROM library_transactions
				 WHERE student_id = $2 AND status = 'issued'
			 )`, id, id)
		if err != nil {
			return storageErr(err)
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
		if err != nil {
			return storageErr(err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return storageErr(err)
		}
		if n == 0 {
			return notFoundf("student %s", id)
		}
		return nil
	})
}
