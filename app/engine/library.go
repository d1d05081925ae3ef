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

// Library manages the book catalog and the loan state machine. The stored
// available_copies column is only ever changed in the same transaction as
// the loan row it reflects, so availableCopies + issued loans == totalCopies
// holds after every commit.
type Library struct {
	db *sql.DB
}

// AddBook validates and inserts a catalog entry with all copies available.
func (l *Library) AddBook(ctx context.Context, b *models.Book) (string, error) {
	b.Title = strings.TrimSpace(b.Title)
	b.ISBN = strings.TrimSpace(b.ISBN)
	if b.Title == "" {
		return "", validationf("title is required")
	}
	if b.ISBN == "" {
		return "", validationf("isbn is required")
	}
	if b.TotalCopies < 1 {
		return "", validationf("a book needs at least one copy, got %d", b.TotalCopies)
	}

	b.ID = uuid.New().String()
	b.AvailableCopies = b.TotalCopies
	b.CreatedAt = time.Now().UTC()
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO books (id, title, author, isbn, total_copies, available_copies, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID, b.Title, b.Author, b.ISBN, b.TotalCopies, b.AvailableCopies, b.CreatedAt,
	)
	if err != nil {
		return "", mapWriteErr(err, "isbn", "book")
	}
	return b.ID, nil
}

// ListBooks returns the catalog in insertion order.
func (l *Library) ListBooks(ctx context.Context) ([]*models.Book, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, title, author, isbn, total_copies, available_copies, created_at
		 FROM books ORDER BY created_at, id`)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	books := []*models.Book{}
	for rows.Next() {
		b := &models.Book{}
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.TotalCopies, &b.AvailableCopies, &b.CreatedAt); err != nil {
			return nil, storageErr(err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return books, nil
}

// Issue lends one copy of a book to a student. The availability check and
// decrement are a single conditional update, so concurrent issues against
// the last copy serialize into one success and one OutOfStock; the count can
// never go negative.
func (l *Library) Issue(ctx context.Context, bookID, studentID string, date time.Time) (string, error) {
	loanID := uuid.New().String()
	err := withTx(ctx, l.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE books SET available_copies = available_copies - 1
			 WHERE id = $1 AND available_copies > 0`, bookID)
		if err != nil {
			return storageErr(err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return storageErr(err)
		}
		if n == 0 {
			var exists int
			if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM books WHERE id = $1`, bookID).Scan(&exists); err != nil {
				return storageErr(err)
			}
			if exists == 0 {
				return notFoundf("book %s", bookID)
			}
			return fmt.Errorf("%w: no copies of book %s available", ErrOutOfStock, bookID)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO library_transactions (id, book_id, student_id, issue_date, status)
			 VALUES ($1, $2, $3, $4, $5)`,
			loanID, bookID, studentID, fmtDate(date), models.LoanIssued,
		)
		return mapWriteErr(err, "loan", "student")
	})
	if err != nil {
		return "", err
	}
	return loanID, nil
}

// Return closes a loan. The status change is a conditional update guarded on
// the loan still being issued, co-committed with the copy-count increment;
// returning twice fails with Conflict.
func (l *Library) Return(ctx context.Context, loanID string, date time.Time) error {
	return withTx(ctx, l.db, func(tx *sql.Tx) error {
		var bookID string
		err := tx.QueryRowContext(ctx,
			`UPDATE library_transactions SET status = $1, return_date = $2
			 WHERE id = $3 AND status = $4
			 RETURNING book_id`,
			models.LoanReturned, fmtDate(date), loanID, models.LoanIssued,
		).Scan(&bookID)
		if err == sql.ErrNoRows {
			var status string
			err := tx.QueryRowContext(ctx, `SELECT status FROM library_transactions WHERE id = $1`, loanID).Scan(&status)
			if err == sql.ErrNoRows {
				return notFoundf("loan %s", loanID)
			}
			if err != nil {
				return storageErr(err)
			}
			return fmt.Errorf("%w: loan %s already returned", ErrConflict, loanID)
		}
		if err != nil {
			return storageErr(err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE books SET available_copies = available_copies + 1 WHERE id = $1`, bookID)
		if err != nil {
			return storageErr(err)
		}
		return nil
	})
}

// LoansForStudent returns a student's loans, newest first.
func (l *Library) LoansForStudent(ctx context.Context, studentID string) ([]*models.LoanRecord, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, book_id, student_id, issue_date, return_date, status
		 FROM library_transactions WHERE student_id = $1
		 ORDER BY issue_date DESC, id`,
		studentID,
	)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	loans := []*models.LoanRecord{}
	for rows.Next() {
		rec := &models.LoanRecord{}
		if err := rows.Scan(&rec.ID, &rec.BookID, &rec.StudentID, &rec.IssueDate, &rec.ReturnDate, &rec.Status); err != nil {
			return nil, storageErr(err)
		}
		loans = append(loans, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return loans, nil
}
