package engine

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/alishbasheba1-droid/SMS/app/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newTestEngine opens a private in-memory store with the schema applied.
// cache=shared with a single pooled connection keeps the database alive and
// visible to every goroutine in the test.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.New().String())
	db, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, CreateSchema(db))
	return New(db)
}

func mustRegisterStudent(t *testing.T, eng *Engine, name, rollNo string) string {
	t.Helper()
	id, err := eng.Students.Register(context.Background(), &models.Student{
		Name:   name,
		RollNo: rollNo,
		Class:  "10",
		Age:    15,
	})
	require.NoError(t, err)
	return id
}

func mustAddBook(t *testing.T, eng *Engine, title, isbn string, copies int) string {
	t.Helper()
	id, err := eng.Library.AddBook(context.Background(), &models.Book{
		Title:       title,
		Author:      "Test Author",
		ISBN:        isbn,
		TotalCopies: copies,
	})
	require.NoError(t, err)
	return id
}

func mustCreateExam(t *testing.T, eng *Engine, name string, maxMarks int) string {
	t.Helper()
	id, err := eng.Exams.CreateExam(context.Background(), &models.Exam{
		ExamName: name,
		Class:    "10",
		Subject:  "Mathematics",
		MaxMarks: maxMarks,
		Date:     "2025-03-10",
	})
	require.NoError(t, err)
	return id
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}
