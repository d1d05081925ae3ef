package engine

import (
	"database/sql"
	"log"
)

// schema holds the eight relations of the records engine. The DDL sticks to
// the dialect both supported drivers accept: TEXT surrogate keys generated
// in Go, dates stored as YYYY-MM-DD text, constraints declared in the table
// so the store enforces uniqueness and referential integrity itself.
const schema = `
CREATE TABLE IF NOT EXISTS students (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	roll_no    TEXT NOT NULL UNIQUE,
	class      TEXT NOT NULL DEFAULT '',
	section    TEXT NOT NULL DEFAULT '',
	age        INTEGER NOT NULL CHECK (age BETWEEN 5 AND 30),
	phone      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS teachers (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	teacher_id TEXT NOT NULL UNIQUE,
	subject    TEXT NOT NULL DEFAULT '',
	phone      TEXT NOT NULL DEFAULT '',
	email      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS attendance (
	id         TEXT PRIMARY KEY,
	student_id TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
	date       TEXT NOT NULL,
	status     TEXT NOT NULL,
	UNIQUE (student_id, date)
);

CREATE TABLE IF NOT EXISTS fees (
	id           TEXT PRIMARY KEY,
	student_id   TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
	amount_due   DOUBLE PRECISION NOT NULL CHECK (amount_due >= 0),
	amount_paid  DOUBLE PRECISION NOT NULL CHECK (amount_paid >= 0),
	payment_date TEXT NOT NULL,
	status       TEXT NOT NULL,
	created_at   TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS exams (
	id         TEXT PRIMARY KEY,
	exam_name  TEXT NOT NULL,
	class      TEXT NOT NULL DEFAULT '',
	subject    TEXT NOT NULL DEFAULT '',
	max_marks  INTEGER NOT NULL CHECK (max_marks > 0),
	date       TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
	id             TEXT PRIMARY KEY,
	student_id     TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
	exam_id        TEXT NOT NULL REFERENCES exams(id) ON DELETE CASCADE,
	marks_obtained INTEGER NOT NULL CHECK (marks_obtained >= 0),
	UNIQUE (student_id, exam_id)
);

CREATE TABLE IF NOT EXISTS books (
	id               TEXT PRIMARY KEY,
	title            TEXT NOT NULL,
	author           TEXT NOT NULL DEFAULT '',
	isbn             TEXT NOT NULL UNIQUE,
	total_copies     INTEGER NOT NULL CHECK (total_copies >= 1),
	available_copies INTEGER NOT NULL,
	created_at       TIMESTAMP NOT NULL,
	CHECK (available_copies >= 0 AND available_copies <= total_copies)
);

CREATE TABLE IF NOT EXISTS library_transactions (
	id          TEXT PRIMARY KEY,
	book_id     TEXT NOT NULL REFERENCES books(id) ON DELETE CASCADE,
	student_id  TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
	issue_date  TEXT NOT NULL,
	return_date TEXT,
	status      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS timetable (
	id      TEXT PRIMARY KEY,
	class   TEXT NOT NULL,
	day     TEXT NOT NULL,
	period  INTEGER NOT NULL CHECK (period >= 1),
	subject TEXT NOT NULL,
	teacher TEXT NOT NULL DEFAULT '',
	UNIQUE (class, day, period)
);

CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance(date);
CREATE INDEX IF NOT EXISTS idx_fees_student ON fees(student_id);
CREATE INDEX IF NOT EXISTS idx_results_exam ON results(exam_id);
CREATE INDEX IF NOT EXISTS idx_loans_book ON library_transactions(book_id);
CREATE INDEX IF NOT EXISTS idx_loans_student ON library_transactions(student_id);
`

// CreateSchema applies the schema, creating anything missing. Safe to run on
// every startup.
func CreateSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		log.Printf("Failed to apply schema: %v", err)
		return storageErr(err)
	}
	return nil
}
