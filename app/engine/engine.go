// Package engine implements the school records engine: registries and
// ledgers for students, teachers, attendance, fees, exams, library
// circulation and timetables, all executing against one shared relational
// store with the schema's constraints doing the integrity work.
package engine

import (
	"context"
	"database/sql"
	"time"
)

// dateLayout is the wire and storage format for calendar dates. Stored as
// text it sorts lexicographically in date order on both drivers.
const dateLayout = "2006-01-02"

func fmtDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Engine owns the shared store handle and exposes one component per module.
// Construct it once at startup and pass it to the presentation layer; the
// handle itself is opened and closed by the caller.
type Engine struct {
	Students   *StudentRegistry
	Teachers   *TeacherRegistry
	Attendance *AttendanceLedger
	Fees       *FeeLedger
	Exams      *Gradebook
	Library    *Library
	Timetable  *Timetable
	Dashboard  *Dashboard
}

// New wires every component onto the same *sql.DB.
func New(db *sql.DB) *Engine {
	return &Engine{
		Students:   &StudentRegistry{db: db},
		Teachers:   &TeacherRegistry{db: db},
		Attendance: &AttendanceLedger{db: db},
		Fees:       &FeeLedger{db: db},
		Exams:      &Gradebook{db: db},
		Library:    &Library{db: db},
		Timetable:  &Timetable{db: db},
		Dashboard:  &Dashboard{db: db},
	}
}

// withTx runs fn inside a transaction. Any error, including the caller
// abandoning ctx mid-flight, rolls the whole unit back; partial application
// is never left behind.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr(err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return storageErr(err)
	}
	return nil
}
