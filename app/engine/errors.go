package engine

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// Error taxonomy returned by every engine operation. Callers match with
// errors.Is; only ErrStorage is worth retrying.
var (
	ErrValidation   = errors.New("validation error")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrOutOfStock   = errors.New("out of stock")
	ErrStorage      = errors.New("storage failure")
)

func validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// isUniqueViolation reports whether err is a unique-constraint failure from
// either supported driver.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	var sqErr sqlite3.Error
	if errors.As(err, &sqErr) {
		return sqErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// isForeignKeyViolation reports whether err is a foreign-key failure, which
// the engine surfaces as NotFound: the referenced row does not exist.
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqForeignKeyViolation
	}
	var sqErr sqlite3.Error
	if errors.As(err, &sqErr) {
		return sqErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}

// mapWriteErr translates a driver error from an insert/update into the
// engine taxonomy. dup names the constraint-bearing field for the message,
// ref the entity a foreign key points at.
func mapWriteErr(err error, dup, ref string) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %s already exists", ErrDuplicateKey, dup)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: %s does not exist", ErrNotFound, ref)
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	default:
		return storageErr(err)
	}
}
