// Package repository provides the data access layer over gorm.
package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("record not found")

const pgUniqueViolation = "23505"

// DuplicateKeyError reports a unique index violation raised by the database.
// Field is derived from the index name (idx_<table>_<field>).
type DuplicateKeyError struct {
	Field string
	Err   error
}

func (e *DuplicateKeyError) Error() string {
	return "duplicate value for " + e.Field
}

func (e *DuplicateKeyError) Unwrap() error { return e.Err }

func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &DuplicateKeyError{Field: fieldFromIndex(pgErr.ConstraintName), Err: err}
	}
	return err
}

func fieldFromIndex(name string) string {
	if i := strings.LastIndex(name, "_"); i >= 0 && i < len(name)-1 {
		return name[i+1:]
	}
	return name
}
