package database

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes yang kita bedakan untuk caller
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// ErrNotFound is returned by repositories when a single-row lookup matches nothing.
var ErrNotFound = errors.New("record not found")

// IsNotFound reports whether err means a single-row fetch found zero rows.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, pgx.ErrNoRows)
}

// IsUniqueViolation reports whether err is a unique constraint violation
// (duplicate username, duplicate follow edge, duplicate list entry).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeUniqueViolation
	}
	return false
}

// IsForeignKeyViolation reports whether err references a nonexistent related row.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeForeignKeyViolation
	}
	return false
}

// ErrorCode returns the Postgres error code when available, else empty string.
func ErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
