package database

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrNotFound))
	assert.True(t, IsNotFound(pgx.ErrNoRows))
	assert.True(t, IsNotFound(fmt.Errorf("find row: %w", ErrNotFound)))
	assert.True(t, IsNotFound(fmt.Errorf("scan: %w", pgx.ErrNoRows)))
	assert.False(t, IsNotFound(fmt.Errorf("connection refused")))
	assert.False(t, IsNotFound(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "profiles_username_key"}

	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", unique)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(fmt.Errorf("plain error")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "comments_review_id_fkey"}

	assert.True(t, IsForeignKeyViolation(fk))
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("insert: %w", fk)))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsForeignKeyViolation(nil))
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "23505", ErrorCode(&pgconn.PgError{Code: "23505"}))
	assert.Equal(t, "", ErrorCode(fmt.Errorf("plain error")))
	assert.Equal(t, "", ErrorCode(nil))
}
