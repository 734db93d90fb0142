package repository

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier(t *testing.T) {
	c := NewErrorClassifier()

	tests := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"nil", nil, ""},
		{"pg duplicate", &pgconn.PgError{Code: "23505"}, DuplicateKeyError},
		{"pg fk", &pgconn.PgError{Code: "23503"}, ConstraintError},
		{"pg serialization", &pgconn.PgError{Code: "40001"}, LockError},
		{"pg auth", &pgconn.PgError{Code: "28P01"}, PermissionError},
		{"pg connection", &pgconn.PgError{Code: "08006"}, ConnectionError},
		{"mysql duplicate", &mysql.MySQLError{Number: 1062}, DuplicateKeyError},
		{"mysql deadlock", &mysql.MySQLError{Number: 1213}, LockError},
		{"mysql syntax", &mysql.MySQLError{Number: 1064}, SyntaxError},
		{"sqlite unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, DuplicateKeyError},
		{"sqlite not null", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, ConstraintError},
		{"sqlite busy", sqlite3.Error{Code: sqlite3.ErrBusy}, LockError},
		{"sqlite readonly", sqlite3.Error{Code: sqlite3.ErrReadonly}, PermissionError},
		{"text duplicate", errors.New("Duplicate entry 'x' for key 'PRIMARY'"), DuplicateKeyError},
		{"text timeout", errors.New("i/o timeout"), TimeoutError},
		{"text unknown", errors.New("boom"), UnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Classify(tt.err))
		})
	}
}

func TestErrorClassifierHelpers(t *testing.T) {
	c := NewErrorClassifier()

	assert.True(t, c.IsDuplicateKeyError(&pgconn.PgError{Code: "23505"}))
	assert.True(t, c.IsConstraintError(&pgconn.PgError{Code: "23505"}))
	assert.True(t, c.IsTransientError(errors.New("connection refused")))
	assert.False(t, c.IsTransientError(&mysql.MySQLError{Number: 1062}))

	assert.True(t, c.IsMissingTableError(&pgconn.PgError{Code: "42P01"}))
	assert.True(t, c.IsMissingTableError(&mysql.MySQLError{Number: 1146}))
	assert.True(t, c.IsMissingTableError(errors.New("no such table: schema_migrations")))
	assert.False(t, c.IsMissingTableError(nil))
}
