package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	ConstraintError   ErrorType = "constraint"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	PermissionError   ErrorType = "permission"
	TimeoutError      ErrorType = "timeout"
	SyntaxError       ErrorType = "syntax"
	UnknownError      ErrorType = "unknown"
)

// ErrorClassifier classifies driver errors from postgres, mysql and sqlite
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error. Driver error codes are consulted first,
// message matching is the fallback.
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	if t, ok := classifyDriverError(err); ok {
		return t
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		return TimeoutError
	case errors.Is(err, driver.ErrBadConn):
		return ConnectionError
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return TimeoutError
		}
		return ConnectionError
	}

	return classifyMessage(err.Error())
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	return c.Classify(err) == DuplicateKeyError
}

// IsTransientError reports whether retrying the same call may succeed
func (c *ErrorClassifier) IsTransientError(err error) bool {
	switch c.Classify(err) {
	case ConnectionError, LockError, TimeoutError:
		return true
	default:
		return false
	}
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	t := c.Classify(err)
	return t == ConstraintError || t == DuplicateKeyError
}

// IsMissingTableError reports whether err says a table does not exist
func (c *ErrorClassifier) IsMissingTableError(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "42P01"
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1146
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no such table") || strings.Contains(msg, "does not exist")
}

func classifyDriverError(err error) (ErrorType, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPostgres(pgErr.Code), true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return classifyMySQL(myErr.Number), true
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return classifySQLite(liteErr), true
	}

	return "", false
}

// classifyPostgres maps SQLSTATE codes
func classifyPostgres(code string) ErrorType {
	switch code {
	case "23505":
		return DuplicateKeyError
	case "40001", "40P01", "55P03":
		return LockError
	case "57014":
		return TimeoutError
	case "42501":
		return PermissionError
	case "42601":
		return SyntaxError
	}
	switch {
	case strings.HasPrefix(code, "23"):
		return ConstraintError
	case strings.HasPrefix(code, "08"), strings.HasPrefix(code, "57P"):
		return ConnectionError
	case strings.HasPrefix(code, "28"):
		return PermissionError
	case strings.HasPrefix(code, "42"):
		return SyntaxError
	}
	return UnknownError
}

func classifyMySQL(number uint16) ErrorType {
	switch number {
	case 1062:
		return DuplicateKeyError
	case 1048, 1216, 1217, 1451, 1452, 3819:
		return ConstraintError
	case 1205, 1213:
		return LockError
	case 1044, 1045, 1142, 1143, 1227:
		return PermissionError
	case 1064, 1146, 1054:
		return SyntaxError
	case 1040, 1053, 2002, 2003, 2006, 2013:
		return ConnectionError
	case 3024:
		return TimeoutError
	}
	return UnknownError
}

func classifySQLite(err sqlite3.Error) ErrorType {
	switch err.Code {
	case sqlite3.ErrConstraint:
		if err.ExtendedCode == sqlite3.ErrConstraintUnique || err.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return DuplicateKeyError
		}
		return ConstraintError
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return LockError
	case sqlite3.ErrPerm, sqlite3.ErrAuth, sqlite3.ErrReadonly:
		return PermissionError
	case sqlite3.ErrCantOpen, sqlite3.ErrNotADB:
		return ConnectionError
	case sqlite3.ErrInterrupt:
		return TimeoutError
	case sqlite3.ErrError:
		return classifyMessage(err.Error())
	}
	return UnknownError
}

// classifyMessage matches well known error texts when no driver code is available
func classifyMessage(msg string) ErrorType {
	msg = strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate entry"):
		return DuplicateKeyError
	case strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "lock wait timeout") ||
		strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "database is locked"):
		return LockError
	case strings.Contains(msg, "constraint") ||
		strings.Contains(msg, "violates") ||
		strings.Contains(msg, "foreign key"):
		return ConstraintError
	case strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "access denied") ||
		strings.Contains(msg, "readonly"):
		return PermissionError
	case strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline exceeded"):
		return TimeoutError
	case strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "server closed") ||
		strings.Contains(msg, "no connection") ||
		msg == "eof":
		return ConnectionError
	case strings.Contains(msg, "syntax error") ||
		strings.Contains(msg, "no such table") ||
		strings.Contains(msg, "no such column") ||
		strings.Contains(msg, "does not exist"):
		return SyntaxError
	}
	return UnknownError
}
