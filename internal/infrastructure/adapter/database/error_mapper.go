package database

import (
	"errors"
	"fmt"

	domainerr "github.com/amirhossein-jamali/docbase-migrator/internal/domain/error"
	"github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/adapter/repository"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// Kind classifies err into an execution kind
func (m *ErrorMapper) Kind(err error) domainerr.ExecutionKind {
	switch m.classifier.Classify(err) {
	case repository.DuplicateKeyError, repository.ConstraintError:
		return domainerr.KindConstraint
	case repository.LockError:
		return domainerr.KindLocked
	case repository.ConnectionError:
		return domainerr.KindConnection
	case repository.PermissionError:
		return domainerr.KindPermission
	case repository.TimeoutError:
		return domainerr.KindTimeout
	case repository.SyntaxError:
		return domainerr.KindSyntax
	default:
		return domainerr.KindUnknown
	}
}

// MapExecutionError wraps a failed statement into an ExecutionError
func (m *ErrorMapper) MapExecutionError(err error, operation, statement string) error {
	if err == nil {
		return nil
	}
	var execErr *domainerr.ExecutionError
	if errors.As(err, &execErr) {
		return err
	}
	return domainerr.NewExecutionError(operation, statement, m.Kind(err), err)
}

// MapConnectionError maps errors raised while opening or pinging the database
func (m *ErrorMapper) MapConnectionError(err error, operation string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s failed (%s): %w", domainerr.ErrDatabaseConnection, operation, m.Kind(err), err)
}

// IsTransient reports whether err is worth retrying
func (m *ErrorMapper) IsTransient(err error) bool {
	return m.classifier.IsTransientError(err)
}
