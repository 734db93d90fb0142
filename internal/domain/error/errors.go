package error

import (
	"errors"
	"fmt"
)

// Process exit codes reported by the CLI
const (
	ExitCodeOK        = 0
	ExitCodeGeneric   = 1
	ExitCodeConfig    = 2
	ExitCodeSchema    = 3
	ExitCodeExecution = 4
)

// Base error types
var (
	// ErrInvalidSchema is returned when a table, column or row definition is malformed
	ErrInvalidSchema = errors.New("invalid schema definition")

	// ErrExecutionFailed is returned when the backing store rejects a statement
	ErrExecutionFailed = errors.New("statement execution failed")

	// ErrDuplicateMigrationName is returned when two units share a name
	ErrDuplicateMigrationName = errors.New("duplicate migration name")

	// ErrPartialApplication is returned when a unit aborts part way through its plan
	ErrPartialApplication = errors.New("migration unit aborted")

	// ErrUnknownMigration is returned when a target name is not registered
	ErrUnknownMigration = errors.New("unknown migration")

	// ErrNoTransaction is returned when a transactional call finds no transaction in the context
	ErrNoTransaction = errors.New("no transaction found in context")

	// ErrTransactionInProgress is returned when Begin is called on a context that already carries a transaction
	ErrTransactionInProgress = errors.New("transaction already in progress")

	// ErrInvalidConfig is returned when configuration values are missing or inconsistent
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrRecordStore is returned when the migration record table cannot be read or written
	ErrRecordStore = errors.New("migration record store error")

	// ErrHistoryLocked is returned when another runner kept the history lock past the wait limit
	ErrHistoryLocked = errors.New("migration history is locked by another runner")
)

// ExecutionKind classifies why the store rejected a statement
type ExecutionKind string

const (
	KindConstraint ExecutionKind = "constraint"
	KindConnection ExecutionKind = "connection"
	KindPermission ExecutionKind = "permission"
	KindLocked     ExecutionKind = "locked"
	KindTimeout    ExecutionKind = "timeout"
	KindSyntax     ExecutionKind = "syntax"
	KindUnknown    ExecutionKind = "unknown"
)

// ExitCode maps an error to the process exit code of the CLI
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeOK
	case errors.Is(err, ErrInvalidConfig):
		return ExitCodeConfig
	case errors.Is(err, ErrPartialApplication):
		return ExitCodeExecution
	case errors.Is(err, ErrInvalidSchema),
		errors.Is(err, ErrDuplicateMigrationName),
		errors.Is(err, ErrUnknownMigration):
		return ExitCodeSchema
	case errors.Is(err, ErrExecutionFailed),
		errors.Is(err, ErrDatabaseConnection),
		errors.Is(err, ErrRecordStore):
		return ExitCodeExecution
	default:
		return ExitCodeGeneric
	}
}

// SchemaError reports a malformed definition detected before anything reaches the store
type SchemaError struct {
	Object string
	Reason string
}

// Error implements the error interface for SchemaError
func (e *SchemaError) Error() string {
	if e.Object == "" {
		return fmt.Sprintf("invalid schema definition: %s", e.Reason)
	}
	return fmt.Sprintf("invalid schema definition for %q: %s", e.Object, e.Reason)
}

// Is checks if the target error is an ErrInvalidSchema
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// LogFields returns a map of fields for structured logging
func (e *SchemaError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "schema_error",
		"object":     e.Object,
		"reason":     e.Reason,
		"error_code": ExitCodeSchema,
	}
}

// NewSchemaError creates a new schema error
func NewSchemaError(object, format string, args ...any) error {
	return &SchemaError{
		Object: object,
		Reason: fmt.Sprintf(format, args...),
	}
}

// ExecutionError reports a statement the backing store rejected
type ExecutionError struct {
	Operation string
	Statement string
	Kind      ExecutionKind
	Err       error
}

// Error implements the error interface for ExecutionError
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s failed (%s): %v", e.Operation, e.Kind, e.Err)
}

// Unwrap returns the underlying error
func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrExecutionFailed
func (e *ExecutionError) Is(target error) bool {
	return target == ErrExecutionFailed
}

// LogFields returns a map of fields for structured logging
func (e *ExecutionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "execution_error",
		"operation":  e.Operation,
		"statement":  e.Statement,
		"kind":       string(e.Kind),
		"error":      errString(e.Err),
		"error_code": ExitCodeExecution,
	}
}

// NewExecutionError creates a new execution error
func NewExecutionError(operation, statement string, kind ExecutionKind, err error) error {
	return &ExecutionError{
		Operation: operation,
		Statement: statement,
		Kind:      kind,
		Err:       err,
	}
}

// DuplicateMigrationNameError is raised when building a registry with a name used twice
type DuplicateMigrationNameError struct {
	Name string
}

// Error implements the error interface
func (e *DuplicateMigrationNameError) Error() string {
	return fmt.Sprintf("duplicate migration name: %s", e.Name)
}

// Is checks if the target error is an ErrDuplicateMigrationName
func (e *DuplicateMigrationNameError) Is(target error) bool {
	return target == ErrDuplicateMigrationName
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateMigrationNameError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "duplicate_migration_name",
		"name":       e.Name,
		"error_code": ExitCodeSchema,
	}
}

// NewDuplicateMigrationNameError creates a new duplicate name error
func NewDuplicateMigrationNameError(name string) error {
	return &DuplicateMigrationNameError{Name: name}
}

// PartialApplicationError reports a unit whose transaction was aborted.
// Step is the 1-based position of the failing operation in the unit's plan,
// or 0 when the failure happened while planning or bookkeeping.
type PartialApplicationError struct {
	Unit      string
	Direction string
	Step      int
	Operation string
	Err       error
}

// Error implements the error interface
func (e *PartialApplicationError) Error() string {
	if e.Step == 0 {
		return fmt.Sprintf("migration %s (%s) aborted during %s: %v", e.Unit, e.Direction, e.Operation, e.Err)
	}
	return fmt.Sprintf("migration %s (%s) aborted at step %d (%s): %v", e.Unit, e.Direction, e.Step, e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *PartialApplicationError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrPartialApplication
func (e *PartialApplicationError) Is(target error) bool {
	return target == ErrPartialApplication
}

// LogFields returns a map of fields for structured logging
func (e *PartialApplicationError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "partial_application",
		"unit":       e.Unit,
		"direction":  e.Direction,
		"step":       e.Step,
		"operation":  e.Operation,
		"error":      errString(e.Err),
		"error_code": ExitCode(e),
	}

	var execErr *ExecutionError
	if errors.As(e.Err, &execErr) {
		fields["kind"] = string(execErr.Kind)
		fields["statement"] = execErr.Statement
	}

	return fields
}

// NewPartialApplicationError creates a new partial application error
func NewPartialApplicationError(unit, direction string, step int, operation string, err error) error {
	return &PartialApplicationError{
		Unit:      unit,
		Direction: direction,
		Step:      step,
		Operation: operation,
		Err:       err,
	}
}

// FailedUnit returns the name of the unit that aborted, if any
func FailedUnit(err error) (string, bool) {
	var partial *PartialApplicationError
	if errors.As(err, &partial) {
		return partial.Unit, true
	}
	return "", false
}

// LogFieldsOf returns structured fields for err, falling back to the message
func LogFieldsOf(err error) map[string]any {
	var lf interface{ LogFields() map[string]any }
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	return map[string]any{"error": errString(err)}
}

// IsSchemaError checks if the error is a schema definition error
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrInvalidSchema)
}

// IsExecutionError checks if the error was raised by the backing store
func IsExecutionError(err error) bool {
	return errors.Is(err, ErrExecutionFailed)
}

// IsPartialApplicationError checks if a unit was aborted
func IsPartialApplicationError(err error) bool {
	return errors.Is(err, ErrPartialApplication)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
