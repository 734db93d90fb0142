package persistence

import (
	"context"

	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/schema"
)

// SchemaHandle executes schema operations against the backing store
type SchemaHandle interface {
	// Execute runs a single operation. Failures are reported as *error.ExecutionError
	// or, for operations the handle cannot express, *error.SchemaError.
	Execute(ctx context.Context, op schema.Operation) error
}
