package persistence

import (
	"context"
)

// UnitOfWork scopes one migration unit to one transaction. Repositories and
// schema handles obtained from a transactional context run inside it.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// LockHistory serializes migration runners for the rest of the transaction.
	// It blocks until no other runner holds the lock.
	LockHistory(ctx context.Context) error

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetSchemaHandle returns a schema handle bound to the current transaction
	GetSchemaHandle(ctx context.Context) SchemaHandle

	// GetMigrationRecordRepository returns a record repository bound to the current transaction
	GetMigrationRecordRepository(ctx context.Context) MigrationRecordRepository

	// TransactionalDDL reports whether DDL statements roll back with the transaction
	TransactionalDDL() bool
}
