package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	domainerr "github.com/amirhossein-jamali/docbase-migrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db           *gorm.DB
	dialect      *Dialect
	errorMapper  *ErrorMapper
	metrics      *MetricsCollector
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(
	db *gorm.DB,
	dialect *Dialect,
	metrics *MetricsCollector,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
) *UnitOfWork {
	return &UnitOfWork{
		db:           db,
		dialect:      dialect,
		errorMapper:  NewErrorMapper(),
		metrics:      metrics,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return ctx, domainerr.ErrTransactionInProgress
	}

	u.logger.Debug("Beginning database transaction", map[string]any{"run_id": coreport.RunIDFrom(ctx)})

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", u.errorMapper.MapExecutionError(tx.Error, "begin", "BEGIN"))
	}

	// Store transaction in context
	return context.WithValue(ctx, txKey, tx), nil
}

// LockHistory takes the migration history lock in the current transaction
func (u *UnitOfWork) LockHistory(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return domainerr.ErrNoTransaction
	}

	stmt, args := u.dialect.LockHistory()
	if stmt == "" {
		return nil
	}

	u.logger.Debug("Waiting for migration history lock", map[string]any{"run_id": coreport.RunIDFrom(ctx)})

	if u.dialect.Driver() != DriverMySQL {
		if err := tx.Exec(stmt, args...).Error; err != nil {
			return fmt.Errorf("failed to lock migration history: %w", u.errorMapper.MapExecutionError(err, "lock", stmt))
		}
		return nil
	}

	var acquired sql.NullInt64
	if err := tx.Raw(stmt, args...).Row().Scan(&acquired); err != nil {
		return fmt.Errorf("failed to lock migration history: %w", u.errorMapper.MapExecutionError(err, "lock", stmt))
	}
	// GET_LOCK reports a timeout as 0 and an error as NULL
	if !acquired.Valid || acquired.Int64 != 1 {
		return fmt.Errorf("failed to lock migration history: %w", domainerr.ErrHistoryLocked)
	}
	return nil
}

// unlockHistory drops a session level history lock before the transaction ends
func (u *UnitOfWork) unlockHistory(tx *gorm.DB) {
	stmt, args := u.dialect.UnlockHistory()
	if stmt == "" {
		return
	}
	if err := tx.Exec(stmt, args...).Error; err != nil {
		u.logger.Warn("Failed to release migration history lock", map[string]any{"error": err.Error()})
	}
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return domainerr.ErrNoTransaction
	}

	u.logger.Debug("Committing database transaction", nil)
	u.unlockHistory(tx)
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", u.errorMapper.MapExecutionError(err, "commit", "COMMIT"))
	}

	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return domainerr.ErrNoTransaction
	}

	u.logger.Debug("Rolling back database transaction", nil)
	u.unlockHistory(tx)

	err := tx.Rollback().Error

	// Already finished transactions are not an error here
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// GetSchemaHandle returns a schema executor in the current transaction
func (u *UnitOfWork) GetSchemaHandle(ctx context.Context) persistence.SchemaHandle {
	return NewSchemaExecutor(u.getDbFromContext(ctx), u.dialect, u.errorMapper, u.metrics, u.logger)
}

// GetMigrationRecordRepository returns a record repository in the current transaction
func (u *UnitOfWork) GetMigrationRecordRepository(ctx context.Context) persistence.MigrationRecordRepository {
	return repository.NewMigrationRecordRepository(u.getDbFromContext(ctx), u.logger)
}

// TransactionalDDL reports whether DDL rolls back with the transaction
func (u *UnitOfWork) TransactionalDDL() bool {
	return u.dialect.TransactionalDDL()
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
