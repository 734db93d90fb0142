package database

import (
	"context"

	domainerr "github.com/amirhossein-jamali/docbase-migrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/schema"
	"gorm.io/gorm"
)

// SchemaExecutor runs schema operations through a gorm handle, usually a transaction
type SchemaExecutor struct {
	db          *gorm.DB
	dialect     *Dialect
	errorMapper *ErrorMapper
	metrics     *MetricsCollector
	logger      coreport.Logger
}

// NewSchemaExecutor creates a schema executor bound to db
func NewSchemaExecutor(db *gorm.DB, dialect *Dialect, errorMapper *ErrorMapper, metrics *MetricsCollector, logger coreport.Logger) *SchemaExecutor {
	return &SchemaExecutor{
		db:          db,
		dialect:     dialect,
		errorMapper: errorMapper,
		metrics:     metrics,
		logger:      logger,
	}
}

var _ persistence.SchemaHandle = (*SchemaExecutor)(nil)

// Execute runs a single operation
func (e *SchemaExecutor) Execute(ctx context.Context, op schema.Operation) error {
	switch o := op.(type) {
	case schema.CreateTableOp:
		stmts, err := e.dialect.CreateTable(o.Table)
		if err != nil {
			return err
		}
		return e.execAll(ctx, op, stmts)

	case schema.DropTableOp:
		return e.exec(ctx, op, e.dialect.DropTable(o.Table))

	case schema.AddColumnOp:
		if e.hasColumn(ctx, o.Table, o.Column.Name) {
			e.logger.Debug("Column already present, skipping", map[string]any{"target": o.Target()})
			return nil
		}
		stmts, err := e.dialect.AddColumn(o.Table, o.Column)
		if err != nil {
			return err
		}
		return e.execAll(ctx, op, stmts)

	case schema.DropColumnOp:
		if !e.hasColumn(ctx, o.Table, o.Column) {
			e.logger.Debug("Column already absent, skipping", map[string]any{"target": o.Target()})
			return nil
		}
		return e.exec(ctx, op, e.dialect.DropColumn(o.Table, o.Column))

	case schema.InsertOp:
		stmt, args := e.dialect.Insert(o)
		return e.exec(ctx, op, stmt, args...)

	case nil:
		return domainerr.NewSchemaError("", "operation is nil")

	default:
		return domainerr.NewSchemaError(op.Target(), "operation %s is not supported by the %s executor", op.Kind(), e.dialect.Driver())
	}
}

// TableExists reports whether table is present
func (e *SchemaExecutor) TableExists(ctx context.Context, table string) bool {
	return e.db.WithContext(ctx).Migrator().HasTable(table)
}

func (e *SchemaExecutor) hasColumn(ctx context.Context, table, column string) bool {
	return e.TableExists(ctx, table) && e.db.WithContext(ctx).Migrator().HasColumn(table, column)
}

func (e *SchemaExecutor) execAll(ctx context.Context, op schema.Operation, stmts []string) error {
	for _, stmt := range stmts {
		if err := e.exec(ctx, op, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *SchemaExecutor) exec(ctx context.Context, op schema.Operation, stmt string, args ...any) error {
	operation := schema.Describe(op)
	_, err := e.metrics.Measure(ctx, operation, func() (int64, error) {
		result := e.db.WithContext(ctx).Exec(stmt, args...)
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return e.errorMapper.MapExecutionError(err, operation, stmt)
	}
	return nil
}
