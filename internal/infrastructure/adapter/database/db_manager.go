package database

import (
	"context"
	"fmt"

	domainerr "github.com/amirhossein-jamali/docbase-migrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/persistence"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager manages the database connection
type Manager struct {
	config       *Config
	db           *gorm.DB
	dialect      *Dialect
	logger       coreport.Logger
	errorMapper  *ErrorMapper
	metrics      *MetricsCollector
	timeProvider coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
		metrics:      NewMetricsCollector(logger, timeProvider, config.SlowThreshold),
		timeProvider: timeProvider,
	}
}

// Connect opens the database and verifies it answers, retrying transient failures
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: database: %w", domainerr.ErrInvalidConfig, err)
	}

	dialect, err := NewDialect(m.config.Driver)
	if err != nil {
		return nil, err
	}
	m.dialect = dialect

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"target": m.config.Target(),
	})

	var gormDB *gorm.DB
	open := func() error {
		db, err := m.open(ctx)
		if err != nil {
			return err
		}
		gormDB = db
		return nil
	}
	if err := RetryOnTransientError(ctx, RetryConfigFrom(m.config), open, m.errorMapper, m.logger); err != nil {
		return nil, m.errorMapper.MapConnectionError(err, "connect")
	}

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":            m.config.Driver,
		"target":            m.config.Target(),
		"max_open_conns":    m.config.MaxOpenConns,
		"transactional_ddl": dialect.TransactionalDDL(),
	})

	m.db = gormDB
	return m.db, nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Dialect returns the SQL renderer of the connected driver
func (m *Manager) Dialect() *Dialect {
	return m.dialect
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	m.logger.Info("Closing database connection", nil)

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.dialect, m.metrics, m.logger, m.timeProvider)
}

// HealthChecker returns a checker for the open connection
func (m *Manager) HealthChecker() *HealthChecker {
	return NewHealthChecker(m.db, m.logger, m.config.QueryTimeout)
}

// GetErrorMapper returns the error mapper
func (m *Manager) GetErrorMapper() *ErrorMapper {
	return m.errorMapper
}

// open opens a pool, configures it and pings once. A failed pool is closed.
func (m *Manager) open(ctx context.Context) (*gorm.DB, error) {
	gormDB, err := gorm.Open(m.dialector(), &gorm.Config{
		Logger:               NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowThreshold),
		NowFunc:              m.timeProvider.Now,
		DisableAutomaticPing: true,
		// DDL is executed once per statement, preparing it buys nothing
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, m.config.QueryTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return gormDB, nil
}

func (m *Manager) dialector() gorm.Dialector {
	dsn := m.config.DSN()
	switch m.config.Driver {
	case DriverMySQL:
		return mysql.Open(dsn)
	case DriverSQLite:
		return sqlite.Open(dsn)
	default:
		return postgres.Open(dsn)
	}
}
