package database

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/core"
	timeprovider "github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

// TestDBManager provides utilities for testing against a throwaway sqlite file
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to a fresh sqlite database under t.TempDir().
// The connection is closed when the test ends.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()
	return NewTestDBManagerAt(t, logger, filepath.Join(t.TempDir(), "docbase_test.db"))
}

// NewTestDBManagerAt connects to the sqlite file at path. Managers opened on
// the same path share one database, as separate processes would.
func NewTestDBManagerAt(t *testing.T, logger coreport.Logger, path string) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	config := DefaultConfig(DriverSQLite)
	config.Path = path
	config.QueryTimeout = 5 * time.Second
	config.LogLevel = "silent"
	config.RetryAttempts = 1

	manager := NewManager(config, logger, timeProvider)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// DB returns the underlying gorm handle
func (m *TestDBManager) DB() *gorm.DB {
	return m.Manager.DB()
}

// Tables lists user tables in name order
func (m *TestDBManager) Tables(t *testing.T) []string {
	t.Helper()

	tables, err := m.DB().Migrator().GetTables()
	if err != nil {
		t.Fatalf("Failed to list tables: %v", err)
	}
	var user []string
	for _, name := range tables {
		if strings.HasPrefix(name, "sqlite_") {
			continue
		}
		user = append(user, name)
	}
	sort.Strings(user)
	return user
}

// Structure maps every table to its column names in declaration order
func (m *TestDBManager) Structure(t *testing.T) map[string][]string {
	t.Helper()

	structure := make(map[string][]string)
	for _, table := range m.Tables(t) {
		columns, err := m.DB().Migrator().ColumnTypes(table)
		if err != nil {
			t.Fatalf("Failed to read columns of %s: %v", table, err)
		}
		names := make([]string, len(columns))
		for i, c := range columns {
			names[i] = c.Name()
		}
		structure[table] = names
	}
	return structure
}

// CountRows counts rows of table
func (m *TestDBManager) CountRows(t *testing.T, table string) int64 {
	t.Helper()

	var count int64
	if err := m.DB().Table(table).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count rows of %s: %v", table, err)
	}
	return count
}

// TableExists reports whether table is present, as the schema executor sees it
func (m *TestDBManager) TableExists(t *testing.T, table string) bool {
	t.Helper()

	ctx := context.Background()
	executor, ok := m.Manager.CreateUnitOfWork().GetSchemaHandle(ctx).(*SchemaExecutor)
	if !ok {
		t.Fatalf("Unexpected schema handle type")
	}
	return executor.TableExists(ctx, table)
}
