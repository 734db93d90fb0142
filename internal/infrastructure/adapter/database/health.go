package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/persistence"
	"gorm.io/gorm"
)

// HealthChecker pings the database on demand
type HealthChecker struct {
	db      *gorm.DB
	logger  coreport.Logger
	timeout time.Duration
}

// NewHealthChecker creates a new health checker. Each check is bounded by timeout.
func NewHealthChecker(db *gorm.DB, logger coreport.Logger, timeout time.Duration) *HealthChecker {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HealthChecker{
		db:      db,
		logger:  logger,
		timeout: timeout,
	}
}

var _ persistence.HealthChecker = (*HealthChecker)(nil)

// Check pings the database
func (h *HealthChecker) Check(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		h.logger.Error("Database ping failed", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Stats returns the current pool statistics
func (h *HealthChecker) Stats() (persistence.PoolStats, error) {
	sqlDB, err := h.db.DB()
	if err != nil {
		return persistence.PoolStats{}, fmt.Errorf("failed to get database connection: %w", err)
	}

	stats := sqlDB.Stats()
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > float64(stats.MaxOpenConnections)*0.8 {
		h.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"wait_count": stats.WaitCount,
		})
	}

	return persistence.PoolStats{
		MaxOpenConnections: stats.MaxOpenConnections,
		OpenConnections:    stats.OpenConnections,
		InUse:              stats.InUse,
		Idle:               stats.Idle,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
	}, nil
}
