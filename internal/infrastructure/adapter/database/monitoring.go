package database

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/core"
)

// StatementMetrics holds metrics about one executed statement
type StatementMetrics struct {
	Operation    string
	Duration     time.Duration
	RowsAffected int64
	Failed       bool
	ErrorMessage string
}

// MetricsCollector times statements and reports slow ones
type MetricsCollector struct {
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	slowThreshold time.Duration
}

// NewMetricsCollector creates a new metrics collector. A zero threshold disables slow statement warnings.
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider, slowThreshold time.Duration) *MetricsCollector {
	return &MetricsCollector{
		logger:        logger,
		timeProvider:  timeProvider,
		slowThreshold: slowThreshold,
	}
}

// Measure runs fn and records how long it took
func (c *MetricsCollector) Measure(ctx context.Context, operation string, fn func() (int64, error)) (*StatementMetrics, error) {
	start := c.timeProvider.Now()

	rowsAffected, err := fn()

	metrics := &StatementMetrics{
		Operation:    operation,
		Duration:     c.timeProvider.Since(start).Std(),
		RowsAffected: rowsAffected,
		Failed:       err != nil,
	}
	if err != nil {
		metrics.ErrorMessage = err.Error()
	}

	fields := map[string]any{
		"operation":     operation,
		"duration_ms":   metrics.Duration.Milliseconds(),
		"rows_affected": rowsAffected,
	}
	if runID := coreport.RunIDFrom(ctx); runID != "" {
		fields["run_id"] = runID
	}

	if c.slowThreshold > 0 && metrics.Duration > c.slowThreshold {
		fields["failed"] = metrics.Failed
		c.logger.Warn("Slow schema statement", fields)
	} else {
		c.logger.Debug("Schema statement executed", fields)
	}

	return metrics, err
}
