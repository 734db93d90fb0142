package persistence

import (
	"context"
	"time"
)

// PoolStats is a snapshot of the connection pool
type PoolStats struct {
	MaxOpenConnections int           `json:"maxOpenConnections"`
	OpenConnections    int           `json:"openConnections"`
	InUse              int           `json:"inUse"`
	Idle               int           `json:"idle"`
	WaitCount          int64         `json:"waitCount"`
	WaitDuration       time.Duration `json:"waitDuration"`
}

// HealthChecker reports whether the backing store answers
type HealthChecker interface {
	Check(ctx context.Context) error
	Stats() (PoolStats, error)
}
