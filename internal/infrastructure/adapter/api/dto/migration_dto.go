package dto

import (
	"time"

	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/entity"
)

// MigrationStatusResponse is one entry of GET /migrations
type MigrationStatusResponse struct {
	Name      string     `json:"name"`
	Applied   bool       `json:"applied"`
	AppliedAt *time.Time `json:"appliedAt"`
}

// NewMigrationStatusResponse converts a unit status
func NewMigrationStatusResponse(s entity.UnitStatus) MigrationStatusResponse {
	return MigrationStatusResponse{
		Name:      s.Name,
		Applied:   s.Applied(),
		AppliedAt: s.AppliedAt,
	}
}

// HealthResponse is returned by GET /healthz
type HealthResponse struct {
	Status string        `json:"status"`
	Error  string        `json:"error,omitempty"`
	Pool   *PoolResponse `json:"pool,omitempty"`
}

// PoolResponse describes the connection pool
type PoolResponse struct {
	OpenConnections int   `json:"openConnections"`
	InUse           int   `json:"inUse"`
	Idle            int   `json:"idle"`
	WaitCount       int64 `json:"waitCount"`
}
