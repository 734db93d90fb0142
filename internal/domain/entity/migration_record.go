package entity

import (
	"strings"
	"time"

	domainerr "github.com/amirhossein-jamali/docbase-migrator/internal/domain/error"
)

// Direction tells which way a batch moves through the history
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// MigrationRecordTable is where migration records are persisted
const MigrationRecordTable = "schema_migrations"

// MigrationRecord marks a unit as applied. Its absence means the unit is pending.
type MigrationRecord struct {
	Name      string
	AppliedAt time.Time
}

// NewMigrationRecord creates a record for a unit applied at appliedAt
func NewMigrationRecord(name string, appliedAt time.Time) (*MigrationRecord, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domainerr.NewSchemaError("", "migration record name is empty")
	}
	return &MigrationRecord{
		Name:      name,
		AppliedAt: appliedAt.UTC(),
	}, nil
}
