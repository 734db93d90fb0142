package persistence

import (
	"context"

	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/entity"
)

// MigrationRecordRepository stores which units are applied
type MigrationRecordRepository interface {
	// Claim inserts the record unless one with the same name exists.
	// It returns false when another writer already holds the claim.
	Claim(ctx context.Context, record *entity.MigrationRecord) (bool, error)

	// Release deletes the record. It returns false when there was nothing to delete.
	Release(ctx context.Context, name string) (bool, error)

	// ListApplied returns applied records ordered by name. A missing record table yields an empty list.
	ListApplied(ctx context.Context) ([]entity.MigrationRecord, error)

	// IsApplied checks a single unit
	IsApplied(ctx context.Context, name string) (bool, error)
}
