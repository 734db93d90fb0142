package usecase

import (
	"context"
	"iter"

	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/entity"
)

// MigrationRunner moves the schema through the registered history
type MigrationRunner interface {
	// MigrateUp applies pending units up to and including target. An empty target means the latest unit.
	MigrateUp(ctx context.Context, target string) (*entity.MigrationReport, error)

	// MigrateDown reverts applied units strictly after target, newest first. An empty target reverts everything.
	MigrateDown(ctx context.Context, target string) (*entity.MigrationReport, error)

	// Status yields every registered unit in order with its current state.
	// The store is queried each time the sequence is ranged over.
	Status(ctx context.Context) iter.Seq2[entity.UnitStatus, error]
}
