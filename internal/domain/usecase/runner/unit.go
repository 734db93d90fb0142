package runner

import (
	"context"

	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/docbase-migrator/internal/domain/error"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/migration"
)

// applyUnit runs one unit's apply plan and claims its record in a single
// transaction. The history lock is taken before any DDL, so a concurrent
// runner waits and then sees the record. It returns false without error when
// another process applied the unit first.
func (r *Runner) applyUnit(ctx context.Context, runID string, u migration.Unit) (bool, error) {
	direction := string(entity.DirectionUp)
	started := r.timeProvider.Now()

	txCtx, err := r.uow.Begin(context.WithoutCancel(ctx))
	if err != nil {
		return false, domainerr.NewPartialApplicationError(u.Name, direction, 0, "begin transaction", err)
	}
	done := false
	defer func() {
		if !done {
			r.rollback(txCtx, runID, u.Name)
		}
	}()

	r.logger.Debug("Migration state changed", map[string]any{
		"run_id": runID,
		"unit":   u.Name,
		"state":  entity.StateApplying,
	})

	if err := r.uow.LockHistory(txCtx); err != nil {
		return false, domainerr.NewPartialApplicationError(u.Name, direction, 0, "lock history", err)
	}
	applied, err := r.uow.GetMigrationRecordRepository(txCtx).IsApplied(txCtx, u.Name)
	if err != nil {
		return false, domainerr.NewPartialApplicationError(u.Name, direction, 0, "check record", err)
	}
	if applied {
		r.logger.Info("Migration already applied by another process, skipping", map[string]any{
			"run_id": runID,
			"unit":   u.Name,
		})
		return false, nil
	}

	if err := u.Apply(txCtx, r.uow.GetSchemaHandle(txCtx)); err != nil {
		return false, err
	}

	record, err := entity.NewMigrationRecord(u.Name, r.timeProvider.Now())
	if err != nil {
		return false, domainerr.NewPartialApplicationError(u.Name, direction, 0, "claim record", err)
	}
	claimed, err := r.uow.GetMigrationRecordRepository(txCtx).Claim(txCtx, record)
	if err != nil {
		return false, domainerr.NewPartialApplicationError(u.Name, direction, 0, "claim record", err)
	}
	if !claimed {
		r.logger.Info("Migration already applied by another process, skipping", map[string]any{
			"run_id": runID,
			"unit":   u.Name,
		})
		return false, nil
	}

	if err := r.uow.Commit(txCtx); err != nil {
		return false, domainerr.NewPartialApplicationError(u.Name, direction, 0, "commit", err)
	}
	done = true

	r.logger.Info("Migration applied", map[string]any{
		"run_id":      runID,
		"unit":        u.Name,
		"state":       entity.StateApplied,
		"duration_ms": r.timeProvider.Since(started).Std().Milliseconds(),
	})
	return true, nil
}

// revertUnit releases a unit's record and runs its revert plan in a single
// transaction. It returns false without error when the record was already gone.
func (r *Runner) revertUnit(ctx context.Context, runID string, u migration.Unit) (bool, error) {
	direction := string(entity.DirectionDown)
	started := r.timeProvider.Now()

	txCtx, err := r.uow.Begin(context.WithoutCancel(ctx))
	if err != nil {
		return false, domainerr.NewPartialApplicationError(u.Name, direction, 0, "begin transaction", err)
	}
	done := false
	defer func() {
		if !done {
			r.rollback(txCtx, runID, u.Name)
		}
	}()

	r.logger.Debug("Migration state changed", map[string]any{
		"run_id": runID,
		"unit":   u.Name,
		"state":  entity.StateReverting,
	})

	if err := r.uow.LockHistory(txCtx); err != nil {
		return false, domainerr.NewPartialApplicationError(u.Name, direction, 0, "lock history", err)
	}
	released, err := r.uow.GetMigrationRecordRepository(txCtx).Release(txCtx, u.Name)
	if err != nil {
		return false, domainerr.NewPartialApplicationError(u.Name, direction, 0, "release record", err)
	}
	if !released {
		r.logger.Info("Migration already reverted by another process, skipping", map[string]any{
			"run_id": runID,
			"unit":   u.Name,
		})
		return false, nil
	}

	if err := u.Revert(txCtx, r.uow.GetSchemaHandle(txCtx)); err != nil {
		return false, err
	}

	if err := r.uow.Commit(txCtx); err != nil {
		return false, domainerr.NewPartialApplicationError(u.Name, direction, 0, "commit", err)
	}
	done = true

	r.logger.Info("Migration reverted", map[string]any{
		"run_id":      runID,
		"unit":        u.Name,
		"state":       entity.StatePending,
		"duration_ms": r.timeProvider.Since(started).Std().Milliseconds(),
	})
	return true, nil
}

func (r *Runner) rollback(txCtx context.Context, runID, unit string) {
	if err := r.uow.Rollback(txCtx); err != nil {
		r.logger.Error("Failed to roll back migration transaction", map[string]any{
			"run_id": runID,
			"unit":   unit,
			"error":  err.Error(),
		})
	}
}
