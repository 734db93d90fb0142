package runner

import (
	"context"
	"fmt"
	"iter"

	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/docbase-migrator/internal/domain/error"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/migration"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// Runner applies and reverts registered units, one transaction per unit
type Runner struct {
	registry     *migration.Registry
	uow          persistence.UnitOfWork
	logger       core.Logger
	timeProvider core.TimeProvider
	timeout      core.Duration
	newRunID     func() string
}

// Option configures a Runner
type Option func(*Runner)

// WithTimeout abandons the batch once timeout elapses. The check happens
// between units; a unit that has started always reaches commit or rollback.
func WithTimeout(timeout core.Duration) Option {
	return func(r *Runner) {
		r.timeout = timeout
	}
}

// WithRunIDGenerator overrides how batch identifiers are produced
func WithRunIDGenerator(gen func() string) Option {
	return func(r *Runner) {
		r.newRunID = gen
	}
}

// NewRunner creates a new migration runner
func NewRunner(
	registry *migration.Registry,
	uow persistence.UnitOfWork,
	logger core.Logger,
	timeProvider core.TimeProvider,
	opts ...Option,
) *Runner {
	r := &Runner{
		registry:     registry,
		uow:          uow,
		logger:       logger,
		timeProvider: timeProvider,
		newRunID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ usecase.MigrationRunner = (*Runner)(nil)

// MigrateUp applies pending units up to and including target
func (r *Runner) MigrateUp(ctx context.Context, target string) (*entity.MigrationReport, error) {
	end := r.registry.Len() - 1
	if target != "" {
		idx, ok := r.registry.Index(target)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domainerr.ErrUnknownMigration, target)
		}
		end = idx
	}

	report := entity.NewMigrationReport(r.newRunID(), entity.DirectionUp, target)
	start := r.timeProvider.Now()
	defer func() {
		report.Duration = r.timeProvider.Since(start).Std()
	}()

	ctx, cancel := r.timeProvider.WithTimeout(core.WithRunID(ctx, report.RunID), r.timeout)
	defer cancel()

	applied, err := r.appliedSet(ctx)
	if err != nil {
		return report, err
	}

	units := r.registry.Units()[:end+1]
	pending := make([]migration.Unit, 0, len(units))
	for _, u := range units {
		if _, ok := applied[u.Name]; !ok {
			pending = append(pending, u)
		}
	}

	if len(pending) == 0 {
		r.logger.Info("Schema is up to date", map[string]any{
			"run_id": report.RunID,
			"target": describeTarget(target, "latest"),
		})
		return report, nil
	}

	r.warnNonTransactional(report.RunID)
	r.logger.Info("Applying migrations", map[string]any{
		"run_id":  report.RunID,
		"pending": len(pending),
		"target":  describeTarget(target, "latest"),
	})

	for _, u := range pending {
		if err := ctx.Err(); err != nil {
			r.logger.Warn("Migration batch abandoned", map[string]any{
				"run_id":    report.RunID,
				"next_unit": u.Name,
				"error":     err.Error(),
			})
			return report, fmt.Errorf("migration batch abandoned before %s: %w", u.Name, err)
		}

		claimed, err := r.applyUnit(ctx, report.RunID, u)
		if err != nil {
			fields := domainerr.LogFieldsOf(err)
			fields["run_id"] = report.RunID
			r.logger.Error("Migration failed", fields)
			return report, err
		}
		if !claimed {
			report.Skipped = append(report.Skipped, u.Name)
			continue
		}
		report.Applied = append(report.Applied, u.Name)
	}

	r.logger.Info("Migrations applied", map[string]any{
		"run_id":  report.RunID,
		"applied": report.Applied,
		"skipped": report.Skipped,
	})
	return report, nil
}

// MigrateDown reverts applied units strictly after target, newest first
func (r *Runner) MigrateDown(ctx context.Context, target string) (*entity.MigrationReport, error) {
	stop := -1
	if target != "" {
		idx, ok := r.registry.Index(target)
		switch {
		case ok:
			stop = idx
		case r.registry.Before(target):
			stop = -1
		default:
			return nil, fmt.Errorf("%w: %s", domainerr.ErrUnknownMigration, target)
		}
	}

	report := entity.NewMigrationReport(r.newRunID(), entity.DirectionDown, target)
	start := r.timeProvider.Now()
	defer func() {
		report.Duration = r.timeProvider.Since(start).Std()
	}()

	ctx, cancel := r.timeProvider.WithTimeout(core.WithRunID(ctx, report.RunID), r.timeout)
	defer cancel()

	applied, err := r.appliedSet(ctx)
	if err != nil {
		return report, err
	}

	units := r.registry.Units()
	var revert []migration.Unit
	for i := len(units) - 1; i > stop; i-- {
		if _, ok := applied[units[i].Name]; ok {
			revert = append(revert, units[i])
		}
	}

	if len(revert) == 0 {
		r.logger.Info("Nothing to revert", map[string]any{
			"run_id": report.RunID,
			"target": describeTarget(target, "initial"),
		})
		return report, nil
	}

	r.warnNonTransactional(report.RunID)
	r.logger.Info("Reverting migrations", map[string]any{
		"run_id":  report.RunID,
		"applied": len(revert),
		"target":  describeTarget(target, "initial"),
	})

	for _, u := range revert {
		if err := ctx.Err(); err != nil {
			r.logger.Warn("Migration batch abandoned", map[string]any{
				"run_id":    report.RunID,
				"next_unit": u.Name,
				"error":     err.Error(),
			})
			return report, fmt.Errorf("migration batch abandoned before %s: %w", u.Name, err)
		}

		released, err := r.revertUnit(ctx, report.RunID, u)
		if err != nil {
			fields := domainerr.LogFieldsOf(err)
			fields["run_id"] = report.RunID
			r.logger.Error("Migration revert failed", fields)
			return report, err
		}
		if !released {
			report.Skipped = append(report.Skipped, u.Name)
			continue
		}
		report.Applied = append(report.Applied, u.Name)
	}

	r.logger.Info("Migrations reverted", map[string]any{
		"run_id":   report.RunID,
		"reverted": report.Applied,
		"skipped":  report.Skipped,
	})
	return report, nil
}

// Status yields every registered unit in registry order
func (r *Runner) Status(ctx context.Context) iter.Seq2[entity.UnitStatus, error] {
	return func(yield func(entity.UnitStatus, error) bool) {
		records, err := r.uow.GetMigrationRecordRepository(ctx).ListApplied(ctx)
		if err != nil {
			yield(entity.UnitStatus{}, fmt.Errorf("%w: %w", domainerr.ErrRecordStore, err))
			return
		}

		byName := make(map[string]entity.MigrationRecord, len(records))
		for _, rec := range records {
			byName[rec.Name] = rec
		}

		for _, u := range r.registry.Units() {
			status := entity.UnitStatus{Name: u.Name, State: entity.StatePending}
			if rec, ok := byName[u.Name]; ok {
				appliedAt := rec.AppliedAt
				status.State = entity.StateApplied
				status.AppliedAt = &appliedAt
			}
			if !yield(status, nil) {
				return
			}
		}
	}
}

// StatusList collects Status into a slice
func (r *Runner) StatusList(ctx context.Context) ([]entity.UnitStatus, error) {
	statuses := make([]entity.UnitStatus, 0, r.registry.Len())
	for status, err := range r.Status(ctx) {
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func (r *Runner) appliedSet(ctx context.Context) (map[string]struct{}, error) {
	records, err := r.uow.GetMigrationRecordRepository(ctx).ListApplied(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainerr.ErrRecordStore, err)
	}

	applied := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if _, known := r.registry.Index(rec.Name); !known {
			r.logger.Warn("Applied migration is not registered", map[string]any{
				"name":       rec.Name,
				"applied_at": rec.AppliedAt,
			})
			continue
		}
		applied[rec.Name] = struct{}{}
	}
	return applied, nil
}

func (r *Runner) warnNonTransactional(runID string) {
	if r.uow.TransactionalDDL() {
		return
	}
	r.logger.Warn("Backing store commits DDL implicitly; a failed unit may leave partial changes", map[string]any{
		"run_id": runID,
	})
}

func describeTarget(target, fallback string) string {
	if target == "" {
		return fallback
	}
	return target
}
