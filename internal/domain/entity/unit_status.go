package entity

import "time"

// UnitState is the lifecycle state of a migration unit.
// Applying and Reverting only exist for the duration of one transaction.
type UnitState string

const (
	StatePending   UnitState = "pending"
	StateApplying  UnitState = "applying"
	StateApplied   UnitState = "applied"
	StateReverting UnitState = "reverting"
)

// UnitStatus is one row of the status listing
type UnitStatus struct {
	Name      string
	State     UnitState
	AppliedAt *time.Time
}

// Applied reports whether the unit is currently applied
func (s UnitStatus) Applied() bool {
	return s.State == StateApplied
}

// MigrationReport summarizes a batch
type MigrationReport struct {
	RunID     string
	Direction Direction
	Target    string
	Applied   []string
	Skipped   []string
	Duration  time.Duration
}

// NewMigrationReport creates an empty report for a batch
func NewMigrationReport(runID string, direction Direction, target string) *MigrationReport {
	return &MigrationReport{
		RunID:     runID,
		Direction: direction,
		Target:    target,
		Applied:   []string{},
		Skipped:   []string{},
	}
}

// Changed reports whether the batch modified the schema
func (r *MigrationReport) Changed() bool {
	return len(r.Applied) > 0
}
