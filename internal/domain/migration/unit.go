package migration

import (
	"context"

	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/docbase-migrator/internal/domain/error"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/schema"
)

// PlanFunc builds the ordered operations of one direction of a unit
type PlanFunc func() ([]schema.Operation, error)

// Unit is one named, reversible schema change
type Unit struct {
	Name string
	Up   PlanFunc
	Down PlanFunc
}

// Apply runs the forward plan through h
func (u Unit) Apply(ctx context.Context, h persistence.SchemaHandle) error {
	return u.run(ctx, h, entity.DirectionUp, u.Up)
}

// Revert runs the reverse plan through h
func (u Unit) Revert(ctx context.Context, h persistence.SchemaHandle) error {
	return u.run(ctx, h, entity.DirectionDown, u.Down)
}

// Plan returns the operations for a direction without executing them
func (u Unit) Plan(direction entity.Direction) ([]schema.Operation, error) {
	plan := u.Up
	if direction == entity.DirectionDown {
		plan = u.Down
	}
	if plan == nil {
		return nil, nil
	}
	return plan()
}

func (u Unit) run(ctx context.Context, h persistence.SchemaHandle, direction entity.Direction, plan PlanFunc) error {
	if plan == nil {
		return nil
	}

	ops, err := plan()
	if err != nil {
		return domainerr.NewPartialApplicationError(u.Name, string(direction), 0, "plan", err)
	}

	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return domainerr.NewPartialApplicationError(u.Name, string(direction), i+1, schema.Describe(op), err)
		}
		if err := h.Execute(ctx, op); err != nil {
			return domainerr.NewPartialApplicationError(u.Name, string(direction), i+1, schema.Describe(op), err)
		}
	}
	return nil
}
