package core

import "context"

type runIDKey struct{}

// WithRunID tags ctx with the identifier of the migration batch it belongs to
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

// RunIDFrom returns the batch identifier stored by WithRunID, or ""
func RunIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}
