package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the wall clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time in UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// WithTimeout returns a context canceled after timeout. A non-positive timeout only adds cancellation.
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout.Std())
}

// FixedTimeProvider always reports the same instant. Used by tests and dry runs.
type FixedTimeProvider struct {
	At time.Time
}

// NewFixedTimeProvider creates a provider frozen at t
func NewFixedTimeProvider(t time.Time) *FixedTimeProvider {
	return &FixedTimeProvider{At: t.UTC()}
}

// Now returns the frozen instant
func (p *FixedTimeProvider) Now() time.Time {
	return p.At
}

// Since measures against the frozen instant
func (p *FixedTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(p.At.Sub(t))
}

// WithTimeout behaves like RealTimeProvider.WithTimeout
func (p *FixedTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout.Std())
}
