package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:   attempts,
		RetryInterval: time.Millisecond,
		MaxInterval:   2 * time.Millisecond,
	}
}

func TestRetryOnTransientError(t *testing.T) {
	mapper := NewErrorMapper()
	log := logger.NewNoopLogger()

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(3), func() error {
			calls++
			if calls < 3 {
				return errors.New("connection refused")
			}
			return nil
		}, mapper, log)
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on permanent error", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(5), func() error {
			calls++
			return errors.New("password authentication failed")
		}, mapper, log)
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(2), func() error {
			calls++
			return errors.New("connection reset by peer")
		}, mapper, log)
		assert.EqualError(t, err, "connection reset by peer")
		assert.Equal(t, 2, calls)
	})

	t.Run("honours cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		cfg := fastRetry(5)
		cfg.RetryInterval = time.Hour
		cfg.MaxInterval = time.Hour

		err := RetryOnTransientError(ctx, cfg, func() error {
			return errors.New("connection refused")
		}, mapper, log)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestBackoffIsCapped(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: 300 * time.Millisecond}
	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 200*time.Millisecond, calculateBackoffWithJitter(1, cfg))
	assert.Equal(t, 300*time.Millisecond, calculateBackoffWithJitter(5, cfg))
}
