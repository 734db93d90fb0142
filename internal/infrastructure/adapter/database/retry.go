package database

import (
	"context"
	"math/rand/v2"
	"time"

	coreport "github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxAttempts   int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // Factor to add randomness to retry intervals (0.0-1.0)
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   3,
		RetryInterval: 500 * time.Millisecond,
		MaxInterval:   5 * time.Second,
		JitterFactor:  0.2,
	}
}

// RetryConfigFrom derives the connection retry policy from the database config
func RetryConfigFrom(c *Config) RetryConfig {
	rc := DefaultRetryConfig()
	if c.RetryAttempts > 0 {
		rc.MaxAttempts = c.RetryAttempts
	}
	if c.RetryDelay > 0 {
		rc.RetryInterval = c.RetryDelay
		if rc.MaxInterval < c.RetryDelay {
			rc.MaxInterval = 4 * c.RetryDelay
		}
	}
	return rc
}

// RetryOnTransientError retries operation while it fails with a transient error.
// Only connection establishment goes through here; schema statements are never retried.
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	errorMapper *ErrorMapper,
	logger coreport.Logger,
) error {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}

	var err error
	attempt := 0

	for attempt < config.MaxAttempts {
		err = operation()
		if err == nil {
			return nil
		}
		attempt++

		if !errorMapper.IsTransient(err) || attempt >= config.MaxAttempts {
			break
		}

		backoff := calculateBackoffWithJitter(attempt-1, config)
		logger.Warn("Transient database error, retrying", map[string]any{
			"attempt":      attempt,
			"max_attempts": config.MaxAttempts,
			"error":        err.Error(),
			"retry_after":  backoff.String(),
		})

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			logger.Warn("Retry canceled by context", map[string]any{
				"attempts": attempt,
				"error":    ctx.Err().Error(),
			})
			return ctx.Err()
		}
	}

	logger.Error("Database operation failed", map[string]any{
		"attempts":     attempt,
		"max_attempts": config.MaxAttempts,
		"error":        err.Error(),
	})
	return err
}

// calculateBackoffWithJitter computes the backoff duration with exponential increase and jitter
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval * (1 << uint(attempt))

	if backoff > config.MaxInterval {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		jitter := time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
		backoff += jitter
	}

	return backoff
}
