package geocode

import (
	"context"
	"math"
	"math/rand"
	"time"

	"geo-density-pipeline/internal/model"
)

// RetryConfig defines retry behavior for resolver transport errors.
// Retrying lives here, in the collaborator, not in the pipeline core: the
// core only ever sees resolved or unresolved.
type RetryConfig struct {
	MaxAttempts       int           `json:"max_attempts"`
	InitialDelay      time.Duration `json:"initial_delay"`
	MaxDelay          time.Duration `json:"max_delay"`
	BackoffMultiplier float64       `json:"backoff_multiplier"`
	Jitter            bool          `json:"jitter"`
}

// DefaultRetryConfig suits rate-limited geocoding providers.
var DefaultRetryConfig = RetryConfig{
	MaxAttempts:       3,
	InitialDelay:      500 * time.Millisecond,
	MaxDelay:          10 * time.Second,
	BackoffMultiplier: 2.0,
	Jitter:            true,
}

// RetryResolver decorates a Resolver with exponential backoff on errors.
// An unresolved result (false, nil) is a final answer and is not retried.
type RetryResolver struct {
	inner  Resolver
	config RetryConfig
}

// WithRetry wraps a resolver with the given retry behavior.
func WithRetry(inner Resolver, config RetryConfig) *RetryResolver {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	return &RetryResolver{inner: inner, config: config}
}

// Resolve attempts the lookup up to MaxAttempts times, backing off between
// attempts. Context cancellation wins over the remaining attempts.
func (r *RetryResolver) Resolve(ctx context.Context, address string) (model.GeoPoint, bool, error) {
	var lastErr error

	for attempt := 0; attempt < r.config.MaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return model.GeoPoint{}, false, ctx.Err()
			case <-time.After(r.delayFor(attempt)):
			}
		}

		pt, ok, err := r.inner.Resolve(ctx, address)
		if err == nil {
			return pt, ok, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}

	return model.GeoPoint{}, false, lastErr
}

// delayFor computes the backoff delay before the given attempt (1-based
// for the first retry).
func (r *RetryResolver) delayFor(attempt int) time.Duration {
	delay := float64(r.config.InitialDelay) * math.Pow(r.config.BackoffMultiplier, float64(attempt-1))
	if max := float64(r.config.MaxDelay); delay > max {
		delay = max
	}
	if r.config.Jitter {
		delay *= 0.5 + rand.Float64()*0.5
	}
	return time.Duration(delay)
}
