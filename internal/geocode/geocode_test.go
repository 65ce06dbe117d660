package geocode

import (
	"context"
	"errors"
	"testing"
	"time"

	"geo-density-pipeline/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticResolver(t *testing.T) {
	r := NewStaticResolver(map[string]model.GeoPoint{
		"123 Main St, Springfield": {Lat: 40.71, Lng: -74.00},
	})

	pt, ok, err := r.Resolve(context.Background(), "123 Main St, Springfield")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, model.GeoPoint{Lat: 40.71, Lng: -74.00}, pt)

	// Case and whitespace are normalized on both sides of the table.
	_, ok, err = r.Resolve(context.Background(), "  123  main st,   SPRINGFIELD ")
	require.NoError(t, err)
	assert.True(t, ok)

	_, ok, err = r.Resolve(context.Background(), "nowhere at all")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStaticResolverCancelledContext(t *testing.T) {
	r := NewStaticResolver(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := r.Resolve(ctx, "123 Main St")
	assert.ErrorIs(t, err, context.Canceled)
}

type flakyResolver struct {
	failures int
	calls    int
	point    model.GeoPoint
}

func (f *flakyResolver) Resolve(ctx context.Context, address string) (model.GeoPoint, bool, error) {
	f.calls++
	if f.calls <= f.failures {
		return model.GeoPoint{}, false, errors.New("provider unavailable")
	}
	return f.point, true, nil
}

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:       attempts,
		InitialDelay:      time.Millisecond,
		MaxDelay:          5 * time.Millisecond,
		BackoffMultiplier: 2.0,
	}
}

func TestRetryResolverRecoversFromTransientErrors(t *testing.T) {
	inner := &flakyResolver{failures: 2, point: model.GeoPoint{Lat: 1, Lng: 2}}
	r := WithRetry(inner, fastRetry(3))

	pt, ok, err := r.Resolve(context.Background(), "123 Main St")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, inner.point, pt)
	assert.Equal(t, 3, inner.calls)
}

func TestRetryResolverGivesUpAfterMaxAttempts(t *testing.T) {
	inner := &flakyResolver{failures: 10}
	r := WithRetry(inner, fastRetry(3))

	_, ok, err := r.Resolve(context.Background(), "123 Main St")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, 3, inner.calls)
}

func TestRetryResolverDoesNotRetryUnresolved(t *testing.T) {
	calls := 0
	inner := ResolverFunc(func(ctx context.Context, address string) (model.GeoPoint, bool, error) {
		calls++
		return model.GeoPoint{}, false, nil
	})
	r := WithRetry(inner, fastRetry(5))

	_, ok, err := r.Resolve(context.Background(), "123 Main St")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, calls, "unresolved is a final answer, not an error")
}

func TestRetryResolverRespectsContext(t *testing.T) {
	inner := &flakyResolver{failures: 100}
	r := WithRetry(inner, RetryConfig{
		MaxAttempts:       10,
		InitialDelay:      time.Hour,
		MaxDelay:          time.Hour,
		BackoffMultiplier: 1.0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, _, err := r.Resolve(ctx, "123 Main St")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second, "cancellation should win over the backoff sleep")
	assert.Equal(t, 1, inner.calls)
}
