package loader

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cache "github.com/keymatch/matcher-cache"
)

// countingMetrics records events with atomic counters so concurrent
// tests can read them safely.
type countingMetrics struct {
	hits, misses, expired, loads atomic.Int64
}

func (m *countingMetrics) Hit()    { m.hits.Add(1) }
func (m *countingMetrics) Miss()   { m.misses.Add(1) }
func (m *countingMetrics) Expire() { m.expired.Add(1) }
func (m *countingMetrics) Load()   { m.loads.Add(1) }

func TestReadThroughLoadsOnMiss(t *testing.T) {
	ctx := context.Background()
	metrics := &countingMetrics{}
	var loadCalls atomic.Int64

	rt := NewReadThrough(
		cache.New[string, string](time.Minute),
		LoadFunc[string, string](func(ctx context.Context, key string) (string, error) {
			loadCalls.Add(1)
			return "loaded:" + key, nil
		}),
		metrics,
	)

	v, err := rt.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, "loaded:key1", v)
	assert.EqualValues(t, 1, loadCalls.Load())
	assert.EqualValues(t, 1, metrics.misses.Load())

	// second read is a pure hit
	v, err = rt.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, "loaded:key1", v)
	assert.EqualValues(t, 1, loadCalls.Load())
	assert.EqualValues(t, 1, metrics.hits.Load())
}

func TestReadThroughReloadsAfterExpiry(t *testing.T) {
	ctx := context.Background()
	metrics := &countingMetrics{}
	var loadCalls atomic.Int64

	rt := NewReadThrough(
		cache.New[string, string](30*time.Millisecond),
		LoadFunc[string, string](func(ctx context.Context, key string) (string, error) {
			loadCalls.Add(1)
			return "fresh", nil
		}),
		metrics,
	)

	_, err := rt.Get(ctx, "key1")
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)

	v, err := rt.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
	assert.EqualValues(t, 2, loadCalls.Load())
	assert.EqualValues(t, 1, metrics.expired.Load())
}

func TestReadThroughPropagatesLoadError(t *testing.T) {
	ctx := context.Background()

	rt := NewReadThrough[string, string](
		cache.New[string, string](time.Minute),
		LoadFunc[string, string](func(ctx context.Context, key string) (string, error) {
			return "", errors.New("backing store down")
		}),
		nil,
	)

	_, err := rt.Get(ctx, "key1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backing store down")

	// a failed load caches nothing
	assert.Equal(t, 0, rt.Stats().TotalEntries)
}

func TestReadThroughSingleflight(t *testing.T) {
	ctx := context.Background()
	var loadCalls atomic.Int64
	release := make(chan struct{})

	rt := NewReadThrough(
		cache.New[string, string](time.Minute),
		LoadFunc[string, string](func(ctx context.Context, key string) (string, error) {
			loadCalls.Add(1)
			<-release // hold every in-flight load until all goroutines queue up
			return "shared", nil
		}),
		nil,
	)

	var wg sync.WaitGroup
	results := make([]string, 10)
	errs := make([]error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = rt.Get(ctx, "hot-key")
		}(i)
	}

	// let the goroutines pile up on the flight group, then release
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, loadCalls.Load(), "concurrent misses must coalesce into one load")
	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, "shared", results[i])
	}
}

func TestReadThroughInsertAndInvalidate(t *testing.T) {
	ctx := context.Background()
	var loadCalls atomic.Int64

	rt := NewReadThrough(
		cache.New[string, string](time.Minute),
		LoadFunc[string, string](func(ctx context.Context, key string) (string, error) {
			loadCalls.Add(1)
			return "from-store", nil
		}),
		nil,
	)

	rt.Insert("key1", "direct")

	v, err := rt.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, "direct", v)
	assert.EqualValues(t, 0, loadCalls.Load())

	require.True(t, rt.Invalidate("key1"))
	assert.False(t, rt.Invalidate("key1"))

	v, err = rt.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, "from-store", v)
	assert.EqualValues(t, 1, loadCalls.Load())
}

func TestReadThroughCleanupExpired(t *testing.T) {
	rt := NewReadThrough[string, string](
		cache.New[string, string](time.Minute),
		LoadFunc[string, string](func(ctx context.Context, key string) (string, error) {
			return "", nil
		}),
		nil,
	)

	rt.InsertWithTTL("short1", "a", 30*time.Millisecond)
	rt.InsertWithTTL("short2", "b", 30*time.Millisecond)
	rt.Insert("long", "c")
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, 2, rt.CleanupExpired())
	assert.Equal(t, 1, rt.Stats().TotalEntries)
}
