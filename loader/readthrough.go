package loader

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	cache "github.com/keymatch/matcher-cache"
	"github.com/keymatch/matcher-cache/types"
)

/*
ReadThrough wraps a Cache so that misses and expiries fall through to a
backing Loader, and so that the cache can be shared across goroutines.

The engine requires external synchronization when shared, because even
reads mutate it (Get evicts expired entries). ReadThrough imposes exactly
that discipline: one exclusive lock guarding every cache operation.

singleflight sits on the miss path:
- If 100 goroutines request the same missing key,
  only ONE of them calls the Loader.
- The others wait and share the result.
*/
type ReadThrough[K comparable, V any] struct {

	// mu guards every access to cache. One lock for the whole engine,
	// as the engine's concurrency contract prescribes.
	mu sync.Mutex

	// cache is the wrapped engine. ReadThrough owns it; callers must
	// not touch it directly while the wrapper is in use.
	cache *cache.Cache[K, V]

	// source is the backing store consulted on miss or expiry.
	source Loader[K, V]

	// sf collapses concurrent loads of the same key into one call.
	sf singleflight.Group

	// metrics records hits, misses, expiries and loads.
	metrics types.Metrics
}

/*
NewReadThrough wraps c with read-through loading from source.
Pass nil metrics to disable event recording.
*/
func NewReadThrough[K comparable, V any](c *cache.Cache[K, V], source Loader[K, V], metrics types.Metrics) *ReadThrough[K, V] {
	// Ensure metrics is always non-nil so the hot path needs no checks.
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}
	return &ReadThrough[K, V]{
		cache:   c,
		source:  source,
		metrics: metrics,
	}
}

/*
Get returns the value for key, loading it from the backing source when
the cache has no live entry.

A cached hit never touches the Loader. A miss (or a lazily evicted
expired entry) triggers exactly one Load per key at a time, no matter
how many goroutines ask concurrently.
*/
func (r *ReadThrough[K, V]) Get(ctx context.Context, key K) (V, error) {
	r.mu.Lock()
	ent, err := r.cache.Get(key)
	if err == nil {
		v := ent.Value() // read before unlocking
		r.mu.Unlock()
		r.metrics.Hit()
		return v, nil
	}
	r.mu.Unlock()

	if errors.Is(err, cache.ErrExpired) {
		r.metrics.Expire()
	} else {
		r.metrics.Miss()
	}

	v, err, _ := r.sf.Do(flightKey(key), func() (any, error) {
		// Another goroutine may have finished loading this key while
		// we waited on the flight group; serve its result.
		r.mu.Lock()
		if ent, err := r.cache.Get(key); err == nil {
			v := ent.Value()
			r.mu.Unlock()
			return v, nil
		}
		r.mu.Unlock()

		value, err := r.source.Load(ctx, key)
		if err != nil {
			return nil, errors.Wrapf(err, "load key %v", key)
		}
		r.metrics.Load()

		r.mu.Lock()
		r.cache.Insert(key, value)
		r.mu.Unlock()
		return value, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Insert stores a value directly, bypassing the Loader.
func (r *ReadThrough[K, V]) Insert(key K, value V) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Insert(key, value)
}

// InsertWithTTL is Insert with a per-entry TTL.
func (r *ReadThrough[K, V]) InsertWithTTL(key K, value V, ttl time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.InsertWithTTL(key, value, ttl)
}

// Invalidate drops key from the cache, expired or not. The next Get will
// consult the Loader again. Reports whether an entry was present.
func (r *ReadThrough[K, V]) Invalidate(key K) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.cache.Remove(key)
	return err == nil
}

// CleanupExpired actively removes every expired entry and returns the
// count removed. This is what a janitor.Janitor should call.
func (r *ReadThrough[K, V]) CleanupExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.CleanupExpired()
}

// Stats returns the wrapped cache's statistics snapshot.
func (r *ReadThrough[K, V]) Stats() cache.Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.Stats()
}

// flightKey renders a key for the singleflight group, whose keys are
// strings. A rendering collision only coalesces two loads; the typed
// cache insert keeps the data itself correct.
func flightKey[K comparable](key K) string {
	return fmt.Sprintf("%v", key)
}
