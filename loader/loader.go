// Package loader layers read-through loading on top of the cache engine.
//
// The engine itself never talks to a backing source and never locks.
// This package adds both: a Loader contract for fetching missing values,
// and a ReadThrough wrapper that makes one cache safe to share across
// goroutines behind a single exclusive lock.
package loader

import "context"

/*
Loader is the contract between the cache and the backing source.

Load is called when the cache cannot serve a key (missing or expired):

 1. ReadThrough checks the cache → no live entry
 2. ReadThrough calls Load(ctx, key)
 3. The loader fetches from the DB / API / filesystem
 4. ReadThrough stores the result and returns it

Load must honor ctx cancellation; the cache side never blocks.
*/
type Loader[K comparable, V any] interface {
	Load(ctx context.Context, key K) (V, error)
}

// LoadFunc adapts a plain function to the Loader interface.
type LoadFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

func (f LoadFunc[K, V]) Load(ctx context.Context, key K) (V, error) {
	return f(ctx, key)
}
