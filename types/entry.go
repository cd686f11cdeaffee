package types

import "time"

/*
Entry is a cached value together with the timing information needed to
decide whether it is still valid.

An Entry is immutable after construction:
- the value is fixed
- the creation timestamp is fixed
- the TTL is fixed

Replacing a key in the cache creates a brand new Entry. Nothing ever
rewrites createdAt or ttl on an existing one, so age always measures the
life of exactly one insertion.

createdAt comes from time.Now(), which in Go carries a monotonic clock
reading. time.Since uses that reading, so expiry is immune to wall-clock
adjustments (NTP steps, manual changes).
*/
type Entry[V any] struct {
	value     V
	createdAt time.Time
	ttl       time.Duration
}

// NewEntry creates an entry for value that expires ttl after now.
func NewEntry[V any](value V, ttl time.Duration) *Entry[V] {
	return &Entry[V]{
		value:     value,
		createdAt: time.Now(),
		ttl:       ttl,
	}
}

// Value returns the cached value.
func (e *Entry[V]) Value() V {
	return e.value
}

// CreatedAt returns the instant this entry was created.
func (e *Entry[V]) CreatedAt() time.Time {
	return e.createdAt
}

// TTL returns this entry's time-to-live.
// It may differ from the cache's default if InsertWithTTL was used.
func (e *Entry[V]) TTL() time.Duration {
	return e.ttl
}

// Age returns how long ago this entry was created.
func (e *Entry[V]) Age() time.Duration {
	return time.Since(e.createdAt)
}

/*
IsExpired reports whether this entry's TTL has elapsed.

Expiry is a computed predicate, not a stored flag: two calls at different
instants may disagree as time passes, even though the entry itself never
changes. A non-positive TTL expires immediately.
*/
func (e *Entry[V]) IsExpired() bool {
	return e.Age() >= e.ttl
}
