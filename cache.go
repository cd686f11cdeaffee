package cache

import (
	"container/list"
	"iter"
	"time"

	"github.com/keymatch/matcher-cache/matcher"
	"github.com/keymatch/matcher-cache/types"
)

/*
Cache is the cache engine. It owns every entry it stores.

It decides:
- when an entry is expired (each entry carries its own TTL)
- what Get, Remove and the matcher queries observe
- which entry is evicted when the capacity bound is exceeded

It does NOT:
- lock (single-owner mutation; see the package documentation)
- run background goroutines or timers
- talk to any backing store (see the loader package for that)
*/
type Cache[K comparable, V any] struct {

	// entries gives O(1) exact lookup. Each element lives in order.
	entries map[K]*list.Element

	// order tracks insertion order: oldest entry at the front, newest
	// at the back. FIFO eviction always pops the front.
	order *list.List

	// defaultTTL is applied by Insert when no per-entry TTL is given.
	defaultTTL time.Duration

	// maxSize caps the entry count, enforced after every insert.
	// Zero or negative means unbounded.
	maxSize int
}

// node is what the order list elements hold. The key is kept here because
// eviction starts from list nodes and must delete from the map.
type node[K comparable, V any] struct {
	key   K
	entry *types.Entry[V]
}

// New creates an unbounded cache. Entries inserted with Insert expire
// defaultTTL after their insertion.
func New[K comparable, V any](defaultTTL time.Duration) *Cache[K, V] {
	return &Cache[K, V]{
		entries:    make(map[K]*list.Element),
		order:      list.New(),
		defaultTTL: defaultTTL,
	}
}

// WithMaxSize creates a cache that additionally holds at most maxSize
// entries. When an insert pushes the count past the cap, the oldest
// entries are evicted (FIFO) until the cap holds again.
func WithMaxSize[K comparable, V any](defaultTTL time.Duration, maxSize int) *Cache[K, V] {
	c := New[K, V](defaultTTL)
	c.maxSize = maxSize
	return c
}

/*
Insert stores value under key with the cache's default TTL.

If the key already exists it is replaced: the old entry is discarded, the
new one starts a fresh age, and the key moves to the newest position for
eviction purposes. If a capacity bound is configured and the insert
exceeded it, the oldest entries are evicted until the bound holds.

Eviction is unconditional FIFO: the longest-resident entry goes first,
whether or not it has expired and whether or not some newer entry already
has. Insert never fails, but it may silently discard entries other than
the one just inserted.
*/
func (c *Cache[K, V]) Insert(key K, value V) {
	c.insert(key, value, c.defaultTTL)
}

// InsertWithTTL is Insert with a per-entry TTL overriding the default.
func (c *Cache[K, V]) InsertWithTTL(key K, value V, ttl time.Duration) {
	c.insert(key, value, ttl)
}

func (c *Cache[K, V]) insert(key K, value V, ttl time.Duration) {
	// Replace-and-touch: drop the old position so the key re-enters
	// as the newest entry with a fresh timestamp.
	if el, ok := c.entries[key]; ok {
		c.removeElement(el)
	}

	el := c.order.PushBack(&node[K, V]{key: key, entry: types.NewEntry(value, ttl)})
	c.entries[key] = el

	if c.maxSize > 0 {
		for len(c.entries) > c.maxSize {
			c.removeElement(c.order.Front())
		}
	}
}

/*
Get retrieves the entry for key in O(1).

If the key is absent, ErrNotFound. If the entry is present but its TTL
has elapsed, the entry is removed (lazy cleanup) and ErrExpired is
returned exactly once: a later Get on the same key is ErrNotFound until
the key is inserted again.
*/
func (c *Cache[K, V]) Get(key K) (*types.Entry[V], error) {
	el, ok := c.entries[key]
	if !ok {
		return nil, ErrNotFound
	}

	n := el.Value.(*node[K, V])
	if n.entry.IsExpired() {
		c.removeElement(el)
		return nil, ErrExpired
	}

	return n.entry, nil
}

/*
Remove deletes the entry for key regardless of its expiry state and
returns its value. An absent key is the ordinary ErrNotFound outcome.

Remove applies no expiry logic on purpose: it reports presence or
absence, never whether the removed entry happened to be expired.
*/
func (c *Cache[K, V]) Remove(key K) (V, error) {
	el, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}

	n := el.Value.(*node[K, V])
	c.removeElement(el)
	return n.entry.Value(), nil
}

// ContainsKey reports whether key has a live (non-expired) entry.
// It is a pure check: no cleanup is triggered.
func (c *Cache[K, V]) ContainsKey(key K) bool {
	el, ok := c.entries[key]
	return ok && !el.Value.(*node[K, V]).entry.IsExpired()
}

// Match pairs a key with its entry, as returned by GetAllByMatcher.
type Match[K comparable, V any] struct {
	Key   K
	Entry *types.Entry[V]
}

/*
GetByMatcher returns the first live entry whose KEY satisfies m, scanning
in insertion order. ErrNotFound if nothing matches or the cache is empty.

The scan is strictly read-only. Expired entries are skipped, not removed:
evicting mid-scan would mutate the structure the scan is walking. They
stay in place for Get or CleanupExpired to collect later. O(n).
*/
func (c *Cache[K, V]) GetByMatcher(m matcher.Matcher[K]) (*types.Entry[V], error) {
	for el := c.order.Front(); el != nil; el = el.Next() {
		n := el.Value.(*node[K, V])
		if n.entry.IsExpired() {
			continue
		}
		if m.Matches(n.key) {
			return n.entry, nil
		}
	}
	return nil, ErrNotFound
}

/*
GetAllByMatcher returns every live entry whose key satisfies m, in
insertion order. No match is not an error: the result is simply empty.

Same contract as GetByMatcher: read-only scan, expired entries skipped
and left in place. O(n).
*/
func (c *Cache[K, V]) GetAllByMatcher(m matcher.Matcher[K]) []Match[K, V] {
	var matches []Match[K, V]
	for el := c.order.Front(); el != nil; el = el.Next() {
		n := el.Value.(*node[K, V])
		if n.entry.IsExpired() {
			continue
		}
		if m.Matches(n.key) {
			matches = append(matches, Match[K, V]{Key: n.key, Entry: n.entry})
		}
	}
	return matches
}

/*
CleanupExpired removes every entry whose TTL has elapsed at the moment of
the call and returns how many were removed.

This is the only operation with an active expiration guarantee. Without
it, expired entries keep occupying capacity and memory until a Get
touches them or FIFO eviction displaces them.
*/
func (c *Cache[K, V]) CleanupExpired() int {
	removed := 0
	for el := c.order.Front(); el != nil; {
		next := el.Next() // grab before removal invalidates el
		if el.Value.(*node[K, V]).entry.IsExpired() {
			c.removeElement(el)
			removed++
		}
		el = next
	}
	return removed
}

// Len returns the raw entry count, INCLUDING expired entries that have
// not been cleaned up yet. Use Stats or ActiveLen for the live count.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// IsEmpty reports whether the cache holds no entries at all.
func (c *Cache[K, V]) IsEmpty() bool {
	return len(c.entries) == 0
}

// ActiveLen counts the entries whose TTL has not elapsed. Read-only. O(n).
func (c *Cache[K, V]) ActiveLen() int {
	active := 0
	for el := c.order.Front(); el != nil; el = el.Next() {
		if !el.Value.(*node[K, V]).entry.IsExpired() {
			active++
		}
	}
	return active
}

// Clear unconditionally empties the cache.
func (c *Cache[K, V]) Clear() {
	c.entries = make(map[K]*list.Element)
	c.order.Init()
}

// Stats classifies every entry against the clock and returns the counts.
// Read-only: nothing is removed, even when expired entries are seen. O(n).
func (c *Cache[K, V]) Stats() Stats {
	total := len(c.entries)
	expired := 0
	for el := c.order.Front(); el != nil; el = el.Next() {
		if el.Value.(*node[K, V]).entry.IsExpired() {
			expired++
		}
	}
	return Stats{
		TotalEntries:   total,
		ActiveEntries:  total - expired,
		ExpiredEntries: expired,
		MaxSize:        c.maxSize,
		DefaultTTL:     c.defaultTTL,
	}
}

/*
IterActive returns an iterator over (key, entry) pairs for the entries
that are live at the moment each is visited, in insertion order.

The sequence is lazy and restartable; ranging over it never evicts.
The cache must not be mutated while a range loop is in progress.
*/
func (c *Cache[K, V]) IterActive() iter.Seq2[K, *types.Entry[V]] {
	return func(yield func(K, *types.Entry[V]) bool) {
		for el := c.order.Front(); el != nil; el = el.Next() {
			n := el.Value.(*node[K, V])
			if n.entry.IsExpired() {
				continue
			}
			if !yield(n.key, n.entry) {
				return
			}
		}
	}
}

// removeElement drops one entry from both the map and the order list.
func (c *Cache[K, V]) removeElement(el *list.Element) {
	n := el.Value.(*node[K, V])
	delete(c.entries, n.key)
	c.order.Remove(el)
}
