/*
Package cache implements an in-process key/value cache with per-entry TTL
expiration, optional FIFO-bounded capacity, and pattern lookups through a
pluggable matcher interface.

Storage is a map paired with a doubly-linked list, which gives:
  - O(1) exact lookup, insert and remove
  - stable insertion-order iteration
  - O(1) removal of the oldest entry for FIFO eviction

Expiration runs on two paths. Get performs lazy cleanup: an expired entry
is removed by the lookup that discovers it and reported as ErrExpired once.
CleanupExpired performs active cleanup across the whole cache on demand.
There are no background timers; if periodic cleanup is wanted, wire a
janitor.Janitor on top.

Matcher queries (GetByMatcher, GetAllByMatcher) scan all entries in
insertion order and are strictly read-only: expired entries are skipped,
never removed, so a scan can never invalidate its own iteration. This is
the documented O(n) trade-off against O(1) exact lookup.

Concurrency: the cache has no internal locking. It is designed for a
single owner mutating it from one goroutine at a time. Note that reads
mutate too (Get evicts expired entries), so sharing a Cache across
goroutines requires one exclusive lock around every operation. The
loader.ReadThrough wrapper in this module provides exactly that.
*/
package cache
