package cache

import "time"

/*
Stats is a read-only snapshot of the cache state, computed by classifying
every entry against the clock at the moment Stats() is called.

The split between active and expired matters because Len() deliberately
does NOT make it: Len counts raw entries, including expired ones that no
Get or CleanupExpired has touched yet. Callers that need "how many usable
values do I have" should read ActiveEntries here.
*/
type Stats struct {

	// TotalEntries is the raw entry count, expired entries included.
	TotalEntries int

	// ActiveEntries is the number of entries whose TTL has not elapsed.
	ActiveEntries int

	// ExpiredEntries is the number of entries past their TTL that are
	// still occupying space (not yet lazily or actively cleaned up).
	ExpiredEntries int

	// MaxSize is the configured capacity. Zero means unbounded.
	MaxSize int

	// DefaultTTL is the TTL applied by Insert.
	DefaultTTL time.Duration
}
