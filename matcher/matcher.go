// Package matcher defines the predicate interface the cache uses for
// pattern lookups, along with a set of ready-made matchers.
package matcher

/*
Matcher is the interface every matching strategy must follow.

Instead of hard-coding pattern logic into the cache, we define one
capability so matching behavior can be swapped freely. The cache does NOT
care how a matcher decides; it only calls Matches on each key during a
scan, so a matcher selects entries by any criterion other than the exact
key equality Get already provides.

Matches must be pure: no side effects, and the same key must always give
the same answer while a scan is running. Beyond that the cache places no
restriction on a matcher's internal state.
*/
type Matcher[K any] interface {

	// Matches reports whether the given cache key satisfies this
	// matcher's criteria.
	Matches(key K) bool
}
