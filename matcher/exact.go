package matcher

// This file implements exact-equality matching.

/*
Exact matches exactly one key. Behaviorally this is the same as calling
Get with that key, but it is useful in generic code paths that take a
Matcher and should sometimes behave like a direct lookup.
*/
type Exact[K comparable] struct {
	target K
}

// NewExact creates a matcher for exactly the given key.
func NewExact[K comparable](target K) Exact[K] {
	return Exact[K]{target: target}
}

func (m Exact[K]) Matches(key K) bool {
	return key == m.target
}
