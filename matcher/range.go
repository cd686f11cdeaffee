package matcher

// This file implements range matching for ordered keys
// (numeric IDs, scores, timestamps rendered as integers, ...).

import "cmp"

/*
Range matches keys that fall between a minimum and a maximum.
NewRange builds an inclusive range, NewRangeExclusive an exclusive one.
*/
type Range[K cmp.Ordered] struct {
	min       K
	max       K
	inclusive bool
}

// NewRange creates a matcher for min <= key <= max.
func NewRange[K cmp.Ordered](min, max K) Range[K] {
	return Range[K]{min: min, max: max, inclusive: true}
}

// NewRangeExclusive creates a matcher for min < key < max.
func NewRangeExclusive[K cmp.Ordered](min, max K) Range[K] {
	return Range[K]{min: min, max: max}
}

func (m Range[K]) Matches(key K) bool {
	if m.inclusive {
		return key >= m.min && key <= m.max
	}
	return key > m.min && key < m.max
}
