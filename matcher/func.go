package matcher

// This file adapts a plain function into a Matcher. This is the most
// flexible variant: any predicate over the key type will do.

/*
Func is a function-based matcher.

	even := matcher.Func[int](func(k int) bool { return k%2 == 0 })
	entries := c.GetAllByMatcher(even)

The function must be pure, like any other Matcher.
*/
type Func[K any] func(key K) bool

func (f Func[K]) Matches(key K) bool {
	return f(key)
}
