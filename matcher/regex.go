package matcher

// This file implements regular-expression matching over string keys.

import "regexp"

// Regex matches string keys against a compiled regular expression.
type Regex struct {
	re *regexp.Regexp
}

// NewRegex compiles expr and returns a matcher for keys it matches.
// The error is the usual regexp compilation error.
func NewRegex(expr string) (Regex, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Regex{}, err
	}
	return Regex{re: re}, nil
}

// MustRegex is NewRegex that panics on an invalid expression.
// Use it for patterns known at compile time.
func MustRegex(expr string) Regex {
	return Regex{re: regexp.MustCompile(expr)}
}

func (m Regex) Matches(key string) bool {
	return m.re.MatchString(key)
}
