package matcher

// This file implements the string matchers: prefix, suffix and substring.
// They are handy for keys that follow a naming convention, like
// "user:123" or "invoice.pdf".

import "strings"

// Prefix matches string keys that start with a given prefix.
type Prefix struct {
	prefix string
}

// NewPrefix creates a matcher for keys starting with prefix.
func NewPrefix(prefix string) Prefix {
	return Prefix{prefix: prefix}
}

func (m Prefix) Matches(key string) bool {
	return strings.HasPrefix(key, m.prefix)
}

// Suffix matches string keys that end with a given suffix,
// e.g. a file extension or a domain name.
type Suffix struct {
	suffix string
}

// NewSuffix creates a matcher for keys ending with suffix.
func NewSuffix(suffix string) Suffix {
	return Suffix{suffix: suffix}
}

func (m Suffix) Matches(key string) bool {
	return strings.HasSuffix(key, m.suffix)
}

// Contains matches string keys that contain a given substring anywhere.
type Contains struct {
	substring string
}

// NewContains creates a matcher for keys containing substring.
func NewContains(substring string) Contains {
	return Contains{substring: substring}
}

func (m Contains) Matches(key string) bool {
	return strings.Contains(key, m.substring)
}
