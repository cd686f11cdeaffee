package cache

import "errors"

/*
The query path has exactly two failure modes, and both are surfaced to the
caller as sentinel errors. Nothing is swallowed:

- ErrNotFound: the key (or pattern) has no live entry right now.
- ErrExpired: the key was present but its TTL had elapsed. It is reported
  exactly once, on the Get that discovers it, because that Get also removes
  the entry. A later Get on the same key reports ErrNotFound.

Match with errors.Is. No other operation can fail: Insert, Clear and
CleanupExpired either find something to act on or act on nothing, and
Remove treats an absent key as the ordinary ErrNotFound outcome, never as
an exception.
*/
var (
	// ErrNotFound is returned when the requested key is not in the cache.
	ErrNotFound = errors.New("cache entry not found")

	// ErrExpired is returned when the entry was found but its TTL had
	// elapsed; the entry is removed as a side effect of this result.
	ErrExpired = errors.New("cache entry has expired")
)
