package types

// This file defines how cache collaborators report what they are doing.

/*
Metrics is an interface that defines the events a cache wrapper wants to
record. Each method represents one event in the cache lifecycle; the
wrapper calls these methods whenever the event happens.

The core cache itself never records metrics. Counting happens in the
layers that sit on top of it (the read-through loader, a janitor), so
the engine's hot path stays free of bookkeeping.
*/
type Metrics interface {

	// Hit is called when a lookup returns a live cached value.
	Hit()

	// Miss is called when a lookup finds no entry for the key.
	Miss()

	// Expire is called when a lookup finds an entry whose TTL has
	// elapsed (the entry is removed as part of the same lookup).
	Expire()

	// Load is called when a value is fetched from the backing source
	// after a miss or an expiry.
	Load()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

Users who do not care about metrics should not have to implement the
interface, and the rest of the code should not be littered with
`if metrics != nil` checks. So the default is an implementation that
simply ignores every event.
*/
type NoopMetrics struct{}

// All methods below intentionally do nothing.

func (NoopMetrics) Hit()    {}
func (NoopMetrics) Miss()   {}
func (NoopMetrics) Expire() {}
func (NoopMetrics) Load()   {}
