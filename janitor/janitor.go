// Package janitor provides optional periodic cleanup of expired entries.
//
// The cache engine deliberately owns no goroutines or timers: expiration
// is discovered lazily by Get or eagerly by CleanupExpired. Without
// either, expired entries keep consuming capacity and memory. A Janitor
// closes that gap for callers who want it, while keeping the engine
// itself free of background work.
package janitor

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

/*
Target is what a Janitor sweeps. *loader.ReadThrough satisfies it and
locks internally; a bare *cache.Cache satisfies it too, but passing one
is only safe when nothing else touches that cache while the janitor runs.
*/
type Target interface {
	CleanupExpired() int
}

// Janitor calls Target.CleanupExpired on a fixed interval until stopped.
// It owns its goroutine: Run starts it, Stop waits for it to exit.
type Janitor struct {
	target   Target
	interval time.Duration
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// New creates a janitor sweeping target every interval.
// A nil logger disables logging.
func New(target Target, interval time.Duration, logger *slog.Logger) *Janitor {
	ctx, cancel := context.WithCancel(context.Background())
	return &Janitor{
		target:   target,
		interval: interval,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Run starts the sweep loop. It returns immediately; the loop runs on
// its own goroutine until Stop is called.
func (j *Janitor) Run() {
	j.wg.Add(1)
	go j.loop()
}

/*
loop is a ticker-driven full sweep. O(n) per tick, intentionally simple:
no per-entry timers, no heaps, no extra goroutines to own. The sweep
frequency, not the mechanism, is the tuning knob.
*/
func (j *Janitor) loop() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.ctx.Done():
			return
		case <-ticker.C:
			removed := j.target.CleanupExpired()
			if removed > 0 && j.logger != nil {
				j.logger.Debug("janitor sweep", "removed", removed)
			}
		}
	}
}

// Stop halts the sweep loop and waits for it to finish.
// Safe to call more than once.
func (j *Janitor) Stop() {
	j.once.Do(func() {
		j.cancel()
		j.wg.Wait()
	})
}
