package janitor

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	cache "github.com/keymatch/matcher-cache"
	"github.com/keymatch/matcher-cache/loader"
)

// sweepCounter counts sweeps without needing a real cache.
type sweepCounter struct {
	sweeps atomic.Int64
}

func (s *sweepCounter) CleanupExpired() int {
	s.sweeps.Add(1)
	return 0
}

func TestJanitorSweepsPeriodically(t *testing.T) {
	target := &sweepCounter{}

	j := New(target, 20*time.Millisecond, nil)
	j.Run()
	time.Sleep(110 * time.Millisecond)
	j.Stop()

	// ~5 ticks expected; allow generous slack for slow CI
	assert.GreaterOrEqual(t, target.sweeps.Load(), int64(2))
}

func TestJanitorStopHaltsSweeping(t *testing.T) {
	target := &sweepCounter{}

	j := New(target, 10*time.Millisecond, nil)
	j.Run()
	time.Sleep(50 * time.Millisecond)
	j.Stop()

	after := target.sweeps.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, target.sweeps.Load())

	// Stop is idempotent
	j.Stop()
}

func TestJanitorRemovesExpiredEntries(t *testing.T) {
	rt := loader.NewReadThrough[string, string](
		cache.New[string, string](time.Minute),
		loader.LoadFunc[string, string](func(ctx context.Context, key string) (string, error) {
			return "", nil
		}),
		nil,
	)

	rt.InsertWithTTL("short", "a", 30*time.Millisecond)
	rt.Insert("long", "b")

	j := New(rt, 20*time.Millisecond, nil)
	j.Run()
	time.Sleep(120 * time.Millisecond)
	j.Stop()

	stats := rt.Stats()
	assert.Equal(t, 1, stats.TotalEntries)
	assert.Equal(t, 0, stats.ExpiredEntries)
}
