package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryAccessors(t *testing.T) {
	before := time.Now()
	e := NewEntry("payload", time.Minute)
	after := time.Now()

	assert.Equal(t, "payload", e.Value())
	assert.Equal(t, time.Minute, e.TTL())
	require.False(t, e.CreatedAt().Before(before))
	require.False(t, e.CreatedAt().After(after))
}

func TestEntryAgeGrows(t *testing.T) {
	e := NewEntry(1, time.Minute)

	first := e.Age()
	time.Sleep(20 * time.Millisecond)
	second := e.Age()

	assert.Greater(t, second, first)
	assert.False(t, e.IsExpired())
}

func TestEntryExpires(t *testing.T) {
	e := NewEntry(1, 30*time.Millisecond)

	require.False(t, e.IsExpired())
	time.Sleep(60 * time.Millisecond)
	require.True(t, e.IsExpired())
}

func TestEntryNonPositiveTTLExpiresImmediately(t *testing.T) {
	assert.True(t, NewEntry(1, 0).IsExpired())
	assert.True(t, NewEntry(1, -time.Second).IsExpired())
}
