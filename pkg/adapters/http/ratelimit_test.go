package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClientLimiter_SweepsIdleClientsPeriodically(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := start
	l := newClientLimiter(100, 10)
	l.now = func() time.Time { return clock }

	assert.True(t, l.allow("a"))
	clock = start.Add(30 * time.Second)
	assert.True(t, l.allow("b"))
	assert.Len(t, l.clients, 2, "no sweep within the interval")

	// a has been idle past the TTL; b has not.
	clock = start.Add(idleLimiterTTL + 20*time.Second)
	assert.True(t, l.allow("c"))
	assert.NotContains(t, l.clients, "a")
	assert.Contains(t, l.clients, "b")

	// b is now idle past the TTL, but the next sweep is not due yet.
	clock = start.Add(idleLimiterTTL + 50*time.Second)
	assert.True(t, l.allow("d"))
	assert.Contains(t, l.clients, "b")
	assert.Len(t, l.clients, 3)

	clock = start.Add(idleLimiterTTL + 90*time.Second)
	assert.True(t, l.allow("d"))
	assert.NotContains(t, l.clients, "b")
	assert.Len(t, l.clients, 2)
}

func TestClientLimiter_LimitsPerClient(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newClientLimiter(1, 2)
	l.now = func() time.Time { return clock }

	assert.True(t, l.allow("a"))
	assert.True(t, l.allow("a"))
	assert.False(t, l.allow("a"), "burst exhausted")
	assert.True(t, l.allow("b"), "other clients keep their own bucket")

	clock = clock.Add(time.Second)
	assert.True(t, l.allow("a"))
}
