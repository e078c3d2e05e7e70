package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestLimiter(max int, window time.Duration) (*Limiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)}
	return NewWithClock(max, window, clock), clock
}

func TestLimiterAllowsUpToMax(t *testing.T) {
	l, _ := newTestLimiter(5, time.Minute)

	for i := 0; i < 5; i++ {
		result := l.Check("1.2.3.4")
		assert.True(t, result.Allowed, "attempt %d", i+1)
		assert.Equal(t, 4-i, result.Remaining)
	}

	result := l.Check("1.2.3.4")
	assert.False(t, result.Allowed)
	assert.Equal(t, time.Minute, result.RetryAfter)
}

func TestLimiterWindowSlides(t *testing.T) {
	l, clock := newTestLimiter(5, time.Minute)

	for i := 0; i < 5; i++ {
		l.Check("1.2.3.4")
		clock.advance(10 * time.Second)
	}
	// 50s elapsed, first attempt leaves the window in another 10s
	assert.False(t, l.Check("1.2.3.4").Allowed)

	clock.advance(11 * time.Second)
	assert.True(t, l.Check("1.2.3.4").Allowed)
}

func TestLimiterDeniedAttemptsDoNotExtendWindow(t *testing.T) {
	l, clock := newTestLimiter(2, time.Minute)

	l.Check("1.2.3.4")
	l.Check("1.2.3.4")

	// Hammering while blocked keeps RetryAfter shrinking
	first := l.Check("1.2.3.4")
	clock.advance(30 * time.Second)
	second := l.Check("1.2.3.4")

	assert.False(t, first.Allowed)
	assert.False(t, second.Allowed)
	assert.Less(t, second.RetryAfter, first.RetryAfter)
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(1, time.Minute)

	assert.True(t, l.Check("1.2.3.4").Allowed)
	assert.False(t, l.Check("1.2.3.4").Allowed)
	assert.True(t, l.Check("5.6.7.8").Allowed)
}

func TestLimiterSweepDropsStaleKeys(t *testing.T) {
	l, clock := newTestLimiter(5, time.Minute)

	l.Check("1.2.3.4")
	clock.advance(2 * time.Minute)
	l.sweep()

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Empty(t, l.entries)
}
