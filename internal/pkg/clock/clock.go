package clock

import "time"

// Clock is the source of "now" for time based business rules.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// New returns a Clock backed by time.Now.
func New() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// FakeClock is a manually driven Clock for tests.
type FakeClock struct {
	now time.Time
}

func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

func (c *FakeClock) Now() time.Time {
	return c.now
}

func (c *FakeClock) Set(t time.Time) {
	c.now = t
}

func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
