package testutil

import (
	"sync"
	"time"
)

// FakeClock is a manually advanced clock. Its Now method has the same
// shape as time.Now, so it plugs straight into injectable clock fields.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
}

// NewFakeClock starts a fake clock at the given instant.
func NewFakeClock(at time.Time) *FakeClock {
	return &FakeClock{current: at}
}

// Now returns the clock's current instant.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}
