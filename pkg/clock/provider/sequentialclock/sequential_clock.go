package sequentialclock

import (
	"sync"
	"time"
)

type sequentialClock struct {
	mux  sync.Mutex
	next time.Time
	step time.Duration
}

// Option defines functional option parameters for sequentialClock.
type Option func(*sequentialClock)

// WithStart sets the time returned by the first call to Now.
func WithStart(start time.Time) Option {
	return func(c *sequentialClock) {
		c.next = start
	}
}

// WithStep sets how far the clock advances per call to Now.
func WithStep(step time.Duration) Option {
	return func(c *sequentialClock) {
		c.step = step
	}
}

// New constructs a clock starting at the Unix epoch that advances one second per call.
func New(options ...Option) *sequentialClock {
	c := &sequentialClock{
		next: time.Unix(0, 0),
		step: time.Second,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

func (c *sequentialClock) Now() time.Time {
	c.mux.Lock()
	defer c.mux.Unlock()

	now := c.next
	c.next = c.next.Add(c.step)
	return now
}
