package wallclock

import (
	"sync"

	"github.com/inklabs/wallclock/pkg/clock"
	"github.com/inklabs/wallclock/pkg/clock/provider/systemclock"
)

// TimestampLayout formats times as HH:mm:ss dd-MM-yyyy on a 24-hour clock.
const TimestampLayout = "15:04:05 02-01-2006"

// Clock holds the most recently formatted timestamp. It is safe for concurrent use.
type Clock struct {
	timeSource clock.Clock

	mux         sync.Mutex
	currentTime string
}

// Option defines functional option parameters for Clock.
type Option func(*Clock)

// WithTimeSource defines the time source read by Update.
func WithTimeSource(timeSource clock.Clock) Option {
	return func(c *Clock) {
		c.timeSource = timeSource
	}
}

// New constructs a Clock with no timestamp set.
func New(options ...Option) *Clock {
	c := &Clock{
		timeSource: systemclock.New(),
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Update stores the current time from the time source.
func (c *Clock) Update() {
	now := c.timeSource.Now().Format(TimestampLayout)

	c.mux.Lock()
	c.currentTime = now
	c.mux.Unlock()
}

// Read returns the stored timestamp, or an empty string before the first Update.
func (c *Clock) Read() string {
	c.mux.Lock()
	defer c.mux.Unlock()

	return c.currentTime
}
