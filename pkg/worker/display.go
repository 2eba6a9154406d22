package worker

import (
	"context"
	"fmt"

	"github.com/inklabs/wallclock/pkg/schedhint"
)

// Readable is the read side of a wallclock.Clock.
type Readable interface {
	Read() string
}

// Display prints a clock's timestamp, one line per interval.
type Display struct {
	clock  Readable
	config config
}

// NewDisplay constructs a Display with high scheduling priority.
func NewDisplay(clock Readable, options ...Option) *Display {
	return &Display{
		clock:  clock,
		config: newConfig(schedhint.PriorityHigh, options),
	}
}

// Run prints the clock once per interval until ctx is done. The same value
// may print more than once, and an empty line prints before the first update.
func (d *Display) Run(ctx context.Context) error {
	return runForever(ctx, "Display", d.config, d.print)
}

func (d *Display) print() {
	_, _ = fmt.Fprintln(d.config.writer, d.clock.Read())
}
