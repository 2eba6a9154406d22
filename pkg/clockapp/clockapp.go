// Package clockapp wires one wallclock.Clock to an Updater and a Display and
// runs them side by side.
package clockapp

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/inklabs/wallclock"
	"github.com/inklabs/wallclock/pkg/clock"
	"github.com/inklabs/wallclock/pkg/clock/provider/systemclock"
	"github.com/inklabs/wallclock/pkg/sleeper"
	"github.com/inklabs/wallclock/pkg/worker"
)

type interruptibleSleeper interface {
	sleeper.Sleeper
	Interrupt(reason string)
}

type app struct {
	timeSource clock.Clock
	stdout     io.Writer
	logger     *log.Logger
	interval   time.Duration

	clock          *wallclock.Clock
	updaterSleeper interruptibleSleeper
	displaySleeper interruptibleSleeper
}

// Option defines functional option parameters for app.
type Option func(*app)

// WithTimeSource defines the time source of the shared clock.
func WithTimeSource(timeSource clock.Clock) Option {
	return func(a *app) {
		a.timeSource = timeSource
	}
}

// WithStdout defines where timestamps print.
func WithStdout(stdout io.Writer) Option {
	return func(a *app) {
		a.stdout = stdout
	}
}

// WithLogger defines the logger for diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(a *app) {
		a.logger = logger
	}
}

// WithInterval overrides worker.DefaultInterval for both workers.
func WithInterval(interval time.Duration) Option {
	return func(a *app) {
		a.interval = interval
	}
}

// New constructs the application.
func New(options ...Option) *app {
	a := &app{
		timeSource:     systemclock.New(),
		stdout:         os.Stdout,
		logger:         log.New(os.Stderr, "", 0),
		interval:       worker.DefaultInterval,
		updaterSleeper: sleeper.New(),
		displaySleeper: sleeper.New(),
	}

	for _, option := range options {
		option(a)
	}

	a.clock = wallclock.New(wallclock.WithTimeSource(a.timeSource))

	return a
}

// Clock returns the shared clock.
func (a *app) Clock() *wallclock.Clock {
	return a.clock
}

// Run starts the Updater and the Display and blocks until ctx is done.
func (a *app) Run(ctx context.Context) error {
	updater := worker.NewUpdater(a.clock,
		worker.WithInterval(a.interval),
		worker.WithSleeper(a.updaterSleeper),
		worker.WithLogger(a.logger),
	)

	display := worker.NewDisplay(a.clock,
		worker.WithInterval(a.interval),
		worker.WithSleeper(a.displaySleeper),
		worker.WithLogger(a.logger),
		worker.WithWriter(a.stdout),
	)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error { return updater.Run(ctx) })
	group.Go(func() error { return display.Run(ctx) })

	return group.Wait()
}

// Interrupt wakes both workers from their current suspension.
func (a *app) Interrupt(reason string) {
	a.updaterSleeper.Interrupt(reason)
	a.displaySleeper.Interrupt(reason)
}
