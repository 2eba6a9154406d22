// Package worker runs the two periodic tasks that share a wallclock.Clock:
// the Updater refreshes it and the Display prints it.
package worker

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/inklabs/wallclock/pkg/schedhint"
	"github.com/inklabs/wallclock/pkg/sleeper"
)

// DefaultInterval between iterations of a worker loop.
const DefaultInterval = time.Second

type config struct {
	interval time.Duration
	sleeper  sleeper.Sleeper
	logger   *log.Logger
	writer   io.Writer
	priority schedhint.Priority
}

// Option defines functional option parameters for Updater and Display.
type Option func(*config)

// WithInterval defines the suspension between iterations.
func WithInterval(interval time.Duration) Option {
	return func(c *config) {
		c.interval = interval
	}
}

// WithSleeper defines how a worker suspends between iterations.
func WithSleeper(s sleeper.Sleeper) Option {
	return func(c *config) {
		c.sleeper = s
	}
}

// WithLogger defines the logger for interruption diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithWriter defines where the Display prints. The Updater ignores it.
func WithWriter(writer io.Writer) Option {
	return func(c *config) {
		c.writer = writer
	}
}

// WithPriority overrides the worker's scheduling hint.
func WithPriority(priority schedhint.Priority) Option {
	return func(c *config) {
		c.priority = priority
	}
}

func newConfig(priority schedhint.Priority, options []Option) config {
	c := config{
		interval: DefaultInterval,
		sleeper:  sleeper.New(),
		logger:   log.New(os.Stderr, "", 0),
		writer:   os.Stdout,
		priority: priority,
	}

	for _, option := range options {
		option(&c)
	}

	return c
}

// runForever calls step then sleeps, until ctx is done. An interrupted sleep
// is logged and the loop carries on.
func runForever(ctx context.Context, role string, c config, step func()) error {
	_ = schedhint.Apply(c.priority)

	for {
		step()

		err := c.sleeper.Sleep(ctx, c.interval)
		if err == nil {
			continue
		}

		if sleeper.IsInterrupted(err) {
			c.logger.Printf("%s thread interrupted: %v", role, err)
			continue
		}

		return err
	}
}
