package worker

import (
	"context"

	"github.com/inklabs/wallclock/pkg/schedhint"
)

// Updatable is the write side of a wallclock.Clock.
type Updatable interface {
	Update()
}

// Updater keeps a clock fresh.
type Updater struct {
	clock  Updatable
	config config
}

// NewUpdater constructs an Updater with normal scheduling priority.
func NewUpdater(clock Updatable, options ...Option) *Updater {
	return &Updater{
		clock:  clock,
		config: newConfig(schedhint.PriorityNormal, options),
	}
}

// Run updates the clock once per interval until ctx is done.
func (u *Updater) Run(ctx context.Context) error {
	return runForever(ctx, "Updater", u.config, u.clock.Update)
}
