// Package sleeper suspends a goroutine for a fixed interval, with support for
// interrupting the suspension from another goroutine.
package sleeper

import (
	"context"
	"errors"
	"time"
)

// Sleeper is the interface that defines a method to suspend for a duration.
type Sleeper interface {
	Sleep(ctx context.Context, duration time.Duration) error
}

// InterruptedError is returned by Sleep when the suspension was interrupted.
type InterruptedError struct {
	Reason string
}

func (e *InterruptedError) Error() string {
	return e.Reason
}

// IsInterrupted reports whether err is an InterruptedError.
func IsInterrupted(err error) bool {
	var interruptedError *InterruptedError
	return errors.As(err, &interruptedError)
}

type interruptible struct {
	interrupts chan string
}

// New constructs an interruptible Sleeper.
func New() *interruptible {
	return &interruptible{
		interrupts: make(chan string, 1),
	}
}

// Sleep blocks for duration. It returns an InterruptedError if Interrupt is
// called first, or ctx.Err() if ctx is done first.
func (s *interruptible) Sleep(ctx context.Context, duration time.Duration) error {
	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil

	case reason := <-s.interrupts:
		return &InterruptedError{Reason: reason}

	case <-ctx.Done():
		return ctx.Err()
	}
}

// Interrupt wakes the current or next call to Sleep. Interrupts do not
// accumulate: while one is pending, further calls are dropped.
func (s *interruptible) Interrupt(reason string) {
	select {
	case s.interrupts <- reason:
	default:
	}
}
