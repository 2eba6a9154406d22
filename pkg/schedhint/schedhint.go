// Package schedhint asks the operating system to favor one goroutine over
// another. Hints are best effort; callers must stay correct when a hint is
// refused or unsupported.
package schedhint

import (
	"errors"
)

// Priority is a relative scheduling preference.
type Priority int

const (
	// PriorityNormal leaves scheduling untouched.
	PriorityNormal Priority = iota
	// PriorityHigh asks for the calling goroutine to be favored.
	PriorityHigh
)

// ErrUnsupported is returned when the platform offers no per-thread priority.
var ErrUnsupported = errors.New("scheduling hints are not supported on this platform")

func (p Priority) String() string {
	switch p {
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	}

	return "unknown"
}

// Apply requests priority for the calling goroutine. A goroutine given a
// priority other than PriorityNormal stays locked to its OS thread for the
// rest of its life, so the thread is discarded when the goroutine exits.
func Apply(priority Priority) error {
	if priority == PriorityNormal {
		return nil
	}

	return apply(priority)
}
