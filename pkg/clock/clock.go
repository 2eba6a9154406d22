// Package clock defines the time source used to stamp the shared wall clock.
package clock

import (
	"time"
)

// Clock is the interface that defines a method to get the current time.
type Clock interface {
	Now() time.Time
}

// Func adapts an ordinary function into a Clock.
type Func func() time.Time

// Now calls f.
func (f Func) Now() time.Time {
	return f()
}
