package systemclock

import (
	"time"
)

type systemClock struct{}

// Now returns the local wall clock time.
func (s systemClock) Now() time.Time {
	return time.Now().Local()
}

func New() *systemClock {
	return &systemClock{}
}
