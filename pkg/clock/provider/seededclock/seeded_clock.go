package seededclock

import (
	"sync"
	"time"
)

type seededClock struct {
	mux   sync.Mutex
	times []time.Time
	index int
}

// New constructs a clock that cycles through times, one per call to Now.
func New(times ...time.Time) *seededClock {
	if len(times) == 0 {
		times = []time.Time{time.Unix(0, 0)}
	}

	return &seededClock{
		times: times,
	}
}

func (s *seededClock) Now() time.Time {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.index >= len(s.times) {
		s.index = 0
	}

	index := s.index
	s.index++
	return s.times[index]
}
