package sequentialclock_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/inklabs/wallclock/pkg/clock/provider/sequentialclock"
)

func Test_SequentialClock(t *testing.T) {
	// Given
	clock := sequentialclock.New()

	// When
	actualTime := clock.Now()

	// Then
	assert.Equal(t, 0, int(actualTime.Unix()))
}

func Test_SequentialClock_WithStartAndStep(t *testing.T) {
	// Given
	start := time.Date(2024, 6, 5, 23, 59, 58, 0, time.UTC)
	clock := sequentialclock.New(
		sequentialclock.WithStart(start),
		sequentialclock.WithStep(time.Second),
	)

	// Then
	assert.Equal(t, start, clock.Now())
	assert.Equal(t, start.Add(time.Second), clock.Now())
	assert.Equal(t, time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC), clock.Now())
}

func Example_output() {
	// Given
	clock := sequentialclock.New()

	// When
	fmt.Println(clock.Now().Unix())
	fmt.Println(clock.Now().Unix())
	fmt.Println(clock.Now().Unix())

	// Output:
	// 0
	// 1
	// 2
}
