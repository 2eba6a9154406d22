package wallclock_test

import (
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inklabs/wallclock"
	"github.com/inklabs/wallclock/pkg/clock/provider/seededclock"
	"github.com/inklabs/wallclock/pkg/clock/provider/sequentialclock"
	"github.com/inklabs/wallclock/pkg/clock/provider/systemclock"
	"github.com/inklabs/wallclock/wallclocktest"
)

var timestampPattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2} \d{2}-\d{2}-\d{4}$`)

func TestClock_Read(t *testing.T) {
	t.Run("empty before first update", func(t *testing.T) {
		// Given
		clock := wallclock.New()

		// When
		actual := clock.Read()

		// Then
		assert.Equal(t, "", actual)
	})

	t.Run("returns known time after update", func(t *testing.T) {
		// Given
		clock := wallclock.New(
			wallclock.WithTimeSource(seededclock.New(wallclocktest.KnownTime)),
		)

		// When
		clock.Update()

		// Then
		assert.Equal(t, wallclocktest.KnownTimestamp, clock.Read())
	})

	t.Run("zero pads on a 24-hour clock", func(t *testing.T) {
		// Given
		clock := wallclock.New(
			wallclock.WithTimeSource(seededclock.New(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))),
		)
		clock.Update()
		evening := wallclock.New(
			wallclock.WithTimeSource(seededclock.New(time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC))),
		)
		evening.Update()

		// Then
		assert.Equal(t, "03:04:05 02-01-2024", clock.Read())
		assert.Equal(t, "23:59:59 31-12-2024", evening.Read())
	})

	t.Run("matches timestamp pattern with system time", func(t *testing.T) {
		// Given
		clock := wallclock.New(wallclock.WithTimeSource(systemclock.New()))

		// When
		clock.Update()

		// Then
		assert.Regexp(t, timestampPattern, clock.Read())
	})

	t.Run("repeated reads without update are identical", func(t *testing.T) {
		// Given
		clock := wallclock.New(
			wallclock.WithTimeSource(sequentialclock.New()),
		)
		clock.Update()

		// When
		first := clock.Read()
		second := clock.Read()
		third := clock.Read()

		// Then
		assert.Equal(t, first, second)
		assert.Equal(t, first, third)
	})

	t.Run("update replaces stored value", func(t *testing.T) {
		// Given
		clock := wallclock.New(
			wallclock.WithTimeSource(sequentialclock.New(
				sequentialclock.WithStart(wallclocktest.KnownTime),
			)),
		)
		clock.Update()

		// When
		clock.Update()

		// Then
		assert.Equal(t, "14:03:08 05-06-2024", clock.Read())
	})
}

func TestClock_ConcurrentUpdateAndRead_NeverTorn(t *testing.T) {
	// Given
	const (
		totalUpdates = 500
		totalReaders = 4
	)
	clock := wallclock.New(
		wallclock.WithTimeSource(sequentialclock.New(
			sequentialclock.WithStart(wallclocktest.KnownTime),
		)),
	)
	written := make(map[string]struct{}, totalUpdates)
	expected := sequentialclock.New(sequentialclock.WithStart(wallclocktest.KnownTime))
	for i := 0; i < totalUpdates; i++ {
		written[expected.Now().Format(wallclock.TimestampLayout)] = struct{}{}
	}

	var wg sync.WaitGroup
	done := make(chan struct{})
	observed := make(chan string, 1024)

	// When
	for i := 0; i < totalReaders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				if value := clock.Read(); value != "" {
					select {
					case observed <- value:
					default:
					}
				}
			}
		}()
	}

	for i := 0; i < totalUpdates; i++ {
		clock.Update()
	}
	close(done)
	wg.Wait()
	close(observed)

	// Then
	for value := range observed {
		_, ok := written[value]
		require.True(t, ok, "read value %q was never written", value)
	}
	assert.Equal(t, "14:11:26 05-06-2024", clock.Read())
}

func ExampleClock_Read() {
	// Given
	clock := wallclock.New(
		wallclock.WithTimeSource(seededclock.New(
			time.Date(2024, 6, 5, 14, 3, 7, 0, time.UTC),
		)),
	)

	// When
	clock.Update()
	fmt.Println(clock.Read())

	// Output:
	// 14:03:07 05-06-2024
}
