package schedhint

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

const highNice = -5

func apply(priority Priority) error {
	if priority != PriorityHigh {
		return fmt.Errorf("unknown priority: %d", priority)
	}

	runtime.LockOSThread()

	// On Linux PRIO_PROCESS with a thread id adjusts only that thread.
	err := unix.Setpriority(unix.PRIO_PROCESS, unix.Gettid(), highNice)
	if err != nil {
		return fmt.Errorf("unable to set thread priority: %w", err)
	}

	return nil
}
