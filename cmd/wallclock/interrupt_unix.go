//go:build unix

package main

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// forwardInterrupts wakes both workers from their sleep on every SIGUSR1.
func forwardInterrupts(target interrupter) func() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, unix.SIGUSR1)

	go func() {
		for sig := range signals {
			target.Interrupt("sleep interrupted by " + sig.String())
		}
	}()

	return func() {
		signal.Stop(signals)
		close(signals)
	}
}
