//go:build !unix

package main

func forwardInterrupts(interrupter) func() {
	return func() {}
}
