//go:build !windows

package main

import (
	"os"
	"syscall"
)

// getSignalsForPlatform lists the signals that quit the program. SIGTSTP is
// caught so the terminal is not left suspended in the alternate screen.
func getSignalsForPlatform() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
		syscall.SIGQUIT,
		syscall.SIGTSTP,
	}
}

func isSuspendSignal(sig os.Signal) bool {
	return sig == syscall.SIGTSTP
}
