// Package util holds small helpers shared by the command line and the
// platform movers.
package util

import "os/exec"

// HasCommand reports whether name resolves to an executable in PATH.
func HasCommand(name string) bool {
	if name == "" {
		return false
	}
	_, err := exec.LookPath(name)
	return err == nil
}
