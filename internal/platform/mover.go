// Package platform injects synthetic pointer input on the host OS.
package platform

import "errors"

// ErrUnsupported is returned by NewMover on platforms without an input
// injection backend.
var ErrUnsupported = errors.New("unsupported platform")

// Mover moves the pointer relative to its current position.
//
// Move(0, 0) must still register as user input (resetting the system idle
// timer) without displacing the pointer.
type Mover interface {
	Move(dx, dy int) error
	Name() string
	Close() error
}
