//go:build linux

package platform

import "github.com/stigoleg/mouse-jiggler/internal/platform/linux"

// NewMover returns the first working Linux backend: uinput, ydotool or
// xdotool, with DBus user-activity calls for zero moves.
func NewMover() (Mover, error) {
	m, err := linux.NewMover()
	if err != nil {
		return nil, err
	}
	return m, nil
}
