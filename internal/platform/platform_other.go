//go:build !darwin && !windows && !linux

package platform

// NewMover reports that this platform has no pointer injection backend.
func NewMover() (Mover, error) {
	return nil, ErrUnsupported
}
