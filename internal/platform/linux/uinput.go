//go:build linux

package linux

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// uinput constants.
const (
	uinputDevicePath = "/dev/uinput"
	uinputBusTypeUSB = 0x03
	uinputVendorID   = 0x1234
	uinputProductID  = 0x5678
	uinputDeviceName = "mouse-jiggler"

	// Linux input event types and codes
	evSyn   = 0x00
	evKey   = 0x01
	evRel   = 0x02
	relX    = 0x00
	relY    = 0x01
	btnLeft = 0x110

	// uinput ioctl commands
	uiSetEvbit   = 0x40045564 // _IOW('U', 100, int)
	uiSetKeybit  = 0x40045565 // _IOW('U', 101, int)
	uiSetRelbit  = 0x40045566 // _IOW('U', 102, int)
	uiDevCreate  = 0x5501     // _IO('U', 1)
	uiDevDestroy = 0x5502     // _IO('U', 2)
)

type uinputUserDev struct {
	name [80]byte
	id   struct {
		bustype uint16
		vendor  uint16
		product uint16
		version uint16
	}
	ffEffectsMax uint32
	absmax       [64]int32
	absmin       [64]int32
	absfuzz      [64]int32
	absflat      [64]int32
}

type inputEvent struct {
	time  unix.Timeval
	etype uint16
	code  uint16
	value int32
}

// UinputSimulator is a virtual relative pointer created through the uinput
// kernel interface.
type UinputSimulator struct {
	fd int
}

// Setup opens /dev/uinput and registers the virtual pointer.
func (u *UinputSimulator) Setup() error {
	fd, err := unix.Open(uinputDevicePath, unix.O_WRONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return fmt.Errorf("failed to open uinput device: %w", err)
	}
	u.fd = fd

	if err := u.enableCapabilities(); err != nil {
		u.Close()
		return fmt.Errorf("failed to enable pointer capabilities: %w", err)
	}

	if err := u.createDevice(); err != nil {
		u.Close()
		return fmt.Errorf("failed to create uinput device: %w", err)
	}

	return nil
}

// enableCapabilities declares relative axes plus a left button; without a
// button udev does not tag the device as a mouse and libinput ignores it.
func (u *UinputSimulator) enableCapabilities() error {
	steps := []struct {
		req   uint
		value int
	}{
		{uiSetEvbit, evRel},
		{uiSetRelbit, relX},
		{uiSetRelbit, relY},
		{uiSetEvbit, evKey},
		{uiSetKeybit, btnLeft},
	}
	for _, s := range steps {
		if err := unix.IoctlSetInt(u.fd, s.req, s.value); err != nil {
			return err
		}
	}
	return nil
}

func (u *UinputSimulator) createDevice() error {
	var dev uinputUserDev
	copy(dev.name[:], uinputDeviceName)
	dev.id.bustype = uinputBusTypeUSB
	dev.id.vendor = uinputVendorID
	dev.id.product = uinputProductID

	raw := unsafe.Slice((*byte)(unsafe.Pointer(&dev)), unsafe.Sizeof(dev))
	if _, err := unix.Write(u.fd, raw); err != nil {
		return err
	}
	return unix.IoctlSetInt(u.fd, uiDevCreate, 0)
}

// Move moves the pointer by the specified relative amounts.
func (u *UinputSimulator) Move(dx, dy int32) error {
	if u.fd <= 0 {
		return errors.New("uinput device not set up")
	}
	events := []inputEvent{
		{etype: evRel, code: relX, value: dx},
		{etype: evRel, code: relY, value: dy},
		{etype: evSyn, code: 0, value: 0},
	}
	size := int(unsafe.Sizeof(events[0]))
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&events[0])), size*len(events))
	_, err := unix.Write(u.fd, raw)
	return err
}

// Close destroys the virtual device and releases the file descriptor.
func (u *UinputSimulator) Close() {
	if u.fd <= 0 {
		return
	}
	_ = unix.IoctlSetInt(u.fd, uiDevDestroy, 0)
	_ = unix.Close(u.fd)
	u.fd = 0
}

// CheckUinputPermissions reports whether /dev/uinput can be opened for
// writing, with a hint on how to fix it when it cannot.
func CheckUinputPermissions() (hasAccess bool, errorMessage string) {
	if _, err := os.Stat(uinputDevicePath); os.IsNotExist(err) {
		return false, "uinput device not found: /dev/uinput does not exist. The uinput kernel module may not be loaded. Try: sudo modprobe uinput"
	}

	f, err := os.OpenFile(uinputDevicePath, os.O_WRONLY, 0)
	if err != nil {
		return false, fmt.Sprintf("uinput permission denied: %v\n\nTo fix:\n"+
			"1. Add user to input group: sudo usermod -aG input $USER (then logout/login)\n"+
			"2. Or create udev rule: echo 'KERNEL==\"uinput\", MODE=\"0664\", GROUP=\"input\"' | sudo tee /etc/udev/rules.d/99-uinput.rules", err)
	}
	f.Close()
	return true, ""
}
