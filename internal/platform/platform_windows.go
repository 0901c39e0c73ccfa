//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	inputMouse      = 0
	mouseEventFMove = 0x0001
)

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

// mouseInput mirrors MOUSEINPUT.
type mouseInput struct {
	Dx        int32
	Dy        int32
	MouseData uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// input mirrors INPUT for the mouse variant of its union, which is the
// largest member.
type input struct {
	Type uint32
	Mi   mouseInput
}

// windowsMover injects relative mouse input with SendInput. A zero move is
// still delivered as an input event, which resets the idle timer.
type windowsMover struct{}

func (m *windowsMover) Move(dx, dy int) error {
	in := input{
		Type: inputMouse,
		Mi: mouseInput{
			Dx:    int32(dx),
			Dy:    int32(dy),
			Flags: mouseEventFMove,
		},
	}
	n, _, err := procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), unsafe.Sizeof(in))
	if n != 1 {
		return fmt.Errorf("windows: SendInput failed: %w", err)
	}
	return nil
}

func (m *windowsMover) Name() string {
	return "sendinput"
}

func (m *windowsMover) Close() error {
	return nil
}

// NewMover returns the SendInput based mover.
func NewMover() (Mover, error) {
	if err := procSendInput.Find(); err != nil {
		return nil, fmt.Errorf("windows: SendInput unavailable: %w", err)
	}
	return &windowsMover{}, nil
}
