//go:build linux

package linux

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/stigoleg/mouse-jiggler/internal/logging"
)

// MouseMover defines an interface for executing relative mouse movements.
type MouseMover interface {
	Move(dx, dy int) error
	Name() string
}

// ActivityNotifier resets the session idle timer without moving the pointer.
type ActivityNotifier interface {
	SimulateUserActivity() error
	Close() error
}

// UinputMover implements MouseMover for uinput.
type UinputMover struct {
	Sim *UinputSimulator
}

func (u *UinputMover) Move(dx, dy int) error {
	return u.Sim.Move(int32(dx), int32(dy))
}

func (u *UinputMover) Name() string {
	return "uinput"
}

// CommandMover implements MouseMover for command-line tools.
type CommandMover struct {
	Cmd  string
	Args []string
}

func (c *CommandMover) Move(dx, dy int) error {
	args := make([]string, 0, len(c.Args)+2)
	args = append(args, c.Args...)
	args = append(args, strconv.Itoa(dx), strconv.Itoa(dy))
	if out, err := runCommand(c.Cmd, args...); err != nil {
		return fmt.Errorf("%s: %w (output: %q)", c.Cmd, err, out)
	}
	return nil
}

func (c *CommandMover) Name() string {
	return c.Cmd
}

// Mover tries its mouse movers in order and routes zero moves to the
// activity notifier, since the kernel drops zero relative events.
type Mover struct {
	movers   []MouseMover
	activity ActivityNotifier
	uinput   *UinputSimulator
	log      zerolog.Logger
}

// NewMover detects the session and builds the mover chain.
func NewMover() (*Mover, error) {
	logger := logging.For("linux")
	caps := DetectCapabilities()
	logger.Info().
		Str("desktop", caps.DesktopEnvironment).
		Str("display_server", caps.DisplayServer).
		Bool("xdotool", caps.XdotoolAvailable).
		Bool("ydotool", caps.YdotoolAvailable).
		Msg("detected session")

	m := &Mover{
		activity: NewDBusActivity(),
		log:      logger,
	}

	if ok, msg := CheckUinputPermissions(); ok {
		sim := &UinputSimulator{}
		if err := sim.Setup(); err != nil {
			logger.Warn().Err(err).Msg("uinput setup failed")
		} else {
			m.uinput = sim
			m.movers = append(m.movers, &UinputMover{Sim: sim})
		}
	} else {
		logger.Info().Msg(msg)
	}

	m.movers = append(m.movers, commandMovers(caps)...)

	if len(m.movers) == 0 {
		logger.Warn().Msg("no pointer mover available; jiggles fall back to DBus user-activity calls. " +
			"Install ydotool (Wayland) or xdotool (X11), or grant access to /dev/uinput")
	} else {
		logger.Info().Str("movers", m.Name()).Msg("pointer movers ready")
	}
	return m, nil
}

// commandMovers returns the external tools usable in this session.
func commandMovers(caps Capabilities) []MouseMover {
	var movers []MouseMover
	if caps.YdotoolAvailable {
		movers = append(movers, &CommandMover{Cmd: "ydotool", Args: []string{"mousemove", "--"}})
	}
	if caps.XdotoolAvailable && caps.DisplayServer == DisplayServerX11 {
		movers = append(movers, &CommandMover{Cmd: "xdotool", Args: []string{"mousemove_relative", "--"}})
	}
	return movers
}

// Move moves the pointer with the first mover that succeeds. A zero move, or
// a move with no mover available, becomes a DBus user-activity call.
func (m *Mover) Move(dx, dy int) error {
	if (dx == 0 && dy == 0) || len(m.movers) == 0 {
		if err := m.activity.SimulateUserActivity(); err != nil {
			return fmt.Errorf("linux: %w", err)
		}
		return nil
	}

	var errs []error
	for _, mv := range m.movers {
		err := mv.Move(dx, dy)
		if err == nil {
			return nil
		}
		m.log.Debug().Err(err).Str("mover", mv.Name()).Msg("move failed")
		errs = append(errs, fmt.Errorf("%s: %w", mv.Name(), err))
	}
	return fmt.Errorf("linux: all pointer movers failed: %w", errors.Join(errs...))
}

// Name lists the movers in the chain.
func (m *Mover) Name() string {
	if len(m.movers) == 0 {
		return "dbus"
	}
	names := make([]string, 0, len(m.movers))
	for _, mv := range m.movers {
		names = append(names, mv.Name())
	}
	return strings.Join(names, "+")
}

// Close releases the uinput device and the bus connection.
func (m *Mover) Close() error {
	if m.uinput != nil {
		m.uinput.Close()
		m.uinput = nil
		m.log.Info().Msg("uinput device closed")
	}
	if m.activity != nil {
		return m.activity.Close()
	}
	return nil
}
