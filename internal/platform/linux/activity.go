//go:build linux

package linux

import (
	"errors"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
)

// screenSaverTarget is a session bus service exposing SimulateUserActivity.
type screenSaverTarget struct {
	dest   string
	path   dbus.ObjectPath
	method string
}

var screenSaverTargets = []screenSaverTarget{
	{"org.freedesktop.ScreenSaver", "/org/freedesktop/ScreenSaver", "org.freedesktop.ScreenSaver.SimulateUserActivity"},
	{"org.gnome.ScreenSaver", "/org/gnome/ScreenSaver", "org.gnome.ScreenSaver.SimulateUserActivity"},
}

// DBusActivity calls SimulateUserActivity on the session screensaver
// services. The bus connection is opened on first use.
type DBusActivity struct {
	mu      sync.Mutex
	conn    *dbus.Conn
	connect func() (*dbus.Conn, error)
}

// NewDBusActivity returns a notifier for the current session bus.
func NewDBusActivity() *DBusActivity {
	return &DBusActivity{connect: func() (*dbus.Conn, error) {
		return dbus.ConnectSessionBus()
	}}
}

// SimulateUserActivity succeeds when at least one screensaver service
// accepted the call.
func (d *DBusActivity) SimulateUserActivity() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.conn == nil {
		conn, err := d.connect()
		if err != nil {
			return fmt.Errorf("failed to connect to session bus: %w", err)
		}
		d.conn = conn
	}

	var errs []error
	for _, t := range screenSaverTargets {
		call := d.conn.Object(t.dest, t.path).Call(t.method, 0)
		if call.Err == nil {
			return nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", t.dest, call.Err))
	}
	return fmt.Errorf("SimulateUserActivity rejected: %w", errors.Join(errs...))
}

// Close closes the bus connection if one was opened.
func (d *DBusActivity) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.conn == nil {
		return nil
	}
	err := d.conn.Close()
	d.conn = nil
	return err
}
