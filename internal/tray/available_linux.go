package tray

import "os"

// Available reports whether a tray host can be reached. Linux trays talk to
// a StatusNotifier host over the session bus.
func Available() bool {
	return os.Getenv("DBUS_SESSION_BUS_ADDRESS") != "" &&
		(os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != "")
}
