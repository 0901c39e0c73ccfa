//go:build linux

// Package linux provides the Linux pointer injection backends.
package linux

import (
	"os"
	"strings"
)

// Display server types.
const (
	DisplayServerWayland = "wayland"
	DisplayServerX11     = "x11"
	DisplayServerUnknown = "unknown"
)

// Desktop environment types.
const (
	DesktopCosmic  = "cosmic"
	DesktopGNOME   = "gnome"
	DesktopKDE     = "kde"
	DesktopXFCE    = "xfce"
	DesktopMATE    = "mate"
	DesktopUnknown = "unknown"
)

// Capabilities tracks available tools and session information.
type Capabilities struct {
	XdotoolAvailable   bool
	YdotoolAvailable   bool
	DisplayServer      string
	DesktopEnvironment string
}

// DetectCapabilities detects available tools and session type.
func DetectCapabilities() Capabilities {
	return Capabilities{
		XdotoolAvailable:   hasCommand("xdotool"),
		YdotoolAvailable:   hasCommand("ydotool"),
		DisplayServer:      DetectDisplayServer(),
		DesktopEnvironment: DetectDesktopEnvironment(),
	}
}

// DetectDesktopEnvironment detects the current desktop environment.
func DetectDesktopEnvironment() string {
	xdgDesktop := strings.ToLower(os.Getenv("XDG_CURRENT_DESKTOP"))
	desktopSession := strings.ToLower(os.Getenv("DESKTOP_SESSION"))

	has := func(names ...string) bool {
		for _, n := range names {
			if strings.Contains(xdgDesktop, n) || strings.Contains(desktopSession, n) {
				return true
			}
		}
		return false
	}

	switch {
	case has(DesktopCosmic, "pop"):
		return DesktopCosmic
	case has(DesktopGNOME):
		return DesktopGNOME
	case has(DesktopKDE, "plasma"):
		return DesktopKDE
	case has(DesktopXFCE):
		return DesktopXFCE
	case has(DesktopMATE):
		return DesktopMATE
	}
	return DesktopUnknown
}

// DetectDisplayServer detects whether running on Wayland or X11.
func DetectDisplayServer() string {
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return DisplayServerWayland
	}
	if os.Getenv("XDG_SESSION_TYPE") == DisplayServerWayland {
		return DisplayServerWayland
	}
	if os.Getenv("DISPLAY") != "" {
		return DisplayServerX11
	}
	if os.Getenv("XDG_SESSION_TYPE") == DisplayServerX11 {
		return DisplayServerX11
	}
	return DisplayServerUnknown
}
