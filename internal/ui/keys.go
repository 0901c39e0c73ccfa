package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines key bindings for the views and the settings panel.
type KeyMap struct {
	// Common
	Quit       key.Binding
	ToggleHelp key.Binding

	// Main view
	Toggle   key.Binding
	Settings key.Binding
	Tray     key.Binding

	// Settings panel
	Decrease key.Binding
	Increase key.Binding
	Zen      key.Binding
	Random   key.Binding
	Minimize key.Binding

	// Tray and help views
	Restore key.Binding
	Back    key.Binding
}

// DefaultKeys returns the default key bindings for the application.
func DefaultKeys() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "exit"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "about"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "j"),
			key.WithHelp("space/j", "jiggle on/off"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Tray: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "to tray"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "period -1"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "period +1"),
		),
		Zen: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "zen"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random timer"),
		),
		Minimize: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "minimize on start"),
		),
		Restore: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "restore"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "?"),
			key.WithHelp("esc", "back"),
		),
	}
}

// NewHelpModel returns a configured help model.
func NewHelpModel() help.Model {
	h := help.New()
	h.ShortSeparator = " • "
	return h
}

// stateKeyMap adapts bindings to the current view for contextual help.
type stateKeyMap struct {
	keys     KeyMap
	state    state
	settings bool
}

// ForState returns a contextual key map implementing help.KeyMap for the
// given view. settings reports whether the settings panel is open.
func (k KeyMap) ForState(s state, settings bool) help.KeyMap {
	return stateKeyMap{keys: k, state: s, settings: settings}
}

// ShortHelp implements help.KeyMap for contextual help (compact).
func (s stateKeyMap) ShortHelp() []key.Binding {
	switch s.state {
	case stateTray:
		return []key.Binding{s.keys.Restore, s.keys.Toggle, s.keys.Quit}
	case stateHelp:
		return []key.Binding{s.keys.Back, s.keys.Quit}
	}
	if s.settings {
		return []key.Binding{s.keys.Toggle, s.keys.Decrease, s.keys.Increase, s.keys.Zen, s.keys.Random, s.keys.Minimize, s.keys.Settings, s.keys.Quit}
	}
	return []key.Binding{s.keys.Toggle, s.keys.Settings, s.keys.Tray, s.keys.ToggleHelp, s.keys.Quit}
}

// FullHelp implements help.KeyMap for contextual help (expanded).
func (s stateKeyMap) FullHelp() [][]key.Binding {
	switch s.state {
	case stateTray:
		return [][]key.Binding{{s.keys.Restore, s.keys.Toggle}, {s.keys.Quit}}
	case stateHelp:
		return [][]key.Binding{{s.keys.Back}, {s.keys.Quit}}
	}
	return [][]key.Binding{
		{s.keys.Toggle, s.keys.Settings, s.keys.Tray},
		{s.keys.Decrease, s.keys.Increase},
		{s.keys.Zen, s.keys.Random, s.keys.Minimize},
		{s.keys.ToggleHelp, s.keys.Quit},
	}
}
