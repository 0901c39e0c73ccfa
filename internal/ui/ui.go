package ui

import (
	"github.com/stigoleg/mouse-jiggler/internal/jiggle"
	"github.com/stigoleg/mouse-jiggler/internal/keepalive"
)

// Keeper injects the cursor movements. *keepalive.Keeper satisfies it.
type Keeper interface {
	Start() error
	Stop() error
	IsRunning() bool
	Jiggle(delta int) error
	GetSimulationHealth() keepalive.SimulationHealth
}

// SettingsSaver persists settings after every change.
type SettingsSaver interface {
	Save(jiggle.Settings) error
}

// StatusSink receives the jiggling flag and notification text whenever they
// may have changed. The tray implements it.
type StatusSink interface {
	SetStatus(jiggling bool, text string)
}

// Messages sent by the tray through tea.Program.Send.
type (
	// TrayToggleMsg flips jiggling on or off.
	TrayToggleMsg struct{}
	// TrayRestoreMsg brings the full view back from the tray view.
	TrayRestoreMsg struct{}
	// TrayExitMsg quits the program.
	TrayExitMsg struct{}
)
