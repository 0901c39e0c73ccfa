package ui

import (
	"fmt"
	"strings"

	"github.com/stigoleg/mouse-jiggler/internal/jiggle"
)

// View renders the current state of the model to a string.
func View(m Model) string {
	switch m.State {
	case stateHelp:
		return helpView(m)
	case stateTray:
		return trayView(m)
	}
	return mainView(m)
}

func mainView(m Model) string {
	var b strings.Builder
	s := m.Controller.Settings()

	b.WriteString(Current.Title.Render("Mouse Jiggler"))
	b.WriteString("\n\n")

	b.WriteString(statusLine(m))
	b.WriteString("\n")
	b.WriteString(Current.Help.Render(m.Controller.NotificationText()))
	b.WriteString("\n")
	b.WriteString(Current.Help.Render(jigglesLabel(m.Jiggles)))
	b.WriteString("\n")

	if m.ShowSettings {
		b.WriteString("\n")
		b.WriteString(Current.Panel.Render(settingsPanel(m, s)))
		b.WriteString("\n")
	}

	b.WriteString(problemLines(m))

	b.WriteString("\n\n" + m.help.View(m.keys.ForState(m.State, m.ShowSettings)))
	return b.String()
}

func statusLine(m Model) string {
	if !m.Controller.Enabled() {
		return Current.InactiveStatus.Render("○ Not jiggling")
	}
	line := Current.ActiveStatus.Render("● Jiggling")
	if m.Controller.Settings().RandomTimer && m.LastRandom > 0 {
		line += Current.Interval.Render(secondsLabel(int(m.LastRandom.Seconds())))
	}
	return line
}

func settingsPanel(m Model, s jiggle.Settings) string {
	var b strings.Builder

	percent := float64(s.PeriodSeconds-jiggle.MinPeriod) / float64(jiggle.MaxPeriod-jiggle.MinPeriod)
	b.WriteString(Current.Label.Render("Jiggle period"))
	b.WriteString(m.slider.ViewAs(percent))
	b.WriteString(" " + Current.Interval.Render(secondsLabel(s.PeriodSeconds)))
	b.WriteString("\n")

	b.WriteString(checkbox("Zen mode", s.ZenMode))
	b.WriteString("\n")
	b.WriteString(checkbox("Random timer", s.RandomTimer))
	b.WriteString("\n")
	b.WriteString(checkbox("Minimize on startup", s.MinimizeOnStartup))
	return b.String()
}

func checkbox(label string, on bool) string {
	if on {
		return Current.SelectedItem.Render("[x] " + label)
	}
	return Current.DisabledItem.Render("[ ] " + label)
}

// problemLines renders the failing flag, the last jiggle warning and the
// last error, each on its own line.
func problemLines(m Model) string {
	var b strings.Builder
	if m.Failing && m.Controller.Enabled() {
		b.WriteString("\n" + Current.Error.Render("⚠ "+failingText))
	}
	if m.Warning != "" {
		b.WriteString("\n" + Current.Warning.Render(m.Warning))
	}
	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage))
	}
	return b.String()
}

func jigglesLabel(n int) string {
	if n == 1 {
		return "1 jiggle"
	}
	return fmt.Sprintf("%d jiggles", n)
}

func secondsLabel(n int) string {
	return fmt.Sprintf("%d s", n)
}

func trayView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Mouse Jiggler"))
	if m.Controller.Enabled() {
		b.WriteString(Current.ActiveStatus.Render("●"))
	} else {
		b.WriteString(Current.InactiveStatus.Render("○"))
	}
	b.WriteString(Current.Help.Render(m.Controller.NotificationText()))
	b.WriteString(Current.Help.Render(jigglesLabel(m.Jiggles)))
	b.WriteString(problemLines(m))
	b.WriteString("\n" + m.help.View(m.keys.ForState(stateTray, false)))
	return b.String()
}

func helpView(m Model) string {
	version := m.Version
	if version == "" {
		version = "dev"
	}

	help := `Mouse Jiggler ` + version + `

Jiggles the mouse pointer periodically so the computer does not
sleep or lock, and chat clients do not mark you as away.

Usage:
  jiggler [flags]

Flags:
  -j, --jiggle            Start with jiggling enabled
  -m, --minimized         Start minimized to the tray view
  -z, --zen               Zen mode: signal activity without moving the pointer
  -r, --random            Random timer: wait a random 1..period seconds
  -s, --seconds string    Jiggle period in seconds, 1 to 60 (e.g. "30" or "45s")
      --settings string   Settings file path
      --log-file string   Log file path
      --no-tray           Do not show a system tray icon
      --debug             Enable debug logging
  -v, --version           Show version information

Keys:
  space/j   : Toggle jiggling
  s         : Show or hide settings
  ←/h, →/l  : Change the period (settings open)
  z, r, m   : Zen, random timer, minimize on start (settings open)
  t / enter : Minimize to tray / restore
  q         : Exit`

	return Current.Help.Render(help) + "\n\n" + m.help.View(m.keys.ForState(stateHelp, false))
}
