package ui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/mouse-jiggler/internal/keepalive"
	"github.com/stigoleg/mouse-jiggler/internal/logging"
)

// jiggleTickMsg fires when the jiggle timer elapses.
type jiggleTickMsg struct {
	seq int
}

// jiggledMsg reports the outcome of a cursor injection.
type jiggledMsg struct {
	delta int
	err   error
}

// tickAfter schedules fn after d. Replaced in tests.
var tickAfter = func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return tea.Tick(d, fn)
}

func tick(seq int, d time.Duration) tea.Cmd {
	return tickAfter(d, func(time.Time) tea.Msg {
		return jiggleTickMsg{seq: seq}
	})
}

func jiggleCmd(k Keeper, delta int) tea.Cmd {
	if k == nil {
		return nil
	}
	return func() tea.Msg {
		return jiggledMsg{delta: delta, err: k.Jiggle(delta)}
	}
}

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case jiggleTickMsg:
		if msg.seq != m.seq || !m.Controller.Enabled() {
			return m, nil
		}
		step := m.Controller.Tick()
		if step.Randomized {
			m.LastRandom = step.Next
		}
		return m, tea.Batch(jiggleCmd(m.Keeper, step.Delta), tick(m.seq, step.Next))

	case jiggledMsg:
		if msg.err != nil {
			if errors.Is(msg.err, keepalive.ErrNotRunning) {
				return m, nil
			}
			l := logging.For("ui")
			l.Warn().Err(msg.err).Int("delta", msg.delta).Msg("jiggle failed")
			m.Warning = "Jiggle failed: " + msg.err.Error()
			m.refreshHealth()
			return m, nil
		}
		m.Jiggles++
		m.Warning = ""
		m.refreshHealth()
		return m, nil

	case TrayToggleMsg:
		return m.toggle()

	case TrayRestoreMsg:
		m.State = stateMain
		return m, nil

	case TrayExitMsg:
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return updateKey(msg, m)
	}

	return m, nil
}

func updateKey(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch m.State {
	case stateHelp:
		if key.Matches(msg, m.keys.Back) {
			m.State = stateMain
		}
		return m, nil

	case stateTray:
		switch {
		case key.Matches(msg, m.keys.Restore):
			m.State = stateMain
		case key.Matches(msg, m.keys.Toggle):
			return m.toggle()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		return m.toggle()
	case key.Matches(msg, m.keys.Settings):
		m.ShowSettings = !m.ShowSettings
	case key.Matches(msg, m.keys.Tray):
		m.State = stateTray
	case key.Matches(msg, m.keys.ToggleHelp):
		m.State = stateHelp
	case m.ShowSettings:
		return updateSettings(msg, m)
	}
	return m, nil
}

func updateSettings(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	s := m.Controller.Settings()
	switch {
	case key.Matches(msg, m.keys.Decrease):
		return m.setPeriod(s.PeriodSeconds - 1)
	case key.Matches(msg, m.keys.Increase):
		return m.setPeriod(s.PeriodSeconds + 1)
	case key.Matches(msg, m.keys.Zen):
		m.Controller.SetZenMode(!s.ZenMode)
		m.persist()
	case key.Matches(msg, m.keys.Random):
		m.Controller.SetRandomTimer(!s.RandomTimer)
		if !m.Controller.Settings().RandomTimer {
			m.LastRandom = 0
		}
		m.persist()
		cmd := m.rearm()
		return m, cmd
	case key.Matches(msg, m.keys.Minimize):
		m.Controller.SetMinimizeOnStartup(!s.MinimizeOnStartup)
		m.persist()
	}
	return m, nil
}

func (m Model) toggle() (Model, tea.Cmd) {
	if m.Controller.Enabled() {
		m.Controller.SetEnabled(false)
		m.seq++
		m.stopKeeper()
		m.Warning = ""
		m.Failing = false
		m.persist()
		return m, nil
	}

	if err := m.startKeeper(); err != nil {
		l := logging.For("ui")
		l.Error().Err(err).Msg("failed to start keeper")
		m.ErrorMessage = "Cannot jiggle: " + err.Error()
		return m, nil
	}
	m.Controller.SetEnabled(true)
	m.persist()
	cmd := m.rearm()
	return m, cmd
}

func (m Model) setPeriod(seconds int) (Model, tea.Cmd) {
	before := m.Controller.Settings().PeriodSeconds
	if m.Controller.SetPeriod(seconds) == before {
		return m, nil
	}
	m.persist()
	cmd := m.rearm()
	return m, cmd
}

// rearm invalidates the live timer and, when jiggling, starts a new one with
// the controller's current interval.
func (m *Model) rearm() tea.Cmd {
	m.seq++
	if !m.Controller.Enabled() {
		return nil
	}
	return tick(m.seq, m.Controller.Interval())
}
