package ui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/mouse-jiggler/internal/jiggle"
	"github.com/stigoleg/mouse-jiggler/internal/keepalive"
	"github.com/stigoleg/mouse-jiggler/internal/logging"
)

const (
	sliderWidth = 30
	failingText = "Pointer injection is failing."
)

// Options configures a new Model.
type Options struct {
	Settings jiggle.Settings
	Keeper   Keeper
	Saver    SettingsSaver
	Sink     StatusSink
	// Rand drives the random timer. Nil uses a time-seeded source.
	Rand    *rand.Rand
	Version string
}

// Model holds the UI state. The controller is owned by the event loop; the
// keeper is only reached through commands.
type Model struct {
	State        state
	ShowSettings bool
	Controller   *jiggle.Controller
	Keeper       Keeper
	Saver        SettingsSaver
	Sink         StatusSink
	Version      string

	// LastRandom is the most recent random interval, shown next to the toggle.
	LastRandom time.Duration
	// Jiggles counts successful jiggles since the program started.
	Jiggles int
	// Failing is set while the keeper reports that injection keeps failing.
	Failing      bool
	Warning      string
	ErrorMessage string

	// seq identifies the live timer. Ticks carrying another value are stale.
	seq    int
	keys   KeyMap
	help   help.Model
	slider progress.Model
}

// New builds the model from loaded settings. Minimize on startup opens the
// tray view, and enabled settings start the keeper right away.
func New(opts Options) Model {
	m := Model{
		State:      stateMain,
		Controller: jiggle.NewController(opts.Settings, opts.Rand),
		Keeper:     opts.Keeper,
		Saver:      opts.Saver,
		Sink:       opts.Sink,
		Version:    opts.Version,
		keys:       DefaultKeys(),
		help:       NewHelpModel(),
		slider: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(sliderWidth),
			progress.WithoutPercentage(),
		),
	}

	if m.Controller.Settings().MinimizeOnStartup {
		m.State = stateTray
	}

	if m.Controller.Enabled() {
		if err := m.startKeeper(); err != nil {
			m.Controller.SetEnabled(false)
			m.ErrorMessage = "Cannot jiggle: " + err.Error()
		} else {
			m.seq++
		}
	}

	m.publish()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if m.Controller.Enabled() {
		return tick(m.seq, m.Controller.Interval())
	}
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := Update(msg, m)
	return newModel, cmd
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}

// Settings returns the settings as currently shown.
func (m Model) Settings() jiggle.Settings {
	return m.Controller.Settings()
}

func (m *Model) startKeeper() error {
	if m.Keeper == nil || m.Keeper.IsRunning() {
		return nil
	}
	return m.Keeper.Start()
}

func (m *Model) stopKeeper() {
	if m.Keeper == nil || !m.Keeper.IsRunning() {
		return
	}
	if err := m.Keeper.Stop(); err != nil {
		l := logging.For("ui")
		l.Warn().Err(err).Msg("failed to stop keeper")
	}
}

// persist saves the settings and refreshes the tray. Save failures are
// reported in the error line only.
func (m *Model) persist() {
	m.publish()
	if m.Saver == nil {
		return
	}
	if err := m.Saver.Save(m.Controller.Settings()); err != nil {
		l := logging.For("ui")
		l.Error().Err(err).Msg("failed to save settings")
		m.ErrorMessage = "Could not save settings: " + err.Error()
		return
	}
	m.ErrorMessage = ""
}

func (m *Model) publish() {
	if m.Sink != nil {
		m.Sink.SetStatus(m.Controller.Enabled(), m.statusText())
	}
}

// statusText is the notification text, flagged while injection fails.
func (m Model) statusText() string {
	text := m.Controller.NotificationText()
	if m.Failing && m.Controller.Enabled() {
		text += " " + failingText
	}
	return text
}

// refreshHealth reads the keeper health after a jiggle and republishes the
// status when it flips.
func (m *Model) refreshHealth() {
	if m.Keeper == nil {
		return
	}
	failing := m.Keeper.GetSimulationHealth() == keepalive.SimulationHealthFailed
	if failing == m.Failing {
		return
	}
	m.Failing = failing
	m.publish()
}
