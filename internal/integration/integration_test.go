package integration

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/mouse-jiggler/internal/config"
	"github.com/stigoleg/mouse-jiggler/internal/jiggle"
	"github.com/stigoleg/mouse-jiggler/internal/keepalive"
	"github.com/stigoleg/mouse-jiggler/internal/platform"
	"github.com/stigoleg/mouse-jiggler/internal/ui"
)

type countingMover struct {
	mu     sync.Mutex
	moves  [][2]int
	closed bool
}

func (c *countingMover) Move(dx, dy int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.moves = append(c.moves, [2]int{dx, dy})
	return nil
}

func (c *countingMover) Name() string { return "counting" }

func (c *countingMover) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *countingMover) snapshot() [][2]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][2]int(nil), c.moves...)
}

// step feeds msg to the model and runs the jiggle command it schedules,
// leaving the rearmed timer unrun.
func step(t *testing.T, m ui.Model, msg tea.Msg) ui.Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(ui.Model)
	if cmd == nil {
		return m
	}
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok, "tick schedules a jiggle and a new timer")
	require.Len(t, batch, 2)

	next, _ = m.Update(batch[0]())
	return next.(ui.Model)
}

// TestJiggleSession drives the settings store, flags, UI model and keeper
// together with a recording mover in place of the OS.
func TestJiggleSession(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for real timer ticks")
	}

	path := filepath.Join(t.TempDir(), "settings.ini")
	require.NoError(t, config.SaveSettings(jiggle.Settings{PeriodSeconds: 30, ZenMode: true}, path))

	opts, err := config.ParseFlags("test", []string{"--settings", path, "-j", "-s", "1", "--zen=false"})
	require.NoError(t, err)

	store := config.NewSettingsStore(opts.SettingsPath)
	loaded, err := store.Load()
	require.NoError(t, err)
	settings := opts.Apply(loaded)
	require.Equal(t, jiggle.Settings{Enabled: true, PeriodSeconds: 1}, settings)

	mover := &countingMover{}
	keeper := keepalive.New(func() (platform.Mover, error) { return mover, nil })
	cleanup := keepalive.NewCleanupManager(time.Second)
	cleanup.RegisterFunc("keeper", func() error {
		if !keeper.IsRunning() {
			return nil
		}
		return keeper.Stop()
	})

	m := ui.New(ui.Options{Settings: settings, Keeper: keeper, Saver: store})
	require.True(t, keeper.IsRunning(), "enabled settings start jiggling right away")

	onDisk, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 30, onDisk.PeriodSeconds, "flag overrides are not saved until something changes")

	initCmd := m.Init()
	require.NotNil(t, initCmd)
	start := time.Now()
	tickMsg := initCmd()
	assert.GreaterOrEqual(t, time.Since(start), 900*time.Millisecond)

	m = step(t, m, tickMsg)
	assert.Equal(t, [][2]int{{jiggle.Distance, 0}}, mover.snapshot())
	assert.Equal(t, int64(1), keeper.Jiggles())
	assert.Equal(t, 1, m.Jiggles)

	m = step(t, m, ui.TrayToggleMsg{})
	assert.False(t, keeper.IsRunning())
	assert.True(t, mover.closed)

	// The timer that was pending when jiggling stopped must not move the pointer.
	step(t, m, tickMsg)
	assert.Len(t, mover.snapshot(), 1)

	onDisk, err = config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, jiggle.Settings{PeriodSeconds: 1}, onDisk)

	assert.Empty(t, cleanup.Execute())
}

func TestCleanupStopsRunningKeeper(t *testing.T) {
	mover := &countingMover{}
	keeper := keepalive.New(func() (platform.Mover, error) { return mover, nil })
	require.NoError(t, keeper.Start())

	cleanup := keepalive.NewCleanupManager(time.Second)
	cleanup.RegisterFunc("keeper", keeper.Stop)

	assert.Empty(t, cleanup.Execute())
	assert.False(t, keeper.IsRunning())
	assert.True(t, mover.closed)
}
