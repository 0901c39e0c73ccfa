package tray

import (
	"bytes"
	"image/png"
	"runtime"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/mouse-jiggler/internal/ui"
)

type recordingSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recordingSender) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func TestForward(t *testing.T) {
	tr := New()
	tr.forward(actionToggle) // no sender yet

	s := &recordingSender{}
	tr.SetSender(s)
	tr.forward(actionToggle)
	tr.forward(actionShow)
	tr.forward(actionExit)

	assert.Equal(t, []tea.Msg{ui.TrayToggleMsg{}, ui.TrayRestoreMsg{}, ui.TrayExitMsg{}}, s.msgs)
}

func TestSetStatusBeforeReady(t *testing.T) {
	tr := New()
	tr.SetStatus(true, "Jiggling mouse every 5 s, with Zen.")

	assert.True(t, tr.jiggling)
	assert.Equal(t, "Jiggling mouse every 5 s, with Zen.", tr.text)
	assert.False(t, tr.ready)
}

func TestIcon(t *testing.T) {
	for _, active := range []bool{true, false} {
		data := Icon(active)
		require.NotEmpty(t, data)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, iconSize, img.Bounds().Dx())
		assert.Equal(t, iconSize, img.Bounds().Dy())

		_, _, _, a := img.At(0, 0).RGBA()
		assert.Zero(t, a, "corners are transparent")
		_, _, _, a = img.At(iconSize/2-4, iconSize/2+4).RGBA()
		assert.NotZero(t, a, "body is filled")
	}
	assert.NotEqual(t, Icon(true), Icon(false))
}

func TestAvailableWithoutSession(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("session bus detection is linux only")
	}
	t.Setenv("DBUS_SESSION_BUS_ADDRESS", "")
	assert.False(t, Available())

	t.Setenv("DBUS_SESSION_BUS_ADDRESS", "unix:path=/run/user/1000/bus")
	t.Setenv("DISPLAY", ":0")
	assert.True(t, Available())
}
