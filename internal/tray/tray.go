// Package tray shows the notification-area icon and forwards its menu clicks
// to the TUI program.
package tray

import (
	"sync"

	"fyne.io/systray"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/mouse-jiggler/internal/logging"
	"github.com/stigoleg/mouse-jiggler/internal/ui"
)

const title = "Mouse Jiggler"

// Sender delivers messages to the TUI. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

type action int

const (
	actionToggle action = iota
	actionShow
	actionExit
)

// Tray owns the systray icon and menu. It implements ui.StatusSink.
type Tray struct {
	mu       sync.Mutex
	sender   Sender
	ready    bool
	jiggling bool
	text     string

	mJiggling *systray.MenuItem
	mShow     *systray.MenuItem
	mExit     *systray.MenuItem

	done chan struct{}
}

var _ ui.StatusSink = (*Tray)(nil)

// New returns a tray that is not yet shown.
func New() *Tray {
	return &Tray{
		text: "Not jiggling the mouse.",
		done: make(chan struct{}),
	}
}

// SetSender sets where menu clicks are delivered.
func (t *Tray) SetSender(s Sender) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sender = s
}

// SetStatus records the jiggling state and updates the icon, tooltip and
// checkbox once the tray is up.
func (t *Tray) SetStatus(jiggling bool, text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.jiggling = jiggling
	t.text = text
	if t.ready {
		t.updateUI()
	}
}

// Run shows the tray and blocks until Quit. It must be called from the main
// goroutine. onStart runs once the tray is ready.
func (t *Tray) Run(onStart func()) {
	systray.Run(func() {
		t.onReady()
		if onStart != nil {
			onStart()
		}
	}, t.onExit)
}

// Quit removes the icon and makes Run return.
func (t *Tray) Quit() {
	systray.Quit()
}

func (t *Tray) onReady() {
	systray.SetTitle("")
	systray.SetTooltip(title)

	t.mu.Lock()
	t.mJiggling = systray.AddMenuItemCheckbox("Jiggling?", "Toggle jiggling", t.jiggling)
	t.mShow = systray.AddMenuItem("Show "+title, "Restore the full view")
	systray.AddSeparator()
	t.mExit = systray.AddMenuItem("Exit", "Exit "+title)
	t.ready = true
	t.updateUI()
	t.mu.Unlock()

	l := logging.For("tray")
	l.Debug().Msg("tray ready")

	go t.handleMenuClicks()
}

func (t *Tray) onExit() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.ready {
		t.ready = false
		close(t.done)
	}
}

// updateUI must be called with t.mu held.
func (t *Tray) updateUI() {
	systray.SetIcon(Icon(t.jiggling))
	systray.SetTooltip(t.text)
	if t.jiggling {
		t.mJiggling.Check()
	} else {
		t.mJiggling.Uncheck()
	}
}

func (t *Tray) handleMenuClicks() {
	for {
		select {
		case <-t.mJiggling.ClickedCh:
			t.forward(actionToggle)
		case <-t.mShow.ClickedCh:
			t.forward(actionShow)
		case <-t.mExit.ClickedCh:
			t.forward(actionExit)
			return
		case <-t.done:
			return
		}
	}
}

// forward translates a menu action into a UI message.
func (t *Tray) forward(a action) {
	t.mu.Lock()
	s := t.sender
	t.mu.Unlock()
	if s == nil {
		return
	}

	switch a {
	case actionToggle:
		s.Send(ui.TrayToggleMsg{})
	case actionShow:
		s.Send(ui.TrayRestoreMsg{})
	case actionExit:
		s.Send(ui.TrayExitMsg{})
	}
}
