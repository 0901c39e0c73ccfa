//go:build darwin

package platform

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/stigoleg/mouse-jiggler/internal/logging"
	"github.com/stigoleg/mouse-jiggler/internal/util"
)

const (
	permissionWarnEvery = 60 * time.Second

	// scriptExecutionTimeout limits how long we wait for osascript to complete.
	// osascript hangs when Accessibility is misconfigured.
	scriptExecutionTimeout = 3 * time.Second
)

// darwinMover posts CGEvent mouse moves through a JXA script and declares
// user activity with caffeinate for zero moves.
type darwinMover struct {
	log zerolog.Logger

	// last time we warned about Accessibility, unix nanos
	lastPermWarnNS int64
}

func (m *darwinMover) Move(dx, dy int) error {
	if dx == 0 && dy == 0 {
		return m.declareUserActivity()
	}

	out, err := runJXAScript(buildMoveScript(dx, dy))
	if err != nil {
		m.warnAccessibilityOnce(err)
		return fmt.Errorf("darwin: osascript failed: %w (output: %q)", err, string(out))
	}
	return nil
}

// declareUserActivity asserts user activity for one second, which wakes the
// display and resets the idle timer without touching the pointer.
func (m *darwinMover) declareUserActivity() error {
	out, err := exec.Command("caffeinate", "-u", "-t", "1").CombinedOutput()
	if err != nil {
		return fmt.Errorf("darwin: caffeinate failed: %w (output: %q)", err, string(out))
	}
	return nil
}

func (m *darwinMover) Name() string {
	return "cgevent"
}

func (m *darwinMover) Close() error {
	return nil
}

func buildMoveScript(dx, dy int) string {
	return fmt.Sprintf(`
ObjC.import('CoreGraphics');

var ev = $.CGEventCreate(null);
var p = $.CGEventGetLocation(ev);
var moveEvent = $.CGEventCreateMouseEvent(null, $.kCGEventMouseMoved, {x: p.x + %d, y: p.y + %d}, $.kCGMouseButtonLeft);
$.CGEventPost($.kCGHIDEventTap, moveEvent);

console.log("ok");
`, dx, dy)
}

func runJXAScript(script string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), scriptExecutionTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "osascript", "-l", "JavaScript", "-e", script)
	out, err := cmd.CombinedOutput()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return out, fmt.Errorf("osascript timed out after %s", scriptExecutionTimeout)
	}

	return out, err
}

func (m *darwinMover) warnAccessibilityOnce(err error) {
	nowNS := time.Now().UnixNano()
	last := atomic.LoadInt64(&m.lastPermWarnNS)
	if last != 0 && time.Duration(nowNS-last) < permissionWarnEvery {
		return
	}
	atomic.StoreInt64(&m.lastPermWarnNS, nowNS)

	m.log.Warn().Err(err).Msg("mouse move blocked or failed. On macOS the process posting events needs Accessibility: " +
		"enable your terminal (or the packaged app) in System Settings, Privacy and Security, Accessibility.")
}

// NewMover returns the CGEvent mover. osascript and caffeinate ship with
// macOS, but may be missing from a sandboxed PATH.
func NewMover() (Mover, error) {
	for _, tool := range []string{"osascript", "caffeinate"} {
		if !util.HasCommand(tool) {
			return nil, fmt.Errorf("darwin: %s not found in PATH", tool)
		}
	}
	return &darwinMover{log: logging.For("darwin")}, nil
}
