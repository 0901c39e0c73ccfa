// Package keepalive owns the platform pointer mover for the lifetime of a
// jiggling session and performs the individual jiggles.
package keepalive

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/stigoleg/mouse-jiggler/internal/logging"
	"github.com/stigoleg/mouse-jiggler/internal/platform"
)

// ErrAlreadyRunning is returned by Start on a running keeper.
var ErrAlreadyRunning = errors.New("jiggler already running")

// ErrNotRunning is returned by Jiggle before Start or after Stop.
var ErrNotRunning = errors.New("jiggler not running")

const defaultStopTimeout = 5 * time.Second

// SimulationHealth represents the runtime health of pointer injection
type SimulationHealth int

const (
	SimulationHealthUnknown SimulationHealth = iota
	SimulationHealthOK
	SimulationHealthFailed
)

// MoverFactory creates the platform mover when a session starts.
type MoverFactory func() (platform.Mover, error)

// Keeper manages the pointer mover. The zero value uses platform.NewMover.
type Keeper struct {
	mu       sync.Mutex
	running  bool
	mover    platform.Mover
	newMover MoverFactory

	// moveMu serializes Move against Close on the same mover.
	moveMu sync.Mutex

	jiggles int64

	// simulationFailCount tracks consecutive injection failures
	simulationFailCount int64
}

// New returns a keeper that creates movers with factory.
func New(factory MoverFactory) *Keeper {
	return &Keeper{newMover: factory}
}

func (k *Keeper) logger() zerolog.Logger {
	return logging.For("keeper")
}

// IsRunning returns whether a session is active
func (k *Keeper) IsRunning() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.running
}

// Start creates the platform mover and begins a session.
func (k *Keeper) Start() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.running {
		return ErrAlreadyRunning
	}

	if k.mover == nil {
		factory := k.newMover
		if factory == nil {
			factory = platform.NewMover
		}
		mover, err := factory()
		if err != nil {
			return err
		}
		k.mover = mover
	}

	k.running = true
	atomic.StoreInt64(&k.simulationFailCount, 0)
	l := k.logger()
	l.Info().Str("mover", k.mover.Name()).Msg("started")
	return nil
}

// Jiggle moves the pointer horizontally by delta. A zero delta produces an
// input event without displacement.
func (k *Keeper) Jiggle(delta int) error {
	k.mu.Lock()
	if !k.running || k.mover == nil {
		k.mu.Unlock()
		return ErrNotRunning
	}
	mover := k.mover
	k.mu.Unlock()

	k.moveMu.Lock()
	if !k.owns(mover) {
		// Stop closed this mover while we waited.
		k.moveMu.Unlock()
		return ErrNotRunning
	}
	err := mover.Move(delta, 0)
	k.moveMu.Unlock()

	l := k.logger()
	if err != nil {
		k.recordSimulationFailure()
		l.Warn().Err(err).Int("delta", delta).Msg("jiggle failed")
		return err
	}
	k.resetSimulationHealth()
	atomic.AddInt64(&k.jiggles, 1)
	l.Debug().Int("delta", delta).Msg("jiggled")
	return nil
}

// owns reports whether mover is still the live mover of a running session.
func (k *Keeper) owns(mover platform.Mover) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.running && k.mover == mover
}

// Jiggles returns the number of successful jiggles since creation.
func (k *Keeper) Jiggles() int64 {
	return atomic.LoadInt64(&k.jiggles)
}

// Stop ends the session and releases the mover.
func (k *Keeper) Stop() error {
	return k.StopWithTimeout(0)
}

// StopWithTimeout ends the session, giving the mover at most timeout to
// release its resources.
func (k *Keeper) StopWithTimeout(timeout time.Duration) error {
	k.mu.Lock()
	if !k.running {
		k.mu.Unlock()
		return nil
	}

	if timeout <= 0 {
		timeout = defaultStopTimeout
	}

	mover := k.mover
	k.mover = nil
	k.running = false
	k.mu.Unlock()

	l := k.logger()
	if mover == nil {
		l.Info().Msg("stopped")
		return nil
	}

	done := make(chan error, 1)
	go func() {
		k.moveMu.Lock()
		defer k.moveMu.Unlock()
		done <- mover.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	select {
	case err := <-done:
		if err != nil {
			l.Warn().Err(err).Msg("stopped with error")
			return err
		}
		l.Info().Msg("stopped")
		return nil
	case <-ctx.Done():
		l.Warn().Dur("timeout", timeout).Msg("stop timeout exceeded")
		return ctx.Err()
	}
}

// GetSimulationHealth returns the current health of pointer injection
func (k *Keeper) GetSimulationHealth() SimulationHealth {
	if atomic.LoadInt64(&k.jiggles) == 0 && atomic.LoadInt64(&k.simulationFailCount) == 0 {
		return SimulationHealthUnknown
	}
	if atomic.LoadInt64(&k.simulationFailCount) > 0 {
		return SimulationHealthFailed
	}
	return SimulationHealthOK
}

func (k *Keeper) recordSimulationFailure() {
	atomic.AddInt64(&k.simulationFailCount, 1)
}

func (k *Keeper) resetSimulationHealth() {
	atomic.StoreInt64(&k.simulationFailCount, 0)
}
