// Package jiggle holds the jiggle controller: the settings it owns, the
// zig-zag state, and the timer interval it hands back to the event loop.
package jiggle

import (
	"fmt"
	"math/rand"
	"time"
)

// Period bounds in seconds, matching the period slider.
const (
	MinPeriod     = 1
	MaxPeriod     = 60
	DefaultPeriod = 1

	// Distance is the cursor displacement of a non-zen jiggle, in pixels.
	Distance = 4
)

// Settings is the persisted state of the jiggler.
type Settings struct {
	Enabled           bool
	PeriodSeconds     int
	ZenMode           bool
	RandomTimer       bool
	MinimizeOnStartup bool
}

// DefaultSettings returns the settings used when nothing has been stored yet.
func DefaultSettings() Settings {
	return Settings{PeriodSeconds: DefaultPeriod}
}

// Normalize returns a copy of s with the period clamped into range.
func (s Settings) Normalize() Settings {
	s.PeriodSeconds = ClampPeriod(s.PeriodSeconds)
	return s
}

// Period returns the configured period as a duration.
func (s Settings) Period() time.Duration {
	return time.Duration(ClampPeriod(s.PeriodSeconds)) * time.Second
}

// ClampPeriod bounds p to [MinPeriod, MaxPeriod].
func ClampPeriod(p int) int {
	if p < MinPeriod {
		return MinPeriod
	}
	if p > MaxPeriod {
		return MaxPeriod
	}
	return p
}

// Step is the outcome of a single tick.
type Step struct {
	// Delta is the horizontal cursor displacement to inject. Zero means an
	// input event that must not move the pointer.
	Delta int

	// Next is the interval until the following tick.
	Next time.Duration

	// Randomized reports whether Next was drawn by the random timer.
	Randomized bool
}

// Controller owns the jiggle settings and direction state. It is not safe for
// concurrent use; the UI event loop is its only caller.
type Controller struct {
	settings Settings
	zig      bool
	interval time.Duration
	rnd      *rand.Rand
}

// NewController returns a controller for s. A nil rnd gets a time-seeded
// source.
func NewController(s Settings, rnd *rand.Rand) *Controller {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s = s.Normalize()
	return &Controller{
		settings: s,
		zig:      true,
		interval: s.Period(),
		rnd:      rnd,
	}
}

// Settings returns a copy of the current settings.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Enabled reports whether jiggling is switched on.
func (c *Controller) Enabled() bool {
	return c.settings.Enabled
}

// Interval returns the delay before the next tick.
func (c *Controller) Interval() time.Duration {
	return c.interval
}

// SetEnabled switches jiggling on or off. Switching on re-applies the
// configured period to the timer.
func (c *Controller) SetEnabled(enabled bool) {
	c.settings.Enabled = enabled
	if enabled {
		c.interval = c.settings.Period()
	}
}

// SetPeriod stores the clamped period, resets the timer interval to it and
// returns the value actually stored.
func (c *Controller) SetPeriod(seconds int) int {
	c.settings.PeriodSeconds = ClampPeriod(seconds)
	c.interval = c.settings.Period()
	return c.settings.PeriodSeconds
}

// SetZenMode toggles zero-displacement jiggles.
func (c *Controller) SetZenMode(zen bool) {
	c.settings.ZenMode = zen
}

// SetRandomTimer toggles random rearming. Turning it off restores the fixed
// period.
func (c *Controller) SetRandomTimer(random bool) {
	c.settings.RandomTimer = random
	if !random {
		c.interval = c.settings.Period()
	}
}

// SetMinimizeOnStartup records whether the next launch starts minimized.
func (c *Controller) SetMinimizeOnStartup(minimize bool) {
	c.settings.MinimizeOnStartup = minimize
}

// Tick advances the zig-zag state and returns the displacement to inject
// along with the interval until the next tick.
func (c *Controller) Tick() Step {
	var step Step
	switch {
	case c.settings.ZenMode:
		step.Delta = 0
	case c.zig:
		step.Delta = Distance
	default:
		step.Delta = -Distance
	}
	c.zig = !c.zig

	if c.settings.RandomTimer {
		c.interval = c.randomInterval()
		step.Randomized = true
	}
	step.Next = c.interval
	return step
}

// randomInterval draws uniformly from [1, period] whole seconds.
func (c *Controller) randomInterval() time.Duration {
	period := ClampPeriod(c.settings.PeriodSeconds)
	return time.Duration(c.rnd.Intn(period)+1) * time.Second
}

// NotificationText describes the current state for the tray tooltip.
func (c *Controller) NotificationText() string {
	return NotificationText(c.settings)
}

// NotificationText describes s for the tray tooltip.
func NotificationText(s Settings) string {
	if !s.Enabled {
		return "Not jiggling the mouse."
	}
	with := "without"
	if s.ZenMode {
		with = "with"
	}
	return fmt.Sprintf("Jiggling mouse every %d s, %s Zen.", ClampPeriod(s.PeriodSeconds), with)
}
