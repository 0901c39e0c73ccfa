package jiggle

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampPeriod(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"below range", -5, MinPeriod},
		{"zero", 0, MinPeriod},
		{"lower bound", 1, 1},
		{"middle", 30, 30},
		{"upper bound", 60, 60},
		{"above range", 61, MaxPeriod},
		{"far above range", 3600, MaxPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampPeriod(tt.in))
		})
	}
}

func TestNewControllerNormalizesPeriod(t *testing.T) {
	c := NewController(Settings{PeriodSeconds: 500}, rand.New(rand.NewSource(1)))
	assert.Equal(t, MaxPeriod, c.Settings().PeriodSeconds)
	assert.Equal(t, 60*time.Second, c.Interval())
}

func TestTickAlternatesSign(t *testing.T) {
	c := NewController(Settings{Enabled: true, PeriodSeconds: 5}, rand.New(rand.NewSource(1)))

	prev := c.Tick()
	assert.Equal(t, Distance, prev.Delta, "first jiggle moves in the positive direction")
	for i := 0; i < 100; i++ {
		step := c.Tick()
		require.NotZero(t, step.Delta)
		assert.Equal(t, -prev.Delta, step.Delta, "tick %d did not reverse direction", i)
		assert.Equal(t, 5*time.Second, step.Next)
		assert.False(t, step.Randomized)
		prev = step
	}
}

func TestTickZenModeIsZero(t *testing.T) {
	c := NewController(Settings{Enabled: true, PeriodSeconds: 3, ZenMode: true}, rand.New(rand.NewSource(1)))
	for i := 0; i < 50; i++ {
		assert.Zero(t, c.Tick().Delta)
	}
}

func TestZenToggleKeepsZigZagPhase(t *testing.T) {
	c := NewController(Settings{Enabled: true}, rand.New(rand.NewSource(1)))

	assert.Equal(t, Distance, c.Tick().Delta)
	c.SetZenMode(true)
	assert.Zero(t, c.Tick().Delta)
	c.SetZenMode(false)
	assert.Equal(t, Distance, c.Tick().Delta, "zen ticks still advance the direction")
	assert.Equal(t, -Distance, c.Tick().Delta)
}

func TestRandomTimerInterval(t *testing.T) {
	for _, period := range []int{1, 2, 7, 60} {
		c := NewController(Settings{Enabled: true, PeriodSeconds: period, RandomTimer: true}, rand.New(rand.NewSource(int64(period))))
		seen := map[time.Duration]bool{}
		for i := 0; i < 500; i++ {
			step := c.Tick()
			require.True(t, step.Randomized)
			assert.GreaterOrEqual(t, step.Next, time.Second)
			assert.LessOrEqual(t, step.Next, time.Duration(period)*time.Second)
			assert.Equal(t, step.Next, c.Interval())
			seen[step.Next] = true
		}
		if period <= 7 {
			assert.Len(t, seen, period, "every whole second in [1, %d] should be drawn", period)
		}
	}
}

func TestRandomTimerOffRestoresPeriod(t *testing.T) {
	c := NewController(Settings{Enabled: true, PeriodSeconds: 40, RandomTimer: true}, rand.New(rand.NewSource(3)))
	for i := 0; i < 10; i++ {
		c.Tick()
	}
	c.SetRandomTimer(false)
	assert.Equal(t, 40*time.Second, c.Interval())
	assert.Equal(t, 40*time.Second, c.Tick().Next)
}

func TestSetPeriod(t *testing.T) {
	c := NewController(DefaultSettings(), rand.New(rand.NewSource(1)))

	assert.Equal(t, 15, c.SetPeriod(15))
	assert.Equal(t, 15*time.Second, c.Interval())
	assert.Equal(t, MinPeriod, c.SetPeriod(0))
	assert.Equal(t, MaxPeriod, c.SetPeriod(61))
	assert.Equal(t, MaxPeriod, c.Settings().PeriodSeconds)
}

func TestSetEnabledResetsInterval(t *testing.T) {
	c := NewController(Settings{PeriodSeconds: 10, RandomTimer: true}, rand.New(rand.NewSource(9)))
	c.SetEnabled(true)
	c.Tick()
	c.SetEnabled(false)
	c.SetEnabled(true)
	assert.Equal(t, 10*time.Second, c.Interval())
	assert.True(t, c.Enabled())
}

func TestNotificationText(t *testing.T) {
	tests := []struct {
		name string
		s    Settings
		want string
	}{
		{"disabled", Settings{PeriodSeconds: 5}, "Not jiggling the mouse."},
		{"enabled without zen", Settings{Enabled: true, PeriodSeconds: 5}, "Jiggling mouse every 5 s, without Zen."},
		{"enabled with zen", Settings{Enabled: true, PeriodSeconds: 12, ZenMode: true}, "Jiggling mouse every 12 s, with Zen."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NotificationText(tt.s))
		})
	}
}
