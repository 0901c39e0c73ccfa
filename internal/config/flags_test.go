package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/mouse-jiggler/internal/jiggle"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		base jiggle.Settings
		want jiggle.Settings
	}{
		{
			name: "no flags keeps stored settings",
			args: nil,
			base: jiggle.Settings{PeriodSeconds: 20, ZenMode: true},
			want: jiggle.Settings{PeriodSeconds: 20, ZenMode: true},
		},
		{
			name: "short flags",
			args: []string{"-j", "-m", "-z", "-r", "-s", "30"},
			base: jiggle.DefaultSettings(),
			want: jiggle.Settings{Enabled: true, MinimizeOnStartup: true, ZenMode: true, RandomTimer: true, PeriodSeconds: 30},
		},
		{
			name: "long flags with duration",
			args: []string{"--jiggle", "--seconds", "1m"},
			base: jiggle.DefaultSettings(),
			want: jiggle.Settings{Enabled: true, PeriodSeconds: 60},
		},
		{
			name: "explicit false overrides stored true",
			args: []string{"--zen=false"},
			base: jiggle.Settings{PeriodSeconds: 5, ZenMode: true},
			want: jiggle.Settings{PeriodSeconds: 5},
		},
		{
			name: "period above range is clamped",
			args: []string{"-s", "600"},
			base: jiggle.DefaultSettings(),
			want: jiggle.Settings{PeriodSeconds: 60},
		},
		{
			name: "period below range is clamped",
			args: []string{"-s", "0"},
			base: jiggle.Settings{PeriodSeconds: 9},
			want: jiggle.Settings{PeriodSeconds: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseFlags("test", tt.args)
			require.NoError(t, err)
			require.NotNil(t, opts)
			assert.Equal(t, tt.want, opts.Apply(tt.base))
		})
	}
}

func TestParseFlagsAmbient(t *testing.T) {
	opts, err := ParseFlags("test", []string{"--settings", "/tmp/s.ini", "--log-file", "/tmp/j.log", "--no-tray", "--debug"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/s.ini", opts.SettingsPath)
	assert.Equal(t, "/tmp/j.log", opts.LogFile)
	assert.True(t, opts.NoTray)
	assert.True(t, opts.Debug)
	assert.False(t, opts.Changed(FlagJiggle))
}

func TestParseFlagsInvalidPeriod(t *testing.T) {
	opts, err := ParseFlags("test", []string{"--seconds", "soon"})
	assert.Nil(t, opts)
	require.Error(t, err)

	var pe *PeriodError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "soon", pe.Input)
	assert.Contains(t, FormatError(err), "Valid formats")
}

func TestParseFlagsRejectsArgs(t *testing.T) {
	_, err := ParseFlags("test", []string{"extra"})
	assert.Error(t, err)
}

func TestVersionFlag(t *testing.T) {
	called := false
	cmd := NewRootCommand("1.2.3", func(*Options) error {
		called = true
		return nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.False(t, called)
	assert.Equal(t, "Mouse Jiggler version 1.2.3\n", out.String())
}

func TestParseFlagsHelpAndVersion(t *testing.T) {
	for _, arg := range []string{"--help", "--version"} {
		t.Run(arg, func(t *testing.T) {
			opts, err := ParseFlags("test", []string{arg})
			assert.Nil(t, opts)
			assert.ErrorIs(t, err, ErrNoRun)
		})
	}
}
