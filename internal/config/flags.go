package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stigoleg/mouse-jiggler/internal/jiggle"
	"github.com/stigoleg/mouse-jiggler/internal/ui"
	"github.com/stigoleg/mouse-jiggler/internal/util"
)

// Version is the program version reported by --version.
var Version = "1.0.0"

// ErrNoRun is returned by ParseFlags when --help or --version was handled
// and there is nothing to run.
var ErrNoRun = errors.New("help or version shown")

// Options holds the parsed command line. Jiggle behaviour flags only
// override stored settings when given explicitly.
type Options struct {
	Jiggle    bool
	Minimized bool
	Zen       bool
	Random    bool
	Seconds   int

	SettingsPath string
	LogFile      string
	NoTray       bool
	Debug        bool

	set map[string]bool
}

// Flag names.
const (
	FlagJiggle    = "jiggle"
	FlagMinimized = "minimized"
	FlagZen       = "zen"
	FlagRandom    = "random"
	FlagSeconds   = "seconds"
	FlagSettings  = "settings"
	FlagLogFile   = "log-file"
	FlagNoTray    = "no-tray"
	FlagDebug     = "debug"
)

// Changed reports whether the named flag was given on the command line.
func (o *Options) Changed(name string) bool {
	return o.set[name]
}

// Apply overlays the explicitly given flags on s.
func (o *Options) Apply(s jiggle.Settings) jiggle.Settings {
	if o.Changed(FlagJiggle) {
		s.Enabled = o.Jiggle
	}
	if o.Changed(FlagMinimized) {
		s.MinimizeOnStartup = o.Minimized
	}
	if o.Changed(FlagZen) {
		s.ZenMode = o.Zen
	}
	if o.Changed(FlagRandom) {
		s.RandomTimer = o.Random
	}
	if o.Changed(FlagSeconds) {
		s.PeriodSeconds = o.Seconds
	}
	return s.Normalize()
}

// PeriodError reports an unparsable --seconds value.
type PeriodError struct {
	Input string
	Err   error
}

func (e *PeriodError) Error() string { return e.Err.Error() }

func (e *PeriodError) Unwrap() error { return e.Err }

// NewRootCommand builds the jiggler command. run receives the parsed options.
func NewRootCommand(version string, run func(*Options) error) *cobra.Command {
	opts := &Options{}
	var seconds string

	cmd := &cobra.Command{
		Use:   "jiggler",
		Short: "Jiggle the mouse pointer to keep the computer awake",
		Long: `Mouse Jiggler moves the pointer a few pixels back and forth at a fixed or
random interval so the system does not go idle, sleep or lock. Zen mode
signals input activity without visibly moving the pointer.`,
		Example: `  jiggler                 # interactive TUI with stored settings
  jiggler -j -s 30        # start jiggling every 30 seconds
  jiggler -j -z -r -s 1m  # zen mode, random interval up to one minute
  jiggler -m --no-tray    # start in the compact view without a tray icon`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.set = make(map[string]bool)
			cmd.Flags().Visit(func(f *pflag.Flag) {
				opts.set[f.Name] = true
			})

			if opts.Changed(FlagSeconds) {
				p, err := util.ParsePeriod(seconds)
				if err != nil {
					return &PeriodError{Input: seconds, Err: err}
				}
				opts.Seconds = jiggle.ClampPeriod(p)
			}
			return run(opts)
		},
	}
	cmd.SetVersionTemplate("Mouse Jiggler version {{.Version}}\n")

	f := cmd.Flags()
	f.BoolVarP(&opts.Jiggle, FlagJiggle, "j", false, "Start with jiggling enabled")
	f.BoolVarP(&opts.Minimized, FlagMinimized, "m", false, "Start minimized to the tray view")
	f.BoolVarP(&opts.Zen, FlagZen, "z", false, "Zen mode: signal activity without moving the pointer")
	f.BoolVarP(&opts.Random, FlagRandom, "r", false, "Random timer: wait a random 1..period seconds between jiggles")
	f.StringVarP(&seconds, FlagSeconds, "s", "", "Jiggle period in seconds, 1 to 60 (e.g. \"30\" or \"45s\")")
	f.StringVar(&opts.SettingsPath, FlagSettings, "", "Settings file path (default <config dir>/mouse-jiggler/settings.ini)")
	f.StringVar(&opts.LogFile, FlagLogFile, "", "Log file path (default <config dir>/mouse-jiggler/debug.log)")
	f.BoolVar(&opts.NoTray, FlagNoTray, false, "Do not show a system tray icon")
	f.BoolVar(&opts.Debug, FlagDebug, false, "Enable debug logging")

	return cmd
}

// ParseFlags parses args without running anything. It returns ErrNoRun
// after printing help or the version.
func ParseFlags(version string, args []string) (*Options, error) {
	var parsed *Options
	cmd := NewRootCommand(version, func(o *Options) error {
		parsed = o
		return nil
	})
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return nil, err
	}
	if parsed == nil {
		return nil, ErrNoRun
	}
	return parsed, nil
}

// FormatError renders a command line error for the terminal.
func FormatError(err error) string {
	msg := err.Error()
	var pe *PeriodError
	if errors.As(err, &pe) {
		parts := strings.SplitN(msg, "\n\n", 2)
		if len(parts) == 2 {
			errorBox := ui.Current.Panel.
				BorderForeground(lipgloss.Color("#FF4040"))

			header := lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FF4040")).
				Render(parts[0])

			details := lipgloss.NewStyle().
				Foreground(lipgloss.Color("#999999")).
				Render(parts[1])

			return errorBox.Render(fmt.Sprintf("%s\n\n%s", header, details))
		}
	}
	return ui.Current.Error.Render(msg)
}
