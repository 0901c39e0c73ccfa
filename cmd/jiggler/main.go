package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/mouse-jiggler/internal/config"
	"github.com/stigoleg/mouse-jiggler/internal/keepalive"
	"github.com/stigoleg/mouse-jiggler/internal/logging"
	"github.com/stigoleg/mouse-jiggler/internal/tray"
	"github.com/stigoleg/mouse-jiggler/internal/ui"
)

const cleanupTimeout = 5 * time.Second

func main() {
	cmd := config.NewRootCommand(config.Version, run)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, config.FormatError(err))
		os.Exit(1)
	}
}

func run(opts *config.Options) error {
	logPath := opts.LogFile
	if logPath == "" {
		logPath = config.DefaultLogPath()
	}
	cleanup := keepalive.NewCleanupManager(cleanupTimeout)
	defer func() {
		// The log file is closed by now.
		for _, err := range cleanup.Execute() {
			fmt.Fprintf(os.Stderr, "cleanup: %v\n", err)
		}
	}()

	logFile, err := logging.Open(logPath, opts.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	}
	l := logging.For("main")

	store := config.NewSettingsStore(opts.SettingsPath)
	settings, err := store.Load()
	if err != nil {
		l.Warn().Err(err).Msg("using default settings")
	}
	settings = opts.Apply(settings)
	l.Info().
		Str("version", config.Version).
		Bool("enabled", settings.Enabled).
		Int("period", settings.PeriodSeconds).
		Bool("zen", settings.ZenMode).
		Bool("random", settings.RandomTimer).
		Msg("starting")

	keeper := keepalive.New(nil)
	cleanup.RegisterFunc("keeper", func() error {
		if !keeper.IsRunning() {
			return nil
		}
		return keeper.StopWithTimeout(cleanupTimeout / 2)
	})

	var (
		trayIcon *tray.Tray
		sink     ui.StatusSink
	)
	if !opts.NoTray && tray.Available() {
		trayIcon = tray.New()
		sink = trayIcon
		cleanup.RegisterFunc("tray", func() error {
			trayIcon.Quit()
			return nil
		})
	}
	if logFile != nil {
		cleanup.RegisterFunc("log", func() error {
			l.Info().Int64("jiggles", keeper.Jiggles()).Msg("exiting")
			return logFile.Close()
		})
	}

	model := ui.New(ui.Options{
		Settings: settings,
		Keeper:   keeper,
		Saver:    store,
		Sink:     sink,
		Version:  config.Version,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getSignalsForPlatform()...)
	defer signal.Stop(sigChan)
	go func() {
		for sig := range sigChan {
			if isSuspendSignal(sig) {
				l.Debug().Msg("ignoring suspend while the jiggler owns the terminal")
				continue
			}
			l.Info().Str("signal", sig.String()).Msg("received signal")
			p.Quit()
			return
		}
	}()

	if trayIcon == nil {
		_, err := p.Run()
		return err
	}

	trayIcon.SetSender(p)
	errCh := make(chan error, 1)
	trayIcon.Run(func() {
		go func() {
			_, err := p.Run()
			errCh <- err
			trayIcon.Quit()
		}()
	})
	return <-errCh
}
