// Package logging provides structured logging for the jiggler.
//
// The terminal belongs to the TUI, so log output goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const timeFormat = "15:04:05"

// Open creates (or appends to) the log file at path and installs it as the
// global logger. Closing the returned closer detaches the global logger
// before the file is closed.
func Open(path string, debug bool) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	Setup(f, debug)
	return &fileCloser{f: f}, nil
}

type fileCloser struct {
	f *os.File
}

func (c *fileCloser) Close() error {
	log.Logger = zerolog.Nop()
	return c.f.Close()
}

// Setup points the global logger at w.
func Setup(w io.Writer, debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: timeFormat,
	}).With().Timestamp().Logger()
}

// For returns a child of the global logger tagged with component.
func For(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	// Until Open runs, nothing may write to the terminal the TUI is drawing on.
	log.Logger = zerolog.Nop()
}
