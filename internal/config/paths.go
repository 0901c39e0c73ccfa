// Package config handles the command line and the persisted settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName       = "mouse-jiggler"
	settingsFileName = "settings.ini"
	logFileName      = "debug.log"
)

// ConfigDirectory returns the per-user directory for settings and logs.
//   - Windows: %APPDATA%\mouse-jiggler
//   - macOS: ~/Library/Application Support/mouse-jiggler
//   - Unix: $XDG_CONFIG_HOME/mouse-jiggler or ~/.config/mouse-jiggler
func ConfigDirectory() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("failed to determine config directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appDirName), nil
}

// DefaultSettingsPath returns the default location of settings.ini.
func DefaultSettingsPath() (string, error) {
	dir, err := ConfigDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsFileName), nil
}

// DefaultLogPath returns the default location of the log file, falling back
// to the temp directory.
func DefaultLogPath() string {
	dir, err := ConfigDirectory()
	if err != nil {
		return filepath.Join(os.TempDir(), appDirName+"-"+logFileName)
	}
	return filepath.Join(dir, logFileName)
}
