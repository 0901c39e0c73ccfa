package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"gopkg.in/ini.v1"

	"github.com/stigoleg/mouse-jiggler/internal/jiggle"
)

// settings.ini layout:
//
//	[jiggler]
//	enabled = false
//	period_seconds = 1
//	zen_mode = false
//	random_timer = false
//	minimize_on_startup = false
const (
	sectionJiggler       = "jiggler"
	keyEnabled           = "enabled"
	keyPeriodSeconds     = "period_seconds"
	keyZenMode           = "zen_mode"
	keyRandomTimer       = "random_timer"
	keyMinimizeOnStartup = "minimize_on_startup"
)

// LoadSettings loads settings from path, or from the default path when path
// is empty. A missing file yields defaults and no error; an unreadable one
// yields an error. The loaded period is clamped into range.
func LoadSettings(path string) (jiggle.Settings, error) {
	s := jiggle.DefaultSettings()

	if path == "" {
		var err error
		path, err = DefaultSettingsPath()
		if err != nil {
			return s, nil
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return s, fmt.Errorf("failed to load %s: %w", filepath.Base(path), err)
	}

	sec := f.Section(sectionJiggler)
	s.Enabled = sec.Key(keyEnabled).MustBool(false)
	s.PeriodSeconds = sec.Key(keyPeriodSeconds).MustInt(jiggle.DefaultPeriod)
	s.ZenMode = sec.Key(keyZenMode).MustBool(false)
	s.RandomTimer = sec.Key(keyRandomTimer).MustBool(false)
	s.MinimizeOnStartup = sec.Key(keyMinimizeOnStartup).MustBool(false)

	return s.Normalize(), nil
}

// SaveSettings writes s to path, or to the default path when path is empty.
// Parent directories are created and the file is replaced atomically.
func SaveSettings(s jiggle.Settings, path string) error {
	if path == "" {
		var err error
		path, err = DefaultSettingsPath()
		if err != nil {
			return fmt.Errorf("failed to determine settings path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	s = s.Normalize()
	f := ini.Empty()
	sec, err := f.NewSection(sectionJiggler)
	if err != nil {
		return fmt.Errorf("failed to create %s section: %w", sectionJiggler, err)
	}
	sec.Key(keyEnabled).SetValue(strconv.FormatBool(s.Enabled))
	sec.Key(keyPeriodSeconds).SetValue(strconv.Itoa(s.PeriodSeconds))
	sec.Key(keyZenMode).SetValue(strconv.FormatBool(s.ZenMode))
	sec.Key(keyRandomTimer).SetValue(strconv.FormatBool(s.RandomTimer))
	sec.Key(keyMinimizeOnStartup).SetValue(strconv.FormatBool(s.MinimizeOnStartup))

	tmpPath := path + ".tmp"
	if err := f.SaveTo(tmpPath); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	if runtime.GOOS != "windows" {
		if err := os.Chmod(tmpPath, 0o600); err != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("failed to set settings permissions: %w", err)
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// SettingsStore persists settings to a fixed path.
type SettingsStore struct {
	Path string
}

// NewSettingsStore returns a store for path; empty means the default path.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{Path: path}
}

// Load reads the stored settings.
func (st *SettingsStore) Load() (jiggle.Settings, error) {
	return LoadSettings(st.Path)
}

// Save writes s.
func (st *SettingsStore) Save(s jiggle.Settings) error {
	return SaveSettings(s, st.Path)
}
