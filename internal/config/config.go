// Package config handles persistent user configuration for showcase.
//
// Configuration is stored as YAML at ~/.config/showcase/config.yaml (or the
// platform-equivalent path returned by os.UserConfigDir).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"caresteward/showcase/internal/contact"
	"caresteward/showcase/internal/monitor"

	"gopkg.in/yaml.v3"
)

const (
	appDir   = "showcase"
	fileName = "config.yaml"
)

// pathOverride, when non-empty, replaces the default config file path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// Config holds user preferences that persist across invocations. Values
// are stored as entered; Settings parses them.
type Config struct {
	SubmitDelay  string `yaml:"submit_delay,omitempty"`
	ResetDelay   string `yaml:"reset_delay,omitempty"`
	TickInterval string `yaml:"tick_interval,omitempty"`
	LiveOnStart  string `yaml:"live_on_start,omitempty"`
	LogLevel     string `yaml:"log_level,omitempty"`
	LogFile      string `yaml:"log_file,omitempty"`
}

// Settings is the parsed, defaulted form of Config.
type Settings struct {
	SubmitDelay  time.Duration
	ResetDelay   time.Duration
	TickInterval time.Duration
	LiveOnStart  bool
	LogLevel     string
	LogFile      string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		SubmitDelay:  contact.DefaultSubmitDelay,
		ResetDelay:   contact.DefaultResetDelay,
		TickInterval: monitor.DefaultTickInterval,
		LiveOnStart:  true,
	}
}

// Settings parses the stored values over DefaultSettings.
func (c *Config) Settings() (Settings, error) {
	s := DefaultSettings()

	durations := []struct {
		key string
		raw string
		dst *time.Duration
	}{
		{"submit-delay", c.SubmitDelay, &s.SubmitDelay},
		{"reset-delay", c.ResetDelay, &s.ResetDelay},
		{"tick-interval", c.TickInterval, &s.TickInterval},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		v, err := parseDuration(d.raw)
		if err != nil {
			return Settings{}, fmt.Errorf("config: %s: %w", d.key, err)
		}
		*d.dst = v
	}

	if c.LiveOnStart != "" {
		live, err := strconv.ParseBool(c.LiveOnStart)
		if err != nil {
			return Settings{}, fmt.Errorf("config: live-on-start: %w", err)
		}
		s.LiveOnStart = live
	}

	s.LogLevel = c.LogLevel
	s.LogFile = c.LogFile
	return s, nil
}

// Path returns the absolute path to the config file.
// If SetPath has been called, that value is returned instead.
// Otherwise it uses os.UserConfigDir which resolves to
// ~/Library/Application Support on macOS, ~/.config on Linux, and
// %AppData% on Windows.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Load reads the config file from disk and returns the parsed Config.
// If the file does not exist, a zero-value Config is returned (not an error).
func Load() (*Config, error) {
	return loadFrom("")
}

func loadFrom(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the config to disk, creating the parent directory if needed.
func (c *Config) Save() error {
	return c.saveTo("")
}

func (c *Config) saveTo(path string) error {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}

	return nil
}

// LoadFrom reads the config from the given path. Intended for testing.
func LoadFrom(path string) (*Config, error) {
	return loadFrom(path)
}

// SaveTo writes the config to the given path. Intended for testing.
func (c *Config) SaveTo(path string) error {
	return c.saveTo(path)
}

// LoadSettings loads the config file and parses it into Settings.
func LoadSettings() (Settings, error) {
	cfg, err := Load()
	if err != nil {
		return Settings{}, err
	}
	return cfg.Settings()
}
