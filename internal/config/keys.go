package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"caresteward/showcase/internal/util"
)

// ErrUnknownKey is returned when a configuration key is not registered.
var ErrUnknownKey = errors.New("unknown configuration key")

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "tick-interval").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)

	// Parse validates and normalizes a user-entered value before Set. A nil
	// Parse accepts any value after trimming whitespace.
	Parse func(value string) (string, error)
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "submit-delay",
		Description: "Simulated submission latency of the contact form (e.g. 1.5s)",
		Get:         func(cfg *Config) string { return cfg.SubmitDelay },
		Set:         func(cfg *Config, v string) { cfg.SubmitDelay = v },
		Parse:       normalizeDuration,
	},
	{
		Name:        "reset-delay",
		Description: "How long the confirmation shows before the form resets (e.g. 3s)",
		Get:         func(cfg *Config) string { return cfg.ResetDelay },
		Set:         func(cfg *Config, v string) { cfg.ResetDelay = v },
		Parse:       normalizeDuration,
	},
	{
		Name:        "tick-interval",
		Description: "Period between live metric updates (e.g. 2s)",
		Get:         func(cfg *Config) string { return cfg.TickInterval },
		Set:         func(cfg *Config, v string) { cfg.TickInterval = v },
		Parse:       normalizeDuration,
	},
	{
		Name:        "live-on-start",
		Description: "Start the performance monitor in live mode (true/false)",
		Get:         func(cfg *Config) string { return cfg.LiveOnStart },
		Set:         func(cfg *Config, v string) { cfg.LiveOnStart = v },
		Parse:       normalizeBool,
	},
	{
		Name:        "log-level",
		Description: "Log verbosity: debug, info, warn, error (empty disables logging)",
		Get:         func(cfg *Config) string { return cfg.LogLevel },
		Set:         func(cfg *Config, v string) { cfg.LogLevel = v },
		Parse:       normalizeLogLevel,
	},
	{
		Name:        "log-file",
		Description: "File that receives log output when logging is enabled",
		Get:         func(cfg *Config) string { return cfg.LogFile },
		Set:         func(cfg *Config, v string) { cfg.LogFile = v },
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := util.NormalizeKey(name)
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// Apply validates value for the named key and stores it in cfg.
// It returns the normalized value that was stored.
func Apply(cfg *Config, name, value string) (string, error) {
	spec := Lookup(name)
	if spec == nil {
		return "", fmt.Errorf("%w %q (valid: %s)", ErrUnknownKey, name, strings.Join(KeyNames(), ", "))
	}

	normalized := strings.TrimSpace(value)
	if spec.Parse != nil && normalized != "" {
		var err error
		normalized, err = spec.Parse(normalized)
		if err != nil {
			return "", fmt.Errorf("invalid value for %s: %w", spec.Name, err)
		}
	}

	spec.Set(cfg, normalized)
	return normalized, nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}

func parseDuration(v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %s", v)
	}
	return d, nil
}

func normalizeDuration(v string) (string, error) {
	d, err := parseDuration(v)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

func normalizeBool(v string) (string, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return "", fmt.Errorf("expected true or false, got %q", v)
	}
	return strconv.FormatBool(b), nil
}

func normalizeLogLevel(v string) (string, error) {
	level := util.NormalizeKey(v)
	switch level {
	case "debug", "info", "warn", "error":
		return level, nil
	default:
		return "", fmt.Errorf("unknown log level %q (valid: debug, info, warn, error)", v)
	}
}
