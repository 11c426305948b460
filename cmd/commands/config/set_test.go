package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"caresteward/showcase/internal/config"
)

// setupTestConfig points the config package at a temp file and returns its path.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	return path
}

// execConfig creates the config command, wires up output buffers, runs with the
// given args, and returns what was written to stdout and stderr.
func execConfig(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestSet_TickInterval(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "tick-interval", "500ms")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"500ms"`) {
		t.Errorf("expected confirmation with value, got: %s", stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.TickInterval != "500ms" {
		t.Errorf("expected TickInterval %q, got %q", "500ms", cfg.TickInterval)
	}
}

func TestSet_NormalizesValue(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "LIVE-ON-START", "FALSE")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `live-on-start set to "false"`) {
		t.Errorf("expected normalized key and value, got: %s", stdout)
	}
}

func TestSet_InvalidValue(t *testing.T) {
	path := setupTestConfig(t)

	_, stderr := execConfig(t, "set", "submit-delay", "soon")

	if !strings.Contains(stderr, "invalid value for submit-delay") {
		t.Errorf("expected validation error, got: %s", stderr)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.SubmitDelay != "" {
		t.Errorf("expected nothing persisted, got %q", cfg.SubmitDelay)
	}
}

func TestSet_EmptyValueClears(t *testing.T) {
	path := setupTestConfig(t)
	if err := (&config.Config{LogLevel: "debug"}).SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, stderr := execConfig(t, "set", "log-level", "")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "log-level cleared") {
		t.Errorf("expected cleared message, got: %s", stdout)
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.LogLevel != "" {
		t.Errorf("expected LogLevel cleared, got %q", cfg.LogLevel)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "bogus-key", "value")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
	if !strings.Contains(stderr, "tick-interval") {
		t.Errorf("expected valid keys listed, got: %s", stderr)
	}
}
