package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	path := filepath.Join(t.TempDir(), "showcase.log")

	if err := Initialize("", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	L().Info("should not be written")
	Sync()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no log file when logging is disabled, stat err = %v", err)
	}
}

func TestInitialize_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "showcase.log")

	if err := Initialize("info", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = Initialize("", "") })

	L().Debug("below level")
	L().Info("submission accepted", zap.String("receipt", "ref-1"))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "submission accepted") || !strings.Contains(out, "ref-1") {
		t.Errorf("expected info entry in log, got:\n%s", out)
	}
	if strings.Contains(out, "below level") {
		t.Errorf("debug entry written at info level:\n%s", out)
	}
}

func TestInitialize_LevelFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv(LogLevelEnvVar, "debug")
	t.Setenv(LogFileEnvVar, path)

	if err := Initialize("", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv(LogLevelEnvVar)
		_ = Initialize("", "")
	})

	L().Debug("from env")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "from env") {
		t.Errorf("expected debug entry, got:\n%s", data)
	}
}
