// Package logging owns the process-wide zap logger.
//
// Logging is silent unless a level is configured. The TUI owns the
// terminal, so enabled output goes to a file rather than stdout.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// Valid values: "debug", "info", "warn", "error".
const LogLevelEnvVar = "SHOWCASE_LOG_LEVEL"

// LogFileEnvVar overrides the log file path.
const LogFileEnvVar = "SHOWCASE_LOG_FILE"

var (
	mu     sync.Mutex
	logger = zap.NewNop()
)

// Initialize builds the global logger. An empty level falls back to
// SHOWCASE_LOG_LEVEL; if that is empty too, logging stays disabled. An
// empty path falls back to SHOWCASE_LOG_FILE and then DefaultPath.
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		replace(zap.NewNop())
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	if path == "" {
		path = os.Getenv(LogFileEnvVar)
	}
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("logging: failed to create directory for %s: %w", path, err)
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
	}
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	replace(l)
	return nil
}

// DefaultPath returns showcase.log under the user cache directory.
func DefaultPath() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("logging: unable to determine cache directory: %w", err)
	}
	return filepath.Join(base, "showcase", "showcase.log"), nil
}

// L returns the global logger. It is a no-op logger until Initialize
// enables output.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Sync flushes buffered log entries.
func Sync() {
	_ = L().Sync()
}

func replace(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	_ = logger.Sync()
	logger = l
}
