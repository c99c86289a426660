// Package logging builds the charmbracelet/log logger shared by the stores,
// the CLI and the TUI.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"habitbox/internal/config"
)

const prefix = "habitbox"

// ParseLevel maps a config level name to a log.Level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New returns a logger writing to w.
func New(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		Formatter:       log.TextFormatter,
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// Open builds the logger described by cfg. With a log_file the output is
// appended there; otherwise fallback is used (stderr for the CLI, io.Discard
// while the TUI owns the terminal). The returned closer is never nil.
func Open(cfg config.Config, fallback io.Writer) (*log.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		if fallback == nil {
			fallback = os.Stderr
		}
		return New(fallback, cfg.LogLevel), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return New(f, cfg.LogLevel), f, nil
}
