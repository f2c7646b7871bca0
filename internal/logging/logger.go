// Package logging wraps the charmbracelet logger used across typetest.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. It writes to stderr until Setup is called.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "typetest"})

// Setup points L at w and sets its level (debug, info, warn or error).
func Setup(w io.Writer, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	L = clog.NewWithOptions(w, clog.Options{
		Prefix:          "typetest",
		ReportTimestamp: true,
		Level:           lvl,
	})
	return nil
}

// OpenFile opens (appending) a log file and makes L write to it.
// The returned closer must be closed by the caller.
func OpenFile(path, level string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	if err := Setup(f, level); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

// ParseLevel maps a config level name to a logger level. Empty means info.
func ParseLevel(level string) (clog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		return clog.InfoLevel, nil
	case "debug", "info", "warn", "error":
		return clog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	default:
		return clog.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
