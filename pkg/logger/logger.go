// Package logger owns the process-wide charmbracelet logger. Packages log
// through the default instance; commands configure it once at startup from
// the loaded configuration.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	charm "github.com/charmbracelet/log"

	errUtils "github.com/stonkie/stonkie/errors"
	"github.com/stonkie/stonkie/pkg/ui/theme"
)

// LevelOff disables all logging. Charm has no built-in "off" level, so we
// use a level above Fatal.
const LevelOff = charm.FatalLevel + 4

// defaultLogger is the global default logger instance stored atomically.
var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(charm.Default())
}

// Default returns the global default logger instance.
func Default() *charm.Logger {
	return defaultLogger.Load().(*charm.Logger)
}

// SetDefault sets a new global default logger instance. It also replaces
// charm's package-level default so packages that import charmbracelet/log
// directly pick it up.
func SetDefault(logger *charm.Logger) {
	if logger == nil {
		return
	}
	defaultLogger.Store(logger)
	charm.SetDefault(logger)
}

// ParseLevel maps a configuration string onto a charm log level.
// Trace is accepted as an alias for debug.
func ParseLevel(level string) (charm.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return charm.InfoLevel, nil
	case "trace", "debug":
		return charm.DebugLevel, nil
	case "warn", "warning":
		return charm.WarnLevel, nil
	case "error":
		return charm.ErrorLevel, nil
	case "off":
		return LevelOff, nil
	default:
		return charm.InfoLevel, fmt.Errorf("%w: %q (supported: trace, debug, info, warn, error, off)",
			errUtils.ErrInvalidLogLevel, level)
	}
}

// Setup builds the default logger from the configured level and log file and
// installs it globally. When file is empty, logs go to stderr. The returned
// closer releases the log file, if any, and is safe to call more than once.
func Setup(level, file string) (func() error, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stderr
	var f *os.File
	if file != "" {
		f, err = os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
	}

	logger := charm.NewWithOptions(out, charm.Options{
		Level:           lvl,
		ReportTimestamp: false,
	})
	logger.SetStyles(theme.LogStyles())
	SetDefault(logger)

	closed := false
	return func() error {
		if f == nil || closed {
			return nil
		}
		closed = true
		return f.Close()
	}, nil
}

// SetOutput redirects the default logger. Used by the chat TUI to keep log
// lines off the alternate screen when no log file is configured.
func SetOutput(w io.Writer) {
	Default().SetOutput(w)
}
