// Package logger provides structured logging functionality for the application.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hkshrestha01-debug/aistudyapp/internal/config"
)

// ParseLevel maps a configured level name (case-insensitive) to a slog.Level.
// Unknown names map to slog.LevelInfo and ok=false.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup initializes the application's logger from cfg, writing to w
// (os.Stderr when nil). It sets the logger as the slog default and returns it.
func Setup(cfg config.LoggingConfig, w io.Writer) (*slog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}

	level, ok := ParseLevel(cfg.Level)
	if !ok {
		// Warn through a temporary handler on the same writer
		tmpLogger := slog.New(slog.NewTextHandler(w, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, errors.New("unsupported log format: " + cfg.Format)
	}

	logger := slog.New(NewRedactHandler(handler))
	slog.SetDefault(logger)

	return logger, nil
}
