// Package logging installs the application's slog logger. Output goes to a
// rotated file because the terminal belongs to the timer UI.
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// Setup creates a JSON logger writing to path at the given level ("debug",
// "info", "warn" or "error"), makes it the default logger, and returns the
// writer that must be closed on exit.
func Setup(path, level string) (io.Closer, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	slog.SetDefault(New(w, lvl))

	return w, nil
}

// New returns a JSON logger writing to w.
func New(w io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: lvl,
	}))
}
