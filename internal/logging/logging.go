// Package logging configures the process-wide slog logger from the --debug count.
package logging

import (
	"io"
	"log/slog"
)

// Level maps a --debug count to a slog level. Zero keeps debug records quiet.
func Level(debug int) slog.Level {
	if debug > 0 {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger returns a text logger writing to w at the level selected by debug.
func NewLogger(w io.Writer, debug int) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     Level(debug),
		AddSource: debug >= 2,
	}))
}

// Setup installs NewLogger(w, debug) as the default logger.
func Setup(w io.Writer, debug int) {
	slog.SetDefault(NewLogger(w, debug))
}

// Banner returns the fixed message printed for a --debug count, or "" for zero.
func Banner(debug int) string {
	switch debug {
	case 0:
		return ""
	case 1:
		return "Debug level 1"
	case 2:
		return "Debug level 2"
	default:
		return "Don't be crazy"
	}
}
