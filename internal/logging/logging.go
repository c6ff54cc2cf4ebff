// Package logging configures the process-wide slog logger for the command.
package logging

import (
	"io"
	"log/slog"
	"os"
)

type handlerType int

const (
	handlerText handlerType = iota
	handlerJSON
)

func setup(debug bool, w io.Writer, ht handlerType) {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch ht {
	case handlerJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// Setup installs a text logger writing to w (os.Stderr if nil).
// Debug lowers the level from Info to Debug.
func Setup(debug bool, w io.Writer) {
	setup(debug, w, handlerText)
}

// SetupJSON is Setup with JSON output.
func SetupJSON(debug bool, w io.Writer) {
	setup(debug, w, handlerJSON)
}
