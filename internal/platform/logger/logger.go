package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a structured JSON logger using slog at the given level.
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter builds the same logger against an arbitrary sink, for tests.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}
	return slog.New(slog.NewJSONHandler(w, opts)).With("service", "cobalt-api")
}
