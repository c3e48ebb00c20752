package logger

import (
	"io"
	"log/slog"
	"os"
)

var defaultLogger *slog.Logger

// Init sets the process-wide logger: human-readable text in development or
// with debug on, JSON otherwise.
func Init(env string, debug bool) {
	defaultLogger = New(os.Stdout, env, debug)
	slog.SetDefault(defaultLogger)
}

func New(w io.Writer, env string, debug bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	if debug || env == "development" {
		if debug {
			opts.Level = slog.LevelDebug
		}
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Default() *slog.Logger {
	if defaultLogger == nil {
		defaultLogger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	}
	return defaultLogger
}

// With returns the default logger tagged with the given attributes.
func With(args ...any) *slog.Logger {
	return Default().With(args...)
}
