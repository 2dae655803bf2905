package addrset

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with address-set specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// It is the default for New.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// LogBuild logs the outcome of constructing an AddressSet.
func (l *Logger) LogBuild(s *AddressSet, storage Storage, err error) {
	if err != nil {
		l.Error("address set layout rejected",
			"storage", storage.String(),
			"error", err,
		)
		return
	}
	l.Debug("address set created",
		"segments", s.Segments(),
		"quantum", s.Quantum(),
		"slots", s.Slots(),
		"bytes", s.SizeInBytes(),
		"storage", storage.String(),
	)
}
