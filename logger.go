package molgo

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with molgo-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithStructure adds the structure name to the logger.
func (l *Logger) WithStructure(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("structure", name),
	}
}

// WithSelection adds the selection string to the logger.
func (l *Logger) WithSelection(input string) *Logger {
	return &Logger{
		Logger: l.Logger.With("selection", input),
	}
}

// LogSelect logs a selection evaluation.
func (l *Logger) LogSelect(input string, matches int, cached bool, err error) {
	if err != nil {
		l.Warn("selection failed",
			"selection", input,
			"error", err,
		)
	} else {
		l.Debug("selection evaluated",
			"selection", input,
			"matches", matches,
			"cached", cached,
		)
	}
}

// LogEdit logs a structural edit.
func (l *Logger) LogEdit(op string, atoms, residues, chains int) {
	l.Debug("structure edited",
		"op", op,
		"atoms", atoms,
		"residues", residues,
		"chains", chains,
	)
}
