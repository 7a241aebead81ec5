package geograph

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with geograph-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithField adds the grouping field to the logger.
func (l *Logger) WithField(field string) *Logger {
	return &Logger{
		Logger: l.Logger.With("field", field),
	}
}

// LogGroups logs the result of the group indexing stage.
func (l *Logger) LogGroups(ctx context.Context, features, groups int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "group indexing failed",
			"features", features,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "group indexing completed",
			"features", features,
			"groups", groups,
		)
	}
}

// LogDiscover logs the adjacency discovery stage.
func (l *Logger) LogDiscover(ctx context.Context, pairs, edges int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "adjacency discovery failed",
			"pairs", pairs,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "adjacency discovery completed",
			"pairs", pairs,
			"edges", edges,
			"elapsed", elapsed,
		)
	}
}

// LogJoin logs the attribute join stage.
func (l *Logger) LogJoin(ctx context.Context, vertices, fields int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "attribute join failed",
			"vertices", vertices,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "attribute join completed",
			"vertices", vertices,
			"fields", fields,
		)
	}
}

// LogSnapshot logs the export stage.
func (l *Logger) LogSnapshot(ctx context.Context, path string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"path", path,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot saved",
			"path", path,
		)
	}
}
