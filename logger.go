package lexgo

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/lexgo/core"
)

// Logger wraps slog.Logger with lexgo-specific context.
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

// WithSegment adds a segment field to the logger.
func (l *Logger) WithSegment(id core.SegmentID) *Logger {
	return &Logger{
		Logger: l.Logger.With("segment", uint64(id)),
	}
}

// LogCollect logs a collection pass.
func (l *Logger) LogCollect(ctx context.Context, segments, docs int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "collect failed",
			"segments", segments,
			"docs", docs,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "collect completed",
			"segments", segments,
			"docs", docs,
		)
	}
}

// LogReplay logs a cache replay.
func (l *Logger) LogReplay(ctx context.Context, docs int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "replay failed",
			"docs", docs,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "replay completed",
			"docs", docs,
		)
	}
}
