package provgraph

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/provgraph/core"
)

// Logger wraps slog.Logger with provgraph-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithPath adds a path id field to the logger.
func (l *Logger) WithPath(id core.PathID) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", id),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogChainInsert logs the insertion of one dependency chain. Callers attach
// the path id with WithPath.
func (l *Logger) LogChainInsert(ctx context.Context, length int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "chain insert failed",
			"length", length,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "chain inserted",
			"length", length,
		)
	}
}

// LogBulkInsert logs the outcome of a bulk insertion. Callers attach the
// number of chains with WithCount.
func (l *Logger) LogBulkInsert(ctx context.Context, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "bulk insert completed with failures",
			"failed", failed,
		)
	} else {
		l.InfoContext(ctx, "bulk insert completed")
	}
}

// LogAmbiguous logs a continuation that matched more than one path.
func (l *Logger) LogAmbiguous(ctx context.Context, candidates []core.PathID) {
	l.WarnContext(ctx, "ambiguous path continuation",
		"candidates", candidates,
	)
}

// LogWalk logs a (possibly parallel) path walk.
func (l *Logger) LogWalk(ctx context.Context, paths int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "walk failed",
			"paths", paths,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "walk completed",
			"paths", paths,
		)
	}
}

// LogIndexDeclared logs the declaration of a secondary index.
func (l *Logger) LogIndexDeclared(ctx context.Context, key string, backfilled int) {
	l.DebugContext(ctx, "index declared",
		"key", key,
		"vertices", backfilled,
	)
}
