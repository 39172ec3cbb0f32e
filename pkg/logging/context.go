package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type contextKey int

const (
	loggerKey contextKey = iota
	runIDKey
)

// WithLogger stores logger in ctx. A nil logger stores the default.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx, or the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
			return logger
		}
	}
	return Default()
}

// WithRunID records the identifier of one verify run and tags the
// context logger with it.
func WithRunID(ctx context.Context, runID string) context.Context {
	return tag(context.WithValue(ctx, runIDKey, runID), "run_id", runID)
}

// RunID returns the run identifier stored by WithRunID, if any.
func RunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// WithFile tags the context logger with the description file in hand.
func WithFile(ctx context.Context, path string) context.Context {
	return tag(ctx, "file", path)
}

// WithAddress tags the context logger with the jetton master address.
func WithAddress(ctx context.Context, address string) context.Context {
	return tag(ctx, "address", address)
}

func tag(ctx context.Context, key, value string) context.Context {
	logger := FromContext(ctx).With().Str(key, value).Logger()
	return WithLogger(ctx, &logger)
}
