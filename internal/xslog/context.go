package xslog

import (
	"context"
	"log/slog"
)

type ctxLogger struct{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLogger{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(ctxLogger{}).(*slog.Logger)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// WithAttrs stores the ctx logger extended with attrs. Goroutines started
// with the returned context log under those attributes.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	return WithLogger(ctx, FromContext(ctx).With(args...))
}
