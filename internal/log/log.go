// Package log carries a zap logger through context.Context.
package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxkey string

const (
	loggerContextKey ctxkey = "logger"
)

func createGlobalLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build(zap.AddCallerSkip(1))
}

// Setup replaces the global zap logger with a development logger writing
// records at or above level to stderr. The returned func restores the
// previous global logger.
func Setup(level string) (func(), error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger, err := createGlobalLogger(lvl)
	if err != nil {
		return nil, err
	}
	return zap.ReplaceGlobals(logger), nil
}

// FromContext returns logger from context if set. Otherwise returns global logger.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return zap.L()
	}
	if logger, ok := ctx.Value(loggerContextKey).(*zap.Logger); ok {
		return logger
	}
	return zap.L()
}

// WithLogger returns context carrying logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// Into returns context with a new span.
func Into(ctx context.Context, span string) context.Context {
	return WithLogger(ctx, FromContext(ctx).Named(span))
}

// With appends fields to logger in context.
func With(ctx context.Context, args ...zap.Field) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

func Debug(ctx context.Context, msg string, args ...zap.Field) {
	FromContext(ctx).Debug(msg, args...)
}

func Info(ctx context.Context, msg string, args ...zap.Field) {
	FromContext(ctx).Info(msg, args...)
}

func Warn(ctx context.Context, msg string, args ...zap.Field) {
	FromContext(ctx).Warn(msg, args...)
}

func Error(ctx context.Context, msg string, args ...zap.Field) {
	FromContext(ctx).Error(msg, args...)
}
