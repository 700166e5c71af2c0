// Package logger provides the structured logger built on log/slog.
//
// Handlers grab a request-scoped logger via WithCtx, which carries the
// request_id injected by the logging middleware:
//
//	log := logger.WithCtx(r.Context())
//	log.Error("create product", "error", err)
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/turboost/store/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

type ctxKey struct{}

// WithCtx returns the request-scoped logger stored by the logging
// middleware, or the base logger when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a pre-tagged *slog.Logger into ctx. Called by the
// logging middleware.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
