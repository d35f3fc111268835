// Package logger provides a structured, levelled logger built on log/slog.
//
// Handlers switch by environment: human-readable text in development, JSON in
// production. An optional MongoDB sink (see mongo_handler.go) can be attached
// at boot so every log line is queryable after the fact.
//
// Handlers downstream of HTTP middleware should prefer WithCtx so that the
// request_id is attached automatically:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("order created", "order_id", order.ID)
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/cartinhas/config"
)

var L *slog.Logger

func init() {
	opts := &slog.HandlerOptions{}

	var handler slog.Handler
	switch config.AppEnv() {
	case "production", "prod":
		opts.Level = slog.LevelInfo
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// Attach replaces the active handler with a fan-out of the current handler
// and h. Used at boot to add the Mongo sink without losing stdout.
func Attach(h slog.Handler) {
	L = slog.New(teeHandler{primary: L.Handler(), secondary: h})
	slog.SetDefault(L)
}

// teeHandler duplicates records to two handlers. Errors from the secondary
// sink are ignored; logging must never fail the primary path.
type teeHandler struct {
	primary   slog.Handler
	secondary slog.Handler
}

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return t.primary.Enabled(ctx, level) || t.secondary.Enabled(ctx, level)
}

func (t teeHandler) Handle(ctx context.Context, r slog.Record) error {
	err := t.primary.Handle(ctx, r)
	_ = t.secondary.Handle(ctx, r.Clone())
	return err
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return teeHandler{primary: t.primary.WithAttrs(attrs), secondary: t.secondary.WithAttrs(attrs)}
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	return teeHandler{primary: t.primary.WithGroup(name), secondary: t.secondary.WithGroup(name)}
}

// ── Context-aware logger ─────────────────────────────────────────────────────

type ctxKey struct{}

// WithCtx returns the per-request *slog.Logger stored by the Logger
// middleware, or the base logger when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a pre-tagged *slog.Logger into ctx. Called by the
// Logger middleware; application code rarely needs it.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// ── Short-hand helpers ───────────────────────────────────────────────────────

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
