// Package logging configures the process-wide slog default.
package logging

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"strings"
)

// Setup installs a JSON slog handler as the default logger. The minimum
// level comes from LOG_LEVEL (DEBUG, INFO, WARN, ERROR; default INFO), and
// records at ERROR or above carry a stack trace.
func Setup() {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     levelFromEnv(),
		AddSource: true,
	})
	slog.SetDefault(slog.New(&stackHandler{Handler: h}))
}

func levelFromEnv() slog.Level {
	switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Fatal logs at Error level and exits with code 1.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}

// stackHandler decorates ERROR+ records with the calling goroutine's stack.
type stackHandler struct {
	slog.Handler
}

func (h *stackHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		buf := make([]byte, 4096)
		n := runtime.Stack(buf, false)
		r.AddAttrs(slog.String("stacktrace", string(buf[:n])))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *stackHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &stackHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *stackHandler) WithGroup(name string) slog.Handler {
	return &stackHandler{Handler: h.Handler.WithGroup(name)}
}
