package logger

import (
	"log/slog"
	"time"
)

// LogAction logs a session facade action.
func LogAction(name string, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "act"),
		slog.String("name", name),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Error("Action failed", append(attrs, slog.Any("error", err))...)
	} else {
		slog.Info("Action executed", attrs...)
	}
}

// LogStore logs a store transition and its result.
func LogStore(action string, result string) {
	slog.Debug("Transition applied",
		slog.String("type", "store"),
		slog.String("action", action),
		slog.String("status", result),
	)
}

// LogSystem logs system events.
func LogSystem(msg string, attrs ...any) {
	baseAttrs := []any{slog.String("type", "sys")}
	slog.Info(msg, append(baseAttrs, attrs...)...)
}

// LogError logs error events.
func LogError(msg string, err error, attrs ...any) {
	baseAttrs := []any{
		slog.String("type", "error"),
		slog.Any("error", err),
	}
	slog.Error(msg, append(baseAttrs, attrs...)...)
}
