package internal

import (
	"context"
	"errors"
	"log/slog"
)

// fanOutHandler duplicates every record to a set of slog handlers.
type fanOutHandler struct {
	handlers []slog.Handler
}

func newFanOutHandler(handlers ...slog.Handler) *fanOutHandler {
	return &fanOutHandler{
		handlers: handlers,
	}
}

func (h *fanOutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (h *fanOutHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error

	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}

		if err := handler.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (h *fanOutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for idx, handler := range h.handlers {
		handlers[idx] = handler.WithAttrs(attrs)
	}

	return &fanOutHandler{handlers: handlers}
}

func (h *fanOutHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for idx, handler := range h.handlers {
		handlers[idx] = handler.WithGroup(name)
	}

	return &fanOutHandler{handlers: handlers}
}
