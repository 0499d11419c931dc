package logging

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// MultiHandler fans records out to several handlers, such as a terminal
// handler plus a JSON file handler.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler creates a MultiHandler over the given handlers.
func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Enabled reports whether any underlying handler accepts the level.
func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle passes the record to every enabled handler. All handlers are
// attempted; the first failure is reported.
func (m *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range m.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = errors.Wrap(err, "dispatching log record")
		}
	}
	return firstErr
}

// WithAttrs applies the attributes to every underlying handler.
func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return m.apply(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

// WithGroup applies the group to every underlying handler.
func (m *MultiHandler) WithGroup(name string) slog.Handler {
	return m.apply(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (m *MultiHandler) apply(f func(slog.Handler) slog.Handler) slog.Handler {
	next := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		next[i] = f(h)
	}
	return NewMultiHandler(next...)
}
