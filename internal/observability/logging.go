package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// contextHandler copies request, user, job run and trace identifiers from
// the record's context onto every log line.
type contextHandler struct {
	next slog.Handler
}

// WrapSlogHandler returns next decorated with context fields. A nil next
// discards output.
func WrapSlogHandler(next slog.Handler) slog.Handler {
	if next == nil {
		next = slog.NewTextHandler(io.Discard, nil)
	}
	return &contextHandler{next: next}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, record slog.Record) error {
	record.AddAttrs(contextAttrs(ctx)...)
	return h.next.Handle(ctx, record)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs)}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name)}
}

func contextAttrs(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	attrs := make([]slog.Attr, 0, 6)
	if requestID, ok := RequestIDFromContext(ctx); ok {
		attrs = append(attrs, slog.String("request_id", requestID))
	}
	if route, ok := RouteFromContext(ctx); ok {
		attrs = append(attrs, slog.String("route", route))
	}
	if user, ok := UserNameFromContext(ctx); ok {
		attrs = append(attrs, slog.String("user", user))
	}
	if runID, ok := RunIDFromContext(ctx); ok {
		attrs = append(attrs, slog.String("run_id", runID))
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		attrs = append(attrs,
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}
	return attrs
}
