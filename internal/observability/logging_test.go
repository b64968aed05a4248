package observability

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestWrapSlogHandlerAddsRequestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(WrapSlogHandler(slog.NewTextHandler(&buf, nil)))

	ctx := WithRequestMetadata(context.Background(), "req-1", "/rest/instance/:type/:name")
	ctx = WithRequestIdentity(ctx, 1, "admin")
	logger.InfoContext(ctx, "fetched")

	out := buf.String()
	for _, want := range []string{"request_id=req-1", "route=/rest/instance/:type/:name"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
	if name, ok := UserNameFromContext(ctx); !ok || name != "admin" {
		t.Fatalf("expected admin in context, got %q", name)
	}
}

func TestWrapSlogHandlerAddsJobRunContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(WrapSlogHandler(slog.NewTextHandler(&buf, nil)))

	ctx := WithRequestIdentity(context.Background(), 1, "admin")
	ctx = WithJobRun(ctx, "GET_Washington", "run-42")
	logger.InfoContext(ctx, "job run finished")

	out := buf.String()
	for _, want := range []string{"user=admin", "run_id=run-42"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
	if job, ok := JobNameFromContext(ctx); !ok || job != "GET_Washington" {
		t.Fatalf("expected job name in context, got %q", job)
	}
}

func TestWrapSlogHandlerNilDiscards(t *testing.T) {
	logger := slog.New(WrapSlogHandler(nil))
	logger.Info("dropped")
}

func TestStartJobSpanWithoutProvider(t *testing.T) {
	ctx, span := StartJobSpan(context.Background(), "GET_Washington", "rest_call_service", "Washington")
	defer span.End()
	if ctx == nil {
		t.Fatal("expected context")
	}
	span.RecordError(nil)
}
