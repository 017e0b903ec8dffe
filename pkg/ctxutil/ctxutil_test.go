package ctxutil

import (
	"context"
	"log/slog"
	"testing"
)

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Errorf("RequestIDFromCtx = %q, want %q", got, "req-123")
	}
}

func TestRequestID_Missing(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("RequestIDFromCtx = %q, want empty", got)
	}
}

func TestRequestIDAttr(t *testing.T) {
	t.Parallel()

	attr := RequestIDAttr(WithRequestID(context.Background(), "abc"))
	if attr.Key != "request_id" || attr.Value.String() != "abc" {
		t.Errorf("attr = %v", attr)
	}

	empty := RequestIDAttr(context.Background())
	if !empty.Equal(slog.Attr{}) {
		t.Errorf("expected empty attr, got %v", empty)
	}
}
