package log_test

import (
	"context"
	"testing"

	"fanhub-webhooks/pkg/log"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-123")
	if got := log.RequestID(ctx); got != "req-123" {
		t.Errorf("expected req-123, got %q", got)
	}
	if got := log.RequestID(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	for _, cfg := range []log.ZapConfig{
		{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true},
		{Level: "bogus", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
	} {
		l := log.Init(cfg)
		l.Infof(log.WithRequestID(context.Background(), "r1"), "hello %s", "world")
	}
	log.NewNop().Error(context.Background(), "discarded")
}
