package log

import (
	"context"
	"path/filepath"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestInit_InvalidLevelFallsBack(t *testing.T) {
	l := Init(ZapConfig{Level: "loud", Mode: "debug", Encoding: "console"})
	if l == nil {
		t.Fatal("expected logger, got nil")
	}
	// Must not panic.
	l.Infof(WithRequestID(context.Background(), "abc"), "hello %s", "world")
}

func TestInit_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := Init(ZapConfig{
		Level:       "debug",
		Mode:        ModeProduction,
		Encoding:    EncodingJSON,
		FileEnabled: true,
		Filename:    path,
	})
	l.Warn(context.Background(), "written to file")
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Error(context.Background(), "discarded")
	l.Debugf(context.Background(), "discarded %d", 1)
}
