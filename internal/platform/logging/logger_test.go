package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerKeyValueArgs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	logger := fromZap(zap.New(core))

	logger.Info("ingest finished", "seasons", 3, "error", errors.New("boom"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["seasons"] != int64(3) {
		t.Fatalf("unexpected seasons field: %v", fields["seasons"])
	}
	if fields["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", fields["error"])
	}
}

func TestLoggerOddArgsAndNonStringKey(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	logger := fromZap(zap.New(core))

	logger.Warn("partial", 42, "value", "dangling")

	fields := logs.All()[0].ContextMap()
	if _, ok := fields["arg"]; !ok {
		t.Fatalf("non-string key should fall back to arg, got %v", fields)
	}
	if value, ok := fields["dangling"]; !ok || value != nil {
		t.Fatalf("dangling key should log a nil value, got %v", fields)
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var logger *Logger
	logger.Info("no-op")
	logger.ErrorContext(context.Background(), "no-op", "k", "v")
	if err := logger.Sync(); err != nil {
		t.Fatalf("nil logger Sync: %v", err)
	}
}

func TestSyncRunsOnce(t *testing.T) {
	t.Parallel()

	logger := NewNop()
	if err := logger.Sync(); err != nil {
		t.Fatalf("first Sync: %v", err)
	}
	if err := logger.Sync(); err != nil {
		t.Fatalf("second Sync should be a no-op: %v", err)
	}
}

func TestContextWithoutSpanAddsNoTraceFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	logger := fromZap(zap.New(core))

	logger.InfoContext(context.Background(), "plain")

	fields := logs.All()[0].ContextMap()
	if _, ok := fields["trace_id"]; ok {
		t.Fatal("trace_id should be absent without an active span")
	}
}
