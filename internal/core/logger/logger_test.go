package logger

import (
	"context"
	"errors"
	"testing"
	"time"
)

type recordingLogger struct {
	entries []LogEntry
}

func (r *recordingLogger) Log(_ context.Context, entry LogEntry) {
	r.entries = append(r.entries, entry)
}

func (r *recordingLogger) Shutdown(context.Context) error { return nil }

func TestGlobalHelpers(t *testing.T) {
	rec := &recordingLogger{}
	previous := SetLogger(rec)
	t.Cleanup(func() { SetLogger(previous) })

	ctx := context.Background()
	boom := errors.New("boom")

	Debug(ctx, "debug", nil)
	Info(ctx, "info", map[string]any{"k": "v"})
	Warn(ctx, "warn", nil)
	Error(ctx, "error", boom, nil)

	want := []LogLevel{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}
	if len(rec.entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(rec.entries))
	}
	for i, level := range want {
		if rec.entries[i].Level != level {
			t.Errorf("entry %d: expected level %s, got %s", i, level, rec.entries[i].Level)
		}
		if rec.entries[i].Timestamp.IsZero() {
			t.Errorf("entry %d: expected timestamp to be set", i)
		}
	}
	if rec.entries[1].Attributes["k"] != "v" {
		t.Fatalf("expected attribute k=v, got %v", rec.entries[1].Attributes)
	}
	if !errors.Is(rec.entries[3].Error, boom) {
		t.Fatalf("expected error %v, got %v", boom, rec.entries[3].Error)
	}
}

func TestNoopLoggerIsDefault(t *testing.T) {
	var l Logger = &noopLogger{}
	l.Log(context.Background(), LogEntry{Level: LogLevelInfo, Message: "dropped"})
	if err := l.Shutdown(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestInitialize_Stdout(t *testing.T) {
	previous := SetLogger(&noopLogger{})
	t.Cleanup(func() { SetLogger(previous) })

	if err := Initialize("", "apiweb-test", false); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := globalLogger.(*StdoutLogger); !ok {
		t.Fatalf("expected *StdoutLogger, got %T", globalLogger)
	}
}

func TestRequestIDAttribute(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestID(ctx); got != "req-1" {
		t.Fatalf("expected 'req-1', got %q", got)
	}

	original := map[string]any{"k": "v"}
	attrs := entryAttributes(ctx, LogEntry{Attributes: original})
	if attrs["request_id"] != "req-1" || attrs["k"] != "v" {
		t.Fatalf("unexpected attributes %v", attrs)
	}
	if _, leaked := original["request_id"]; leaked {
		t.Fatal("caller's attribute map was modified")
	}

	plain := entryAttributes(context.Background(), LogEntry{Attributes: original})
	if _, ok := plain["request_id"]; ok {
		t.Fatalf("expected no request_id without a tagged context, got %v", plain)
	}
}

func TestKeyValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "x", "x"},
		{"error", errors.New("boom"), "boom"},
		{"duration in ms", 1500 * time.Millisecond, "1500"},
		{"fallback", []int{1, 2}, "[1 2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := keyValue("key", tt.value)
			if kv.Key != "key" {
				t.Fatalf("expected key 'key', got %q", kv.Key)
			}
			if got := kv.Value.String(); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFatalExits(t *testing.T) {
	rec := &recordingLogger{}
	previous := SetLogger(rec)
	code := -1
	previousExit := exit
	exit = func(c int) { code = c }
	t.Cleanup(func() {
		SetLogger(previous)
		exit = previousExit
	})

	Fatal(context.Background(), "fatal", errors.New("boom"), nil)

	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if len(rec.entries) != 1 || rec.entries[0].Level != LogLevelFatal {
		t.Fatalf("expected one fatal entry, got %+v", rec.entries)
	}
}
