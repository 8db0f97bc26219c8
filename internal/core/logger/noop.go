package logger

import "context"

// noopLogger drops everything. It is the global logger until Initialize runs, which keeps tests quiet.
type noopLogger struct{}

var _ Logger = (*noopLogger)(nil)

func (*noopLogger) Log(context.Context, LogEntry) {}

func (*noopLogger) Shutdown(context.Context) error { return nil }
