package epitome

import "context"

// Logger provides structured logging for workflow execution. The workflow
// only emits debug-level tracing; errors are returned, never logged.
type Logger interface {
	Debug(ctx context.Context, msg string, keysAndValues ...any)
	Info(ctx context.Context, msg string, keysAndValues ...any)
	Error(ctx context.Context, msg string, keysAndValues ...any)
}
