package ports

import (
	"context"

	"github.com/google/uuid"
)

// Logger defines the structured logging contract shared by the CLI and the
// TUI. Calls take key/value pairs and must be safe for concurrent use.
// Implementations enrich entries with the session correlation ID found in ctx.
// Common fields:
//   - correlation_id (UUIDv4, generated once per CLI invocation)
//   - component (cli, navigator, screen name)
//   - route for navigation events
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

type correlationIDKey struct{}

// WithCorrelationID attaches the provided correlation ID to the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// GetCorrelationID extracts a correlation ID from context. It returns an empty
// string when none has been set.
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateCorrelationID produces a new UUIDv4 string. CLI entry points call
// this once per command execution.
func GenerateCorrelationID() string {
	return uuid.NewString()
}
