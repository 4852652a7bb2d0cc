// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values. Middleware sets them; services read them without
// importing net/http.
package requestcontext

import (
	"context"
	"time"
)

// Context key types (unexported for encapsulation).
type (
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// Exported context keys for tests that need context.WithValue directly.
var (
	ContextKeyRequestID   = requestIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
)

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() for non-HTTP contexts (workers, CLI, tests).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context. Useful for service unit
// tests that don't run the full HTTP middleware chain and for workers that
// need consistent time within a batch.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
