// Package requestcontext carries request-scoped values: the request ID, the
// authenticated identity, and an injectable clock. All values are set once per
// request and never mutated afterwards.
package requestcontext

import (
	"context"
	"time"

	id "atende/pkg/domain"
)

type (
	requestIDKey struct{}
	timeKey      struct{}
	userIDKey    struct{}
	tenantIDKey  struct{}
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the request ID, or "" when none was set.
func RequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// WithTime pins the clock for this context. Used by tests to exercise
// time-dependent behavior such as token expiry.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, timeKey{}, t)
}

// Now returns the pinned time when one was injected, otherwise the wall clock.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(timeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithIdentity stores the verified identity in the context. Only the
// authorization gate calls this; handlers and services read it back and must
// never derive a tenant from anywhere else on protected paths.
func WithIdentity(ctx context.Context, userID id.UserID, tenantID id.TenantID) context.Context {
	ctx = context.WithValue(ctx, userIDKey{}, userID)
	return context.WithValue(ctx, tenantIDKey{}, tenantID)
}

// UserID returns the verified user ID, or the zero value when unauthenticated.
func UserID(ctx context.Context) id.UserID {
	if v, ok := ctx.Value(userIDKey{}).(id.UserID); ok {
		return v
	}
	return id.UserID{}
}

// TenantID returns the verified tenant ID, or "" when unauthenticated.
func TenantID(ctx context.Context) id.TenantID {
	if v, ok := ctx.Value(tenantIDKey{}).(id.TenantID); ok {
		return v
	}
	return ""
}
