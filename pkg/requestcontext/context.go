// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values.
//
// Middleware sets the values; services and handlers read them without importing
// net/http concerns:
//
//	caller := requestcontext.Principal(ctx)
//	requestID := requestcontext.RequestID(ctx)
//	now := requestcontext.Now(ctx)
package requestcontext

import (
	"context"
	"time"

	"github.com/fridayblessings411-cell/AgroTour/pkg/domain"
)

type (
	principalKey   struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
	clientIPKey    struct{}
)

// Exported context keys for tests that need context.WithValue directly.
var (
	ContextKeyPrincipal   = principalKey{}
	ContextKeyRequestID   = requestIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
	ContextKeyClientIP    = clientIPKey{}
)

// Principal returns the authenticated caller, or the zero principal if unset.
func Principal(ctx context.Context) domain.Principal {
	if p, ok := ctx.Value(ContextKeyPrincipal).(domain.Principal); ok {
		return p
	}
	return ""
}

// WithPrincipal injects the authenticated caller.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, ContextKeyPrincipal, p)
}

// RequestID retrieves the request correlation id.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request correlation id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// Now retrieves the request-scoped wall time.
// Falls back to time.Now() outside HTTP requests (workers, tests).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a fixed wall time, mostly for tests.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}

// ClientIP returns the caller's network address as seen by the server.
func ClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(ContextKeyClientIP).(string); ok {
		return ip
	}
	return ""
}

func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ContextKeyClientIP, ip)
}
