// Package metadata records where a request came from so audit log lines can
// carry the caller's address.
package metadata

import (
	"net"
	"net/http"
	"strings"

	"github.com/fridayblessings411-cell/AgroTour/pkg/requestcontext"
)

// ClientMetadata stores the client address in the request context.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithClientIP(r.Context(), ClientIPFromRequest(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientIPFromRequest prefers the first X-Forwarded-For hop, then X-Real-IP,
// then the host part of RemoteAddr.
func ClientIPFromRequest(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
