// Package request carries per-request correlation identifiers through the
// middleware chain.
package request

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/fridayblessings411-cell/AgroTour/pkg/requestcontext"
)

// HeaderRequestID is echoed back on every response.
const HeaderRequestID = "X-Request-ID"

const maxRequestIDLength = 128

// RequestID reuses a caller supplied X-Request-ID or mints a new one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(requestcontext.WithRequestID(r.Context(), id)))
	})
}

// GetRequestID returns the request id from context.
func GetRequestID(ctx context.Context) string {
	return requestcontext.RequestID(ctx)
}
