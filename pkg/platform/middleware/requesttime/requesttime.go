// Package requesttime pins a single wall-clock instant per HTTP request so
// audit records and log lines emitted while serving it agree on "now".
package requesttime

import (
	"net/http"
	"time"

	"github.com/fridayblessings411-cell/AgroTour/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now().UTC())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
