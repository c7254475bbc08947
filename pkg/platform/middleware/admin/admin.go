package admin

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	request "github.com/fridayblessings411-cell/AgroTour/pkg/platform/middleware/request"
)

// HeaderAdminToken carries the operator token for registry administration.
const HeaderAdminToken = "X-Admin-Token"

// RequireAdminToken guards operator endpoints. An empty expected token
// disables the admin surface entirely.
func RequireAdminToken(expectedToken string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if expectedToken == "" {
				logger.WarnContext(ctx, "admin endpoint called with admin surface disabled",
					"request_id", request.GetRequestID(ctx),
					"path", r.URL.Path,
				)
				writeUnauthorized(w)
				return
			}
			token := r.Header.Get(HeaderAdminToken)
			if subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
				logger.WarnContext(ctx, "admin token mismatch",
					"request_id", request.GetRequestID(ctx),
					"path", r.URL.Path,
				)
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"admin token required"}`))
}
