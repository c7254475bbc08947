// Package principal resolves the calling principal for write endpoints.
//
// The registry trusts the upstream gateway to have authenticated the caller;
// this middleware only parses and attaches the identity it forwards.
package principal

import (
	"log/slog"
	"net/http"

	"github.com/fridayblessings411-cell/AgroTour/pkg/domain"
	request "github.com/fridayblessings411-cell/AgroTour/pkg/platform/middleware/request"
	"github.com/fridayblessings411-cell/AgroTour/pkg/requestcontext"
)

// Header carries the caller principal.
const Header = "X-Principal"

// RequirePrincipal rejects requests without a well-formed X-Principal header.
func RequirePrincipal(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			p, err := domain.ParsePrincipal(r.Header.Get(Header))
			if err != nil {
				logger.DebugContext(ctx, "rejected request without valid principal",
					"request_id", request.GetRequestID(ctx),
					"error", err,
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "caller principal required")
				return
			}
			next.ServeHTTP(w, r.WithContext(requestcontext.WithPrincipal(ctx, p)))
		})
	}
}

func writeJSONError(w http.ResponseWriter, status int, code, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + code + `","error_description":"` + description + `"}`))
}
