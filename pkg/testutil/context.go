package testutil

import (
	"net/http"

	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/middleware/admin"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/middleware/principal"
)

// AsPrincipal sets the caller header the principal middleware reads.
func AsPrincipal(req *http.Request, p string) *http.Request {
	req.Header.Set(principal.Header, p)
	return req
}

// AsAdmin sets the operator token header.
func AsAdmin(req *http.Request, token string) *http.Request {
	req.Header.Set(admin.HeaderAdminToken, token)
	return req
}
