package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "github.com/fridayblessings411-cell/AgroTour/pkg/domain-errors"
)

// NumericCoder is implemented by errors that carry a stable numeric code for
// API compatibility.
type NumericCoder interface {
	NumericCode() uint32
}

type errorBody struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
	Code        uint32 `json:"code,omitempty"`
}

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a domain error to an HTTP status and JSON error body.
// Internal errors never leak their description.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	body := errorBody{Error: string(code)}
	if code != dErrors.CodeInternal {
		var de *dErrors.Error
		if errors.As(err, &de) {
			body.Description = de.Message
		}
	}
	var nc NumericCoder
	if errors.As(err, &nc) {
		body.Code = nc.NumericCode()
	}
	WriteJSON(w, StatusFor(code), body)
}

// StatusFor returns the HTTP status for an error category.
func StatusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeInvalidInput, dErrors.CodeInvariantViolation:
		return http.StatusBadRequest
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodePaymentRequired:
		return http.StatusPaymentRequired
	case dErrors.CodeForbidden:
		return http.StatusForbidden
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeConflict:
		return http.StatusConflict
	case dErrors.CodeLimitExceeded:
		return http.StatusUnprocessableEntity
	case dErrors.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
