// Package testutil provides shared helpers for handler and scenario tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewJSONRequest creates an HTTP request whose body is body marshaled to JSON.
func NewJSONRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// DoRequest executes a request against a handler and returns the recorder.
func DoRequest(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// UnmarshalResponse decodes the response body into T.
func UnmarshalResponse[T any](t *testing.T, rr *httptest.ResponseRecorder) *T {
	t.Helper()
	var result T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result), "failed to unmarshal response")
	return &result
}

// ErrorResponse mirrors the JSON error body written by httputil.WriteError.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
	Code        uint32 `json:"code"`
}

// AssertStatusAndError checks the status and the error category string.
func AssertStatusAndError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) *ErrorResponse {
	t.Helper()
	assert.Equal(t, expectedStatus, rr.Code, "unexpected status code: %s", rr.Body.String())
	resp := UnmarshalResponse[ErrorResponse](t, rr)
	assert.Equal(t, expectedError, resp.Error, "unexpected error code")
	return resp
}
