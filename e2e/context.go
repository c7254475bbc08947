package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TestContext drives a running registry over HTTP and remembers the last
// response for assertion steps.
type TestContext struct {
	BaseURL    string
	AdminToken string

	client    *http.Client
	principal string

	status int
	body   []byte
}

func NewTestContext(baseURL, adminToken string) *TestContext {
	return &TestContext{
		BaseURL:    baseURL,
		AdminToken: adminToken,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Reset clears per-scenario state.
func (tc *TestContext) Reset() {
	tc.principal = ""
	tc.status = 0
	tc.body = nil
}

func (tc *TestContext) ActAs(principal string) {
	tc.principal = principal
}

func (tc *TestContext) GET(path string, headers map[string]string) error {
	return tc.do(http.MethodGet, path, nil, headers)
}

func (tc *TestContext) POST(path string, body any) error {
	return tc.do(http.MethodPost, path, body, nil)
}

func (tc *TestContext) PUT(path string, body any, headers map[string]string) error {
	return tc.do(http.MethodPut, path, body, headers)
}

func (tc *TestContext) AdminHeaders() map[string]string {
	return map[string]string{"X-Admin-Token": tc.AdminToken}
}

func (tc *TestContext) StatusCode() int {
	return tc.status
}

// GetResponseField returns a top-level field of the last JSON response.
func (tc *TestContext) GetResponseField(field string) (any, error) {
	var m map[string]any
	if err := json.Unmarshal(tc.body, &m); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w (body: %s)", err, tc.body)
	}
	v, ok := m[field]
	if !ok {
		return nil, fmt.Errorf("response has no field %q (body: %s)", field, tc.body)
	}
	return v, nil
}

func (tc *TestContext) do(method, path string, body any, headers map[string]string) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, tc.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.principal != "" {
		req.Header.Set("X-Principal", tc.principal)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	tc.body, err = io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	tc.status = resp.StatusCode
	return nil
}
