package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// NewJSONRequest creates an HTTP request with the given value encoded as
// a JSON body. A nil body yields a request without a body.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	if body == nil {
		return httptest.NewRequest(method, target, nil)
	}

	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// DecodeJSON decodes a response body into v, failing the test on error.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()

	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response body %q: %v", rec.Body.String(), err)
	}
}

// AssertStatus checks the response status code.
func AssertStatus(t *testing.T, rec *httptest.ResponseRecorder, expected int) {
	t.Helper()

	if rec.Code != expected {
		t.Errorf("status code: got %d, want %d (body: %s)", rec.Code, expected, rec.Body.String())
	}
}

// AssertErrorMessage checks the standard error envelope in the response.
func AssertErrorMessage(t *testing.T, rec *httptest.ResponseRecorder, expected string) {
	t.Helper()

	var envelope struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	DecodeJSON(t, rec, &envelope)
	if envelope.Status != "error" {
		t.Errorf("envelope status: got %q, want %q", envelope.Status, "error")
	}
	if !strings.Contains(envelope.Message, expected) {
		t.Errorf("error message: got %q, want it to contain %q", envelope.Message, expected)
	}
}
