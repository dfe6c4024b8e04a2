package helpers

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

// DecodeJSON decodes a response body into out, failing the test on error.
func DecodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
}

// ReadBody drains a response body as a string for assertions on raw
// payloads (file downloads).
func ReadBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	return string(b)
}

// SessionCookie extracts the session cookie from a login response, failing
// the test when none was set.
func SessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			return c
		}
	}
	t.Fatal("No session_id cookie in response")
	return nil
}
