package testutil

import (
	"net/http"
	"testing"
	"time"
)

// WaitForHTTP blocks until baseURL+path answers 200, failing the test
// after the timeout.
func WaitForHTTP(t *testing.T, baseURL, path string, timeout time.Duration) {
	t.Helper()
	client := &http.Client{Timeout: time.Second}
	Eventually(t, timeout, 25*time.Millisecond, func() bool {
		resp, err := client.Get(baseURL + path)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, "server at "+baseURL+path+" did not become ready")
}
