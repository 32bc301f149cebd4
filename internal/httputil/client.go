package httputil

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds every outbound provider call. A call exceeding it
// surfaces as a provider failure, not a hung request.
const DefaultTimeout = 10 * time.Second

// NewClient returns an HTTP client with the given timeout, falling back
// to DefaultTimeout when the value is not positive.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
	}
}
