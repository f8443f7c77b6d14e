package databricks

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// APIError represents a Databricks REST API failure. For transient failures
// it is only surfaced once the retry budget is exhausted; Attempts then
// records how many requests were made.
type APIError struct {
	StatusCode int
	Message    string
	Attempts   int
	// RetryAfter carries an explicit server hint, when present, that
	// overrides the computed backoff for the next attempt.
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	if e.Attempts > 1 {
		return fmt.Sprintf("databricks api error (HTTP %d after %d attempts): %s", e.StatusCode, e.Attempts, e.Message)
	}
	return fmt.Sprintf("databricks api error (HTTP %d): %s", e.StatusCode, e.Message)
}

// Transient reports whether the failure class is eligible for retry:
// rate limiting or a server-side error.
func (e *APIError) Transient() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// IsTransient classifies an error as retryable. Network-level failures are
// transient; API errors delegate to their status code; everything else,
// including context cancellation, is terminal.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Transient()
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	// http.Client wraps transport errors in *url.Error which implements
	// net.Error, so anything left is a local failure such as a marshal
	// error. Do not retry those.
	return false
}
