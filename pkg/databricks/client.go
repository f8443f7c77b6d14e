package databricks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/JustTryAI/databricks-mcp-server/internal/metrics"
	"github.com/JustTryAI/databricks-mcp-server/internal/version"
	"github.com/JustTryAI/databricks-mcp-server/pkg/logger"
)

const maxErrorBodyBytes = 4 * 1024

// Client is an authenticated Databricks REST API client. It owns retry,
// backoff and rate-limit handling and is safe for concurrent use; the
// underlying http.Client connection pool and the rate-limit cache are the
// only shared mutable state.
type Client struct {
	baseURL        string
	token          string
	httpClient     *http.Client
	maxRetries     int
	backoffBase    time.Duration
	backoffCap     time.Duration
	requestTimeout time.Duration

	limits rateLimitCache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRetryPolicy sets the number of retries after the first attempt and the
// exponential backoff base and cap.
func WithRetryPolicy(maxRetries int, base, cap time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.backoffBase = base
		c.backoffCap = cap
	}
}

// WithRequestTimeout bounds a single call including all retries. It applies
// only when the caller's context carries no deadline of its own.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.requestTimeout = timeout
	}
}

// NewClient creates a client for the given workspace host and bearer token.
func NewClient(host, token string, options ...Option) *Client {
	client := &Client{
		baseURL:        strings.TrimSuffix(host, "/"),
		token:          token,
		maxRetries:     3,
		backoffBase:    500 * time.Millisecond,
		backoffCap:     10 * time.Second,
		requestTimeout: 60 * time.Second,
	}

	for _, option := range options {
		option(client)
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{}
	}

	return client
}

// Do performs one API call with the client's retry policy and returns the
// decoded JSON response. Transient failures (network errors, 429, 5xx) are
// retried with exponential backoff; a server retry-after hint overrides the
// computed backoff for the next attempt only. Non-transient failures and
// exhausted retries surface as *APIError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	if _, ok := ctx.Deadline(); !ok && c.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.requestTimeout)
		defer cancel()
	}

	class := endpointClass(path)
	if err := c.awaitRateLimit(ctx, class); err != nil {
		return nil, err
	}

	var (
		parsed   any
		attempts int
	)
	err := retry.Do(
		func() error {
			attempts++
			logger.LogAPIRequest(method, path, attempts)
			result, err := c.doOnce(ctx, method, path, query, body, class)
			if err != nil {
				return err
			}
			parsed = result
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(c.maxRetries)+1),
		retry.RetryIf(IsTransient),
		retry.DelayType(c.retryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(_ uint, _ error) {
			metrics.APIRetries.Inc()
		}),
	)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			apiErr.Attempts = attempts
			logger.LogAPIResult(method, path, apiErr.StatusCode, attempts, apiErr)
			return nil, apiErr
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			logger.LogAPIResult(method, path, 0, attempts, err)
			return nil, err
		}
		wrapped := &APIError{StatusCode: 0, Message: err.Error(), Attempts: attempts}
		logger.LogAPIResult(method, path, 0, attempts, wrapped)
		return nil, wrapped
	}

	logger.LogAPIResult(method, path, http.StatusOK, attempts, nil)
	return parsed, nil
}

// retryDelay computes the wait before the next attempt: exponential backoff
// doubled per attempt and capped, unless the last response carried an
// explicit retry-after hint, which wins for that attempt.
func (c *Client) retryDelay(n uint, err error, _ *retry.Config) time.Duration {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.RetryAfter > 0 {
		return apiErr.RetryAfter
	}
	delay := c.backoffBase << n
	if delay > c.backoffCap || delay <= 0 {
		delay = c.backoffCap
	}
	return delay
}

// awaitRateLimit holds the caller while a previously seen retry-after hint
// for the endpoint class is still active.
func (c *Client) awaitRateLimit(ctx context.Context, class string) error {
	hold := c.limits.hold(class)
	if hold <= 0 {
		return nil
	}
	timer := time.NewTimer(hold)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Client) doOnce(ctx context.Context, method, path string, query url.Values, body any, class string) (any, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	urlStr := c.baseURL + path
	if len(query) > 0 {
		urlStr += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, urlStr, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", "databricks-mcp-server/"+version.Version)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(resp),
			RetryAfter: parseRetryAfter(resp),
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			metrics.RateLimitHits.Inc()
			c.limits.note(class, apiErr.RetryAfter)
		}
		return nil, apiErr
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "failed to read response body"}
	}
	if len(respBody) == 0 {
		return map[string]any{}, nil
	}

	var parsed any
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "response is not valid JSON"}
	}
	return parsed, nil
}

// extractErrorMessage pulls a human-readable message out of an error body.
// Databricks errors look like {"error_code": ..., "message": ...}; SCIM
// endpoints use {"detail": ...}. Raw bodies are truncated and credentials
// never echo here because only server-supplied fields are used.
func extractErrorMessage(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil || len(body) == 0 {
		return http.StatusText(resp.StatusCode)
	}

	var payload struct {
		ErrorCode string `json:"error_code"`
		Message   string `json:"message"`
		Detail    string `json:"detail"`
	}
	if json.Unmarshal(body, &payload) == nil {
		switch {
		case payload.ErrorCode != "" && payload.Message != "":
			return payload.ErrorCode + ": " + payload.Message
		case payload.Message != "":
			return payload.Message
		case payload.Detail != "":
			return payload.Detail
		}
	}
	return http.StatusText(resp.StatusCode)
}

// parseRetryAfter reads a Retry-After header in seconds form. Zero means no
// hint was supplied.
func parseRetryAfter(resp *http.Response) time.Duration {
	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
