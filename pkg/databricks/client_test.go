package databricks

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRoundTripper is used to mock HTTP responses for testing
type mockRoundTripper struct {
	calls     atomic.Int32
	roundTrip func(call int, req *http.Request) (*http.Response, error)
}

func (m *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	call := int(m.calls.Add(1))
	return m.roundTrip(call, req)
}

func newTestClient(rt *mockRoundTripper, options ...Option) *Client {
	options = append([]Option{
		WithHTTPClient(&http.Client{Transport: rt}),
		WithRetryPolicy(3, time.Millisecond, 5*time.Millisecond),
	}, options...)
	return NewClient("https://example.cloud.databricks.com", "dapi-secret-token", options...)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestDoSuccess(t *testing.T) {
	var gotReq *http.Request
	rt := &mockRoundTripper{roundTrip: func(call int, req *http.Request) (*http.Response, error) {
		gotReq = req
		return jsonResponse(http.StatusOK, `{"clusters": [{"cluster_id": "abc"}]}`), nil
	}}
	client := newTestClient(rt)

	query := url.Values{}
	query.Set("cluster_id", "abc")
	result, err := client.Do(context.Background(), http.MethodGet, "/api/2.0/clusters/get", query, nil)
	require.NoError(t, err)

	obj, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, obj, "clusters")

	assert.Equal(t, "Bearer dapi-secret-token", gotReq.Header.Get("Authorization"))
	assert.Equal(t, "cluster_id=abc", gotReq.URL.RawQuery)
	assert.Equal(t, int32(1), rt.calls.Load())
}

func TestDoSendsJSONBody(t *testing.T) {
	var gotBody string
	var gotContentType string
	rt := &mockRoundTripper{roundTrip: func(call int, req *http.Request) (*http.Response, error) {
		body, _ := io.ReadAll(req.Body)
		gotBody = string(body)
		gotContentType = req.Header.Get("Content-Type")
		return jsonResponse(http.StatusOK, `{}`), nil
	}}
	client := newTestClient(rt)

	_, err := client.Do(context.Background(), http.MethodPost, "/api/2.0/clusters/start", nil, map[string]any{"cluster_id": "abc"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"cluster_id": "abc"}`, gotBody)
	assert.Equal(t, "application/json", gotContentType)
}

func TestDoRetriesTransientThenSucceeds(t *testing.T) {
	rt := &mockRoundTripper{roundTrip: func(call int, req *http.Request) (*http.Response, error) {
		if call <= 2 {
			return jsonResponse(http.StatusServiceUnavailable, `{"error_code": "TEMPORARILY_UNAVAILABLE", "message": "try again"}`), nil
		}
		return jsonResponse(http.StatusOK, `{"ok": true}`), nil
	}}
	client := newTestClient(rt)

	result, err := client.Do(context.Background(), http.MethodGet, "/api/2.0/clusters/list", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(3), rt.calls.Load())
	assert.Equal(t, map[string]any{"ok": true}, result)
}

func TestDoDoesNotRetryClientErrors(t *testing.T) {
	rt := &mockRoundTripper{roundTrip: func(call int, req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadRequest, `{"error_code": "INVALID_PARAMETER_VALUE", "message": "bad cluster id"}`), nil
	}}
	client := newTestClient(rt)

	_, err := client.Do(context.Background(), http.MethodGet, "/api/2.0/clusters/get", nil, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, 1, apiErr.Attempts)
	assert.Equal(t, int32(1), rt.calls.Load())
	assert.Contains(t, apiErr.Message, "bad cluster id")
}

func TestDoExhaustsRetries(t *testing.T) {
	rt := &mockRoundTripper{roundTrip: func(call int, req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, `{"message": "upstream down"}`), nil
	}}
	client := newTestClient(rt)

	_, err := client.Do(context.Background(), http.MethodGet, "/api/2.0/jobs/list", nil, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, 4, apiErr.Attempts) // first attempt plus 3 retries
	assert.Equal(t, int32(4), rt.calls.Load())
}

func TestDoErrorNeverLeaksToken(t *testing.T) {
	rt := &mockRoundTripper{roundTrip: func(call int, req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusForbidden, `{"error_code": "PERMISSION_DENIED", "message": "not allowed"}`), nil
	}}
	client := newTestClient(rt)

	_, err := client.Do(context.Background(), http.MethodGet, "/api/2.0/secrets/list", nil, nil)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "dapi-secret-token")
}

func TestDoStopsOnCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rt := &mockRoundTripper{roundTrip: func(call int, req *http.Request) (*http.Response, error) {
		cancel()
		return jsonResponse(http.StatusServiceUnavailable, `{}`), nil
	}}
	// Long enough backoff that a scheduled retry would be observable.
	client := newTestClient(rt, WithRetryPolicy(3, time.Minute, time.Minute))

	start := time.Now()
	_, err := client.Do(ctx, http.MethodGet, "/api/2.0/clusters/list", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(1), rt.calls.Load())
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestDoEmptyResponseBody(t *testing.T) {
	rt := &mockRoundTripper{roundTrip: func(call int, req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, ""), nil
	}}
	client := newTestClient(rt)

	result, err := client.Do(context.Background(), http.MethodPost, "/api/2.0/clusters/pin", nil, map[string]any{"cluster_id": "abc"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, result)
}

func TestRetryDelaySchedule(t *testing.T) {
	client := NewClient("https://example", "token",
		WithRetryPolicy(3, 10*time.Millisecond, 25*time.Millisecond))

	noHint := &APIError{StatusCode: http.StatusBadGateway}
	assert.Equal(t, 10*time.Millisecond, client.retryDelay(0, noHint, nil))
	assert.Equal(t, 20*time.Millisecond, client.retryDelay(1, noHint, nil))
	assert.Equal(t, 25*time.Millisecond, client.retryDelay(2, noHint, nil)) // capped

	hinted := &APIError{StatusCode: http.StatusTooManyRequests, RetryAfter: 123 * time.Millisecond}
	assert.Equal(t, 123*time.Millisecond, client.retryDelay(0, hinted, nil))
}

func TestParseRetryAfter(t *testing.T) {
	resp := jsonResponse(http.StatusTooManyRequests, `{}`)
	resp.Header.Set("Retry-After", "7")
	assert.Equal(t, 7*time.Second, parseRetryAfter(resp))

	resp.Header.Set("Retry-After", "not-a-number")
	assert.Equal(t, time.Duration(0), parseRetryAfter(resp))

	resp.Header.Del("Retry-After")
	assert.Equal(t, time.Duration(0), parseRetryAfter(resp))
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(&APIError{StatusCode: http.StatusTooManyRequests}))
	assert.True(t, IsTransient(&APIError{StatusCode: http.StatusInternalServerError}))
	assert.False(t, IsTransient(&APIError{StatusCode: http.StatusNotFound}))
	assert.False(t, IsTransient(context.Canceled))
	assert.False(t, IsTransient(context.DeadlineExceeded))
	assert.False(t, IsTransient(nil))
}
