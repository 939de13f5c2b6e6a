package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// retryableStatuses lists the response codes worth a second attempt for
// idempotent requests. Everything else fails immediately.
var retryableStatuses = map[int]bool{
	http.StatusRequestTimeout:      true,
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Request describes a single outbound API call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Body is marshaled to JSON when non-nil. For opaque byte streams
	// (multipart uploads) set RawBody and ContentType instead.
	Body        any
	RawBody     io.Reader
	ContentType string
	Header      http.Header
	// MaxResponseBytes overrides the default 1MB response cap, for opaque
	// document downloads.
	MaxResponseBytes int64
}

// Idempotent reports whether the request's method is safe to retry without
// risking duplicated server-side effects.
func (r Request) Idempotent() bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

// Response is a successful API response with its body fully read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("apiclient: decode response: %w", err)
	}
	return nil
}

// Client performs calls against the API base URL. All failures surface as
// *Error; there is no silent swallowing beyond the bounded idempotent retry.
// Zero value is not usable; use New.
type Client struct {
	baseURL    *url.URL
	client     *http.Client
	logger     *slog.Logger
	timeout    time.Duration
	maxRetries int
	baseDelay  time.Duration
	sleep      SleepFunc
	authHook   AuthHook
	headers    map[string]string
	newID      func() string
}

// New creates a client for the given base URL. The default HTTP client
// carries a cookie jar so the session cookie set by login is transmitted
// with every subsequent call.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: URL is required", ErrInvalidBaseURL)
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidBaseURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidBaseURL)
	}

	c := &Client{
		baseURL:    parsed,
		logger:     slog.Default(),
		timeout:    defaultTimeout,
		maxRetries: defaultMaxRetries,
		baseDelay:  defaultBaseDelay,
		sleep:      sleepWithContext,
		headers:    make(map[string]string),
		newID:      uuid.NewString,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("apiclient: cookie jar: %w", err)
		}
		c.client = &http.Client{
			Timeout: c.timeout,
			Jar:     jar,
		}
	}

	return c, nil
}

// Do executes the request, retrying idempotent calls on transient statuses
// with linear backoff. On failure the returned error is always a *Error and
// the response is nil.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	if req.Method == "" || req.Path == "" {
		return nil, fmt.Errorf("%w: method and path are required", ErrInvalidRequest)
	}

	requestID := c.newID()

	var lastErr *Error
	for attempt := 0; ; attempt++ {
		// Delay before retry n is baseDelay * n, linear rather than
		// exponential: the retryable statuses here resolve quickly or
		// not at all.
		if attempt > 0 {
			if err := c.sleep(ctx, c.baseDelay*time.Duration(attempt)); err != nil {
				return nil, classifyTransport(err)
			}
		}

		resp, apiErr := c.attempt(ctx, req, requestID, attempt+1)
		if apiErr == nil {
			return resp, nil
		}

		// A 401 means the session is gone. The hook clears the persisted
		// snapshot and redirects to login; the hook itself is idempotent,
		// so concurrent failures cannot stack redirects.
		if apiErr.Kind == KindAuth && c.authHook != nil {
			c.authHook(ctx)
		}

		lastErr = apiErr
		if req.Idempotent() && retryableStatuses[apiErr.StatusCode] && attempt < c.maxRetries {
			continue
		}
		return nil, lastErr
	}
}

// attempt performs a single call and classifies any failure. Elapsed time is
// measured for diagnostics only.
func (c *Client) attempt(ctx context.Context, req Request, requestID string, attempt int) (*Response, *Error) {
	start := time.Now()

	httpReq, err := c.buildRequest(ctx, req, requestID)
	if err != nil {
		return nil, classifyTransport(err)
	}

	httpResp, err := c.client.Do(httpReq)
	elapsed := time.Since(start)
	if err != nil {
		c.logAttempt(ctx, req, requestID, attempt, 0, elapsed, err)
		return nil, classifyTransport(err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	// 1MB cap keeps a misbehaving server from exhausting memory.
	limit := int64(1 << 20)
	if req.MaxResponseBytes > 0 {
		limit = req.MaxResponseBytes
	}
	body, err := io.ReadAll(io.LimitReader(httpResp.Body, limit))
	if err != nil {
		c.logAttempt(ctx, req, requestID, attempt, httpResp.StatusCode, elapsed, err)
		return nil, classifyTransport(err)
	}

	c.logAttempt(ctx, req, requestID, attempt, httpResp.StatusCode, elapsed, nil)

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, classifyStatus(httpResp.StatusCode, body)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       body,
	}, nil
}

func (c *Client) buildRequest(ctx context.Context, req Request, requestID string) (*http.Request, error) {
	target := c.baseURL.JoinPath(req.Path)
	if len(req.Query) > 0 {
		target.RawQuery = req.Query.Encode()
	}

	var body io.Reader
	contentType := req.ContentType
	switch {
	case req.RawBody != nil:
		body = req.RawBody
	case req.Body != nil:
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("apiclient: marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
		if contentType == "" {
			contentType = "application/json"
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), body)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("X-Request-ID", requestID)
	for k, v := range c.headers {
		httpReq.Header.Set(k, v)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	return httpReq, nil
}

func (c *Client) logAttempt(ctx context.Context, req Request, requestID string, attempt, status int, elapsed time.Duration, err error) {
	attrs := []any{
		slog.String("method", req.Method),
		slog.String("path", req.Path),
		slog.String("request_id", requestID),
		slog.Int("attempt", attempt),
		slog.Duration("elapsed", elapsed),
	}
	if status > 0 {
		attrs = append(attrs, slog.Int("status", status))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
		c.logger.WarnContext(ctx, "api call failed", attrs...)
		return
	}
	c.logger.DebugContext(ctx, "api call", attrs...)
}

// sleepWithContext waits for the given duration unless the context is
// canceled first.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
