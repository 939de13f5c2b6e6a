package apiclient

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 2
	defaultBaseDelay  = time.Second
)

// SleepFunc waits before a retry attempt. Tests substitute a zero-delay
// implementation to assert retry counts deterministically.
type SleepFunc func(ctx context.Context, d time.Duration) error

// AuthHook reacts to auth-classified failures. Implementations must be
// idempotent: concurrent 401s may invoke the hook more than once.
type AuthHook func(ctx context.Context)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. Useful for custom transports,
// proxies, or testing. The caller is responsible for attaching a cookie jar
// if session cookies should persist across calls.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// WithTimeout sets the per-request timeout. Default is 10 seconds.
// Ignored when a custom HTTP client is provided.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithMaxRetries sets the maximum number of retry attempts for idempotent
// requests. Default is 2. Set to 0 to disable retries.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.maxRetries = n
		}
	}
}

// WithBaseDelay sets the linear backoff base. The delay before retry n is
// baseDelay * n. Default is 1 second.
func WithBaseDelay(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.baseDelay = d
		}
	}
}

// WithSleepFunc replaces the retry delay function.
func WithSleepFunc(sleep SleepFunc) Option {
	return func(c *Client) {
		if sleep != nil {
			c.sleep = sleep
		}
	}
}

// WithAuthHook sets the hook invoked when a call classifies as an auth
// failure.
func WithAuthHook(hook AuthHook) Option {
	return func(c *Client) {
		c.authHook = hook
	}
}

// WithLogger sets a custom logger for call diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		if key != "" && value != "" {
			c.headers[key] = value
		}
	}
}

// WithRequestID replaces the request ID generator. Default generates UUIDs.
func WithRequestID(newID func() string) Option {
	return func(c *Client) {
		if newID != nil {
			c.newID = newID
		}
	}
}
