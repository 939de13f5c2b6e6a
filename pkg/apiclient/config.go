package apiclient

import "time"

// Config holds transport configuration, loadable from the environment via
// the config package.
type Config struct {
	// BaseURL is the API root every request path is resolved against.
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:3000/api"`

	// Timeout bounds each request attempt.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`

	// MaxRetries bounds retry attempts for idempotent requests.
	MaxRetries int `env:"API_MAX_RETRIES" envDefault:"2"`

	// RetryBaseDelay is the linear backoff base.
	RetryBaseDelay time.Duration `env:"API_RETRY_BASE_DELAY" envDefault:"1s"`
}

// NewFromConfig creates a Client from the provided Config. Explicit options
// take precedence over config values.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	configOpts := []Option{
		WithTimeout(cfg.Timeout),
		WithMaxRetries(cfg.MaxRetries),
		WithBaseDelay(cfg.RetryBaseDelay),
	}
	configOpts = append(configOpts, opts...)

	return New(cfg.BaseURL, configOpts...)
}
