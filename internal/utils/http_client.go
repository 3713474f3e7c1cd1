package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithTimeout(5 * time.Second))
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures an HTTPClient.
type HTTPClientOption func(*resty.Client)

// WithBaseURL sets the base URL every relative request is resolved against.
func WithBaseURL(url string) HTTPClientOption {
	return func(c *resty.Client) {
		if url != "" {
			c.SetBaseURL(url)
		}
	}
}

// WithTimeout bounds every request of the client. Non-positive values are
// ignored.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithRetries retries failed requests count times, waiting wait between
// attempts.
func WithRetries(count int, wait time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetRetryCount(count).SetRetryWaitTime(wait)
	}
}

// WithHeader sets a header sent with every request.
func WithHeader(name, value string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetHeader(name, value)
	}
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New()
	for _, opt := range opts {
		opt(client)
	}
	return &HTTPClient{Client: client}
}
