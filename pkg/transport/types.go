package transport

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Config holds HTTP transport configuration
type Config struct {
	Timeout      time.Duration
	MaxBodyBytes int64

	// RequestsPerMinute limits outbound requests. Zero disables limiting.
	RequestsPerMinute int
	Burst             int

	HTTPClient *http.Client
}

// Validate applies defaults and rejects impossible values
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("transport: timeout must not be negative")
	}
	if c.RequestsPerMinute < 0 {
		return fmt.Errorf("transport: requests per minute must not be negative")
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Burst <= 0 {
		c.Burst = c.RequestsPerMinute/10 + 1
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// Response is a completed HTTP exchange. Any status code is a Response, not an error.
type Response struct {
	StatusCode int
	Body       []byte
}

// Error is a failure to complete the exchange, such as a refused connection,
// a timeout or an unreadable body. URL is empty when no single request failed.
type Error struct {
	URL string
	Err error
}

func (e *Error) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("transport: %v", e.Err)
	}
	return fmt.Sprintf("transport: post %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// httpTransport is the net/http implementation of Transport
type httpTransport struct {
	client       *http.Client
	limiter      *rate.Limiter
	maxBodyBytes int64
}
