package transport

import "context"

// Transport sends a request body and returns the raw response.
// Implementations are safe for concurrent use.
type Transport interface {
	Post(ctx context.Context, url string, headers map[string]string, body []byte) (*Response, error)
}

// New creates a new HTTP transport
func New(cfg Config) (Transport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newHTTPTransport(cfg), nil
}
