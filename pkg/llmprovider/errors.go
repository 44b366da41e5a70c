package llmprovider

import (
	"errors"
	"fmt"
)

// maxErrorBodyBytes caps the upstream body kept on an UpstreamError.
const maxErrorBodyBytes = 512

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMissingCredential indicates no API key is stored for a provider
	ErrMissingCredential = errors.New("missing credential")

	// ErrUnknownProvider indicates a provider name with no preset and no base URL
	ErrUnknownProvider = errors.New("unknown provider")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// UpstreamError is a non-2xx reply from a provider.
type UpstreamError struct {
	Provider   string
	StatusCode int
	// Body is a snippet of the response body, at most 512 bytes.
	Body string
}

func newUpstreamError(provider string, status int, body []byte) *UpstreamError {
	if len(body) > maxErrorBodyBytes {
		body = body[:maxErrorBodyBytes]
	}
	return &UpstreamError{Provider: provider, StatusCode: status, Body: string(body)}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: API error %d: %s", e.Provider, e.StatusCode, e.Body)
}

// Retryable reports whether the status is worth retrying: 429 or any 5xx.
func (e *UpstreamError) Retryable() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}
