package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai-tasker/pkg/log"
	"ai-tasker/pkg/transport"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for entire fallback chain
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{FallbackEnabled: true, RetryAttempts: 1}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Providers returns the providers in the order they are tried.
func (m *Manager) Providers() []Provider {
	return m.providers
}

// Complete iterates through providers in priority order with fallback logic.
// Providers without a stored credential are skipped without a network call;
// if none has one the error wraps ErrMissingCredential.
func (m *Manager) Complete(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	parent := ctx
	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	var missing []string

	for _, provider := range m.providers {
		if err := m.interrupted(parent, ctx); err != nil {
			return nil, err
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		if err := m.interrupted(parent, ctx); err != nil {
			return nil, err
		}

		if errors.Is(err, ErrMissingCredential) {
			m.logger.Debugf(ctx, "llmprovider.Manager.Complete: skipping %s: no credential", provider.Name())
			missing = append(missing, provider.Name())
			continue
		}

		m.logFailure(ctx, provider, err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	if lastErr == nil {
		return nil, fmt.Errorf("%w: no API key stored for %s", ErrMissingCredential, strings.Join(missing, ", "))
	}
	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// interrupted distinguishes caller cancellation from the manager's own global timeout.
func (m *Manager) interrupted(parent, ctx context.Context) error {
	if err := parent.Err(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrAllProvidersFailed, &transport.Error{
			Err: fmt.Errorf("global timeout %s exceeded: %w", m.config.MaxTotalTimeout, err),
		})
	}
	return nil
}

// generateWithRetry retries transport failures, 429 and 5xx with linear backoff
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(time.Duration(attempt) * m.config.RetryDelay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			}
		}

		resp, err := provider.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if ctx.Err() != nil || !isRetryable(err) {
			return nil, err
		}
		m.logger.Warnf(ctx, "llmprovider.Manager.generateWithRetry: %s attempt %d/%d failed: %v",
			provider.Name(), attempt+1, attempts, err)
	}

	return nil, lastErr
}

func isRetryable(err error) bool {
	var terr *transport.Error
	if errors.As(err, &terr) {
		return true
	}
	var uerr *UpstreamError
	if errors.As(err, &uerr) {
		return uerr.Retryable()
	}
	return false
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s input_tokens=%d output_tokens=%d",
		provider.Name(), provider.Model(), resp.Usage.InputTokens, resp.Usage.OutputTokens)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s error=%v",
		provider.Name(), provider.Model(), err)
}
