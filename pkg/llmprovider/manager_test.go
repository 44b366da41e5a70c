package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"ai-tasker/pkg/transport"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name      string
	model     string
	errs      []error // returned in order, then success
	response  *Response
	callCount int
}

func (m *mockProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.callCount <= len(m.errs) {
		return nil, m.errs[m.callCount-1]
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoMessages = append(m.infoMessages, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func okResponse(name string) *Response {
	return &Response{
		Body:         []byte(`{"choices":[{"message":{"content":"[]"}}]}`),
		ProviderName: name,
		ModelName:    name + "-model",
		Usage:        Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
}

func missingCredential(name string) error {
	return &ProviderError{Provider: name, Err: fmt.Errorf("%w: %s_api_key", ErrMissingCredential, name)}
}

func testConfig() *Config {
	return &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      time.Millisecond,
	}
}

var testRequest = &Request{Messages: []Message{{Role: "user", Content: "Hello"}}}

func TestComplete_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", response: okResponse("primary")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary}, testConfig(), logger)
	resp, err := manager.Complete(context.Background(), testRequest)

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "primary" {
		t.Errorf("Expected provider name 'primary', got: %s", resp.ProviderName)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log message, got: %d", len(logger.infoMessages))
	}
	if len(logger.warnMessages) != 0 {
		t.Errorf("Expected 0 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestComplete_RetriesRetryableErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"transport error", &ProviderError{Provider: "p", Err: &transport.Error{URL: "http://x", Err: errors.New("connection reset")}}},
		{"rate limited", &UpstreamError{Provider: "p", StatusCode: 429}},
		{"server error", &UpstreamError{Provider: "p", StatusCode: 503}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &mockProvider{name: "p", errs: []error{tt.err, tt.err}, response: okResponse("p")}
			manager := NewManager([]Provider{p}, testConfig(), &mockLogger{})

			if _, err := manager.Complete(context.Background(), testRequest); err != nil {
				t.Fatalf("Expected success after retries, got: %v", err)
			}
			if p.callCount != 3 {
				t.Errorf("Expected 3 calls, got: %d", p.callCount)
			}
		})
	}
}

func TestComplete_DoesNotRetryClientErrors(t *testing.T) {
	p := &mockProvider{name: "p", errs: []error{&UpstreamError{Provider: "p", StatusCode: 401}}, response: okResponse("p")}
	cfg := testConfig()
	cfg.FallbackEnabled = false
	manager := NewManager([]Provider{p}, cfg, &mockLogger{})

	_, err := manager.Complete(context.Background(), testRequest)

	var uerr *UpstreamError
	if !errors.As(err, &uerr) || uerr.StatusCode != 401 {
		t.Fatalf("Expected UpstreamError 401, got: %v", err)
	}
	if p.callCount != 1 {
		t.Errorf("Expected 1 call, got: %d", p.callCount)
	}
}

func TestComplete_FallbackToSecondaryProvider(t *testing.T) {
	fail := &UpstreamError{Provider: "primary", StatusCode: 500}
	primary := &mockProvider{name: "primary", errs: []error{fail, fail, fail}}
	secondary := &mockProvider{name: "secondary", response: okResponse("secondary")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary, secondary}, testConfig(), logger)
	resp, err := manager.Complete(context.Background(), testRequest)

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}
	if primary.callCount != 3 {
		t.Errorf("Expected primary provider to be called 3 times (retries), got: %d", primary.callCount)
	}
	if secondary.callCount != 1 {
		t.Errorf("Expected secondary provider to be called once, got: %d", secondary.callCount)
	}
}

func TestComplete_SkipsProvidersWithoutCredential(t *testing.T) {
	primary := &mockProvider{name: "openai", errs: []error{missingCredential("openai")}}
	secondary := &mockProvider{name: "deepseek", response: okResponse("deepseek")}
	cfg := testConfig()
	cfg.FallbackEnabled = false

	manager := NewManager([]Provider{primary, secondary}, cfg, &mockLogger{})
	resp, err := manager.Complete(context.Background(), testRequest)

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "deepseek" {
		t.Errorf("Expected deepseek, got: %s", resp.ProviderName)
	}
	if primary.callCount != 1 {
		t.Errorf("Missing credential should not be retried, got %d calls", primary.callCount)
	}
}

func TestComplete_AllCredentialsMissing(t *testing.T) {
	manager := NewManager([]Provider{
		&mockProvider{name: "openai", errs: []error{missingCredential("openai")}},
		&mockProvider{name: "qwen", errs: []error{missingCredential("qwen")}},
	}, testConfig(), &mockLogger{})

	_, err := manager.Complete(context.Background(), testRequest)

	if !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("Expected ErrMissingCredential, got: %v", err)
	}
	if errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("Missing credentials should not be reported as provider failures: %v", err)
	}
}

func TestComplete_AllProvidersFail(t *testing.T) {
	fail := &UpstreamError{Provider: "x", StatusCode: 400}
	manager := NewManager([]Provider{
		&mockProvider{name: "primary", errs: []error{fail}},
		&mockProvider{name: "secondary", errs: []error{fail}},
	}, testConfig(), &mockLogger{})

	_, err := manager.Complete(context.Background(), testRequest)

	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("Expected ErrAllProvidersFailed, got: %v", err)
	}
	var uerr *UpstreamError
	if !errors.As(err, &uerr) {
		t.Errorf("Expected the last UpstreamError to be wrapped, got: %v", err)
	}
}

func TestComplete_NoFallbackWhenDisabled(t *testing.T) {
	fail := &UpstreamError{Provider: "primary", StatusCode: 400}
	primary := &mockProvider{name: "primary", errs: []error{fail}}
	secondary := &mockProvider{name: "secondary", response: okResponse("secondary")}
	cfg := testConfig()
	cfg.FallbackEnabled = false

	manager := NewManager([]Provider{primary, secondary}, cfg, &mockLogger{})
	_, err := manager.Complete(context.Background(), testRequest)

	if err == nil {
		t.Fatal("Expected error when fallback is disabled")
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary provider not to be called, got: %d", secondary.callCount)
	}
}

func TestComplete_CallerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &mockProvider{name: "p", response: okResponse("p")}
	manager := NewManager([]Provider{p}, testConfig(), &mockLogger{})

	_, err := manager.Complete(ctx, testRequest)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got: %v", err)
	}
	if p.callCount != 0 {
		t.Errorf("Expected no calls on a cancelled context, got: %d", p.callCount)
	}
}

func TestComplete_NoProvidersConfigured(t *testing.T) {
	manager := NewManager([]Provider{}, testConfig(), &mockLogger{})

	_, err := manager.Complete(context.Background(), testRequest)
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
}

func TestUpstreamError_TruncatesBody(t *testing.T) {
	body := make([]byte, 2000)
	for i := range body {
		body[i] = 'x'
	}
	err := newUpstreamError("openai", 500, body)
	if len(err.Body) != maxErrorBodyBytes {
		t.Errorf("Body length = %d, want %d", len(err.Body), maxErrorBodyBytes)
	}
}
