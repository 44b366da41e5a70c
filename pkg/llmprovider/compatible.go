package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"ai-tasker/pkg/credential"
	"ai-tasker/pkg/transport"
)

// CompatibleConfig holds configuration for an OpenAI-compatible provider
type CompatibleConfig struct {
	Name           string
	BaseURL        string
	Model          string
	CredentialName string
	JSONMode       bool
}

// Validate validates the configuration
func (c *CompatibleConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("llmprovider: provider name is required")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("llmprovider: provider %s: base URL is required", c.Name)
	}
	if c.Model == "" {
		return fmt.Errorf("llmprovider: provider %s: model is required", c.Name)
	}
	if c.CredentialName == "" {
		c.CredentialName = strings.ToLower(c.Name) + "_api_key"
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	return nil
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

// compatibleProvider talks to any /chat/completions endpoint with Bearer auth.
type compatibleProvider struct {
	name           string
	baseURL        string
	model          string
	credentialName string
	jsonMode       bool
	transport      transport.Transport
	creds          credential.Store
}

// NewCompatible creates a provider for an OpenAI-compatible endpoint
func NewCompatible(cfg CompatibleConfig, tr transport.Transport, creds credential.Store) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if tr == nil || creds == nil {
		return nil, fmt.Errorf("llmprovider: provider %s: transport and credential store are required", cfg.Name)
	}
	return &compatibleProvider{
		name:           cfg.Name,
		baseURL:        cfg.BaseURL,
		model:          cfg.Model,
		credentialName: cfg.CredentialName,
		jsonMode:       cfg.JSONMode,
		transport:      tr,
		creds:          creds,
	}, nil
}

// Complete sends the request. The credential is read before anything goes on the wire.
func (p *compatibleProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || (req.System == "" && len(req.Messages) == 0) {
		return nil, &ProviderError{Provider: p.name, Err: ErrInvalidRequest}
	}

	apiKey, err := p.creds.Get(ctx, p.credentialName)
	if err != nil {
		if errors.Is(err, credential.ErrNotFound) {
			return nil, &ProviderError{Provider: p.name, Err: fmt.Errorf("%w: %s", ErrMissingCredential, p.credentialName)}
		}
		return nil, &ProviderError{Provider: p.name, Err: fmt.Errorf("credential lookup: %w", err)}
	}

	body, err := json.Marshal(p.buildRequest(req))
	if err != nil {
		return nil, &ProviderError{Provider: p.name, Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	resp, err := p.transport.Post(ctx, p.baseURL+"/chat/completions", map[string]string{
		"Authorization": "Bearer " + apiKey,
	}, body)
	if err != nil {
		return nil, &ProviderError{Provider: p.name, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newUpstreamError(p.name, resp.StatusCode, resp.Body)
	}

	return &Response{
		Body:         resp.Body,
		ProviderName: p.name,
		ModelName:    p.model,
		Usage:        usageOf(resp.Body),
	}, nil
}

func (p *compatibleProvider) Name() string {
	return p.name
}

func (p *compatibleProvider) Model() string {
	return p.model
}

// CredentialName returns the credential this provider authenticates with.
func (p *compatibleProvider) CredentialName() string {
	return p.credentialName
}

func (p *compatibleProvider) buildRequest(req *Request) *chatRequest {
	out := &chatRequest{
		Model:       p.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]Message, 0, len(req.Messages)+1),
	}
	if req.System != "" {
		out.Messages = append(out.Messages, Message{Role: "system", Content: req.System})
	}
	out.Messages = append(out.Messages, req.Messages...)
	if req.JSONMode && p.jsonMode {
		out.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	return out
}

// usageOf reads token counts without decoding the whole envelope.
func usageOf(body []byte) Usage {
	usage := gjson.GetBytes(body, "usage")
	return Usage{
		InputTokens:  int(usage.Get("prompt_tokens").Int()),
		OutputTokens: int(usage.Get("completion_tokens").Int()),
		TotalTokens:  int(usage.Get("total_tokens").Int()),
	}
}
