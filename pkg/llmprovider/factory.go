package llmprovider

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"ai-tasker/config"
	"ai-tasker/pkg/credential"
	"ai-tasker/pkg/transport"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(cfg *config.LLMConfig, tr transport.Transport, creds credential.Store) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p, tr, creds)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("%s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider resolves a provider config against the presets. A name with
// no preset is accepted when it brings its own base URL and model.
func createProvider(cfg config.ProviderConfig, tr transport.Transport, creds credential.Store) (Provider, error) {
	cc := CompatibleConfig{
		Name:           strings.ToLower(strings.TrimSpace(cfg.Name)),
		BaseURL:        cfg.BaseURL,
		Model:          cfg.Model,
		CredentialName: cfg.CredentialName,
		JSONMode:       cfg.JSONMode,
	}

	if preset, ok := LookupPreset(cfg.Name); ok {
		cc.Name = preset.Name
		if cc.BaseURL == "" {
			cc.BaseURL = preset.BaseURL
		}
		if cc.Model == "" {
			cc.Model = preset.DefaultModel
		}
		if cc.CredentialName == "" {
			cc.CredentialName = preset.CredentialName
		}
		cc.JSONMode = cc.JSONMode && preset.JSONMode
	} else if cc.BaseURL == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Name)
	}

	return NewCompatible(cc, tr, creds)
}

// StaticCredentials returns the API keys set directly in provider configs,
// keyed by credential name, for seeding a credential store.
func StaticCredentials(cfg *config.LLMConfig) map[string]string {
	out := make(map[string]string)
	if cfg == nil {
		return out
	}
	for _, p := range cfg.Providers {
		if p.APIKey == "" {
			continue
		}
		name := p.CredentialName
		if name == "" {
			if preset, ok := LookupPreset(p.Name); ok {
				name = preset.CredentialName
			} else {
				name = strings.ToLower(strings.TrimSpace(p.Name)) + "_api_key"
			}
		}
		out[name] = p.APIKey
	}
	return out
}

// NewConfig converts the string durations of config.LLMConfig.
func NewConfig(cfg *config.LLMConfig) (*Config, error) {
	mc := &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
	}

	var err error
	if cfg.RetryDelay != "" {
		if mc.RetryDelay, err = time.ParseDuration(cfg.RetryDelay); err != nil {
			return nil, fmt.Errorf("llm.retry_delay: %w", err)
		}
	}
	if cfg.MaxTotalTimeout != "" {
		if mc.MaxTotalTimeout, err = time.ParseDuration(cfg.MaxTotalTimeout); err != nil {
			return nil, fmt.Errorf("llm.max_total_timeout: %w", err)
		}
	}
	return mc, nil
}
