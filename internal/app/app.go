// Package app wires configuration into the planning stack shared by the
// HTTP service and the CLI.
package app

import (
	"context"
	"fmt"
	"time"

	"ai-tasker/config"
	"ai-tasker/internal/decode"
	"ai-tasker/internal/plan"
	"ai-tasker/internal/plan/repository"
	memoryRepo "ai-tasker/internal/plan/repository/memory"
	memosRepo "ai-tasker/internal/plan/repository/memos"
	"ai-tasker/internal/plan/usecase"
	"ai-tasker/pkg/credential"
	"ai-tasker/pkg/llmprovider"
	"ai-tasker/pkg/log"
	"ai-tasker/pkg/transport"
)

// Planner is the assembled planning stack.
type Planner struct {
	UseCase     plan.UseCase
	Credentials credential.Store
	Providers   []llmprovider.Provider
}

// NewPlanner builds credentials, transport, providers, storage and the use case from cfg.
func NewPlanner(ctx context.Context, cfg *config.Config, l log.Logger) (*Planner, error) {
	creds, err := newCredentialStore(cfg)
	if err != nil {
		return nil, err
	}

	tr, err := newTransport(cfg.Transport)
	if err != nil {
		return nil, err
	}

	providers, err := llmprovider.InitializeProviders(&cfg.LLM, tr, creds)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM providers: %w", err)
	}
	for _, p := range providers {
		l.Infof(ctx, "LLM provider enabled: %s (%s)", p.Name(), p.Model())
	}

	managerCfg, err := llmprovider.NewConfig(&cfg.LLM)
	if err != nil {
		return nil, err
	}
	manager := llmprovider.NewManager(providers, managerCfg, l)

	var exporter repository.Sink
	if cfg.Memos.URL != "" {
		client := memosRepo.NewClient(cfg.Memos.URL, cfg.Memos.AccessToken)
		exporter = memosRepo.New(client, cfg.Memos.ExternalURL, cfg.Memos.Visibility, l)
		l.Infof(ctx, "Memos export enabled: %s", cfg.Memos.URL)
	}

	uc := usecase.New(l, manager, decode.New(), memoryRepo.New(l), exporter, usecase.Config{
		Style:         cfg.Planner.Style,
		Temperature:   cfg.Planner.Temperature,
		MaxTokens:     cfg.Planner.MaxTokens,
		QuestionCount: cfg.Planner.QuestionCount,
		JSONMode:      true,
	})

	return &Planner{
		UseCase:     uc,
		Credentials: creds,
		Providers:   providers,
	}, nil
}

// newCredentialStore layers a writable memory store over the environment,
// seeded with any keys from the provider config, behind an expiring cache.
func newCredentialStore(cfg *config.Config) (credential.Store, error) {
	ttl, err := parseDuration("credentials.cache_ttl", cfg.Credentials.CacheTTL)
	if err != nil {
		return nil, err
	}
	env := credential.NewEnvStore(cfg.Credentials.EnvPrefix, llmprovider.StaticCredentials(&cfg.LLM))
	chain := credential.NewChainStore(credential.NewMemoryStore(), env)
	return credential.NewCachedStore(chain, cfg.Credentials.CacheSize, ttl), nil
}

func newTransport(cfg config.TransportConfig) (transport.Transport, error) {
	timeout, err := parseDuration("transport.timeout", cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return transport.New(transport.Config{
		Timeout:           timeout,
		RequestsPerMinute: cfg.RequestsPerMinute,
		Burst:             cfg.Burst,
	})
}

// ShutdownTimeout parses http_server.shutdown_timeout.
func ShutdownTimeout(cfg *config.Config) (time.Duration, error) {
	return parseDuration("http_server.shutdown_timeout", cfg.HTTPServer.ShutdownTimeout)
}

func parseDuration(key, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
