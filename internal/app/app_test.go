package app

import (
	"context"
	"errors"
	"testing"

	"ai-tasker/config"
	"ai-tasker/pkg/credential"
	"ai-tasker/pkg/log"
)

func testConfig() *config.Config {
	return &config.Config{
		LLM: config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 2, APIKey: "sk-config", JSONMode: true},
				{Name: "deepseek", Enabled: true, Priority: 1},
				{Name: "qwen", Enabled: false, Priority: 3},
			},
			FallbackEnabled: true,
			RetryAttempts:   1,
			RetryDelay:      "10ms",
		},
		Transport:   config.TransportConfig{Timeout: "5s"},
		Credentials: config.CredentialsConfig{EnvPrefix: "AITASKER_TEST", CacheTTL: "1m"},
	}
}

func TestNewPlanner(t *testing.T) {
	p, err := NewPlanner(context.Background(), testConfig(), log.NewNop())
	if err != nil {
		t.Fatalf("NewPlanner() error: %v", err)
	}

	if len(p.Providers) != 2 || p.Providers[0].Name() != "deepseek" || p.Providers[1].Name() != "openai" {
		t.Errorf("providers not ordered by priority: %v", p.Providers)
	}

	ctx := context.Background()
	got, err := p.Credentials.Get(ctx, "openai_api_key")
	if err != nil || got != "sk-config" {
		t.Errorf("seeded credential = %q, %v", got, err)
	}

	if err := p.Credentials.Set(ctx, "deepseek_api_key", "sk-runtime"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if got, _ := p.Credentials.Get(ctx, "deepseek_api_key"); got != "sk-runtime" {
		t.Errorf("runtime credential = %q", got)
	}
	if err := p.Credentials.Delete(ctx, "deepseek_api_key"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := p.Credentials.Get(ctx, "deepseek_api_key"); !errors.Is(err, credential.ErrNotFound) {
		t.Errorf("deleted credential still served: %v", err)
	}
}

func TestNewPlannerBadDuration(t *testing.T) {
	cfg := testConfig()
	cfg.Transport.Timeout = "soon"
	if _, err := NewPlanner(context.Background(), cfg, log.NewNop()); err == nil {
		t.Error("expected error for invalid transport timeout")
	}
}
