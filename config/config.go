package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	API        APIConfig

	// LLM Provider Abstraction
	LLM       LLMConfig
	Transport TransportConfig

	// Planner specifics
	Planner     PlannerConfig
	Credentials CredentialsConfig
	Memos       MemosConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// APIConfig guards the public API.
type APIConfig struct {
	// AdminKey protects the credential endpoints. Empty disables them.
	AdminKey        string
	RateLimitPerMin int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	// APIKey is optional; when set it seeds the credential store.
	APIKey         string `yaml:"api_key"`
	CredentialName string `yaml:"credential_name,omitempty"`
	BaseURL        string `yaml:"base_url,omitempty"`
	Model          string `yaml:"model"`
	JSONMode       bool   `yaml:"json_mode"`
}

type TransportConfig struct {
	Timeout           string
	RequestsPerMinute int
	Burst             int
}

// PlannerConfig configures prompt composition.
type PlannerConfig struct {
	Style         string
	Temperature   float64
	MaxTokens     int
	QuestionCount int
}

type CredentialsConfig struct {
	EnvPrefix string
	CacheSize int
	CacheTTL  string
}

type MemosConfig struct {
	URL         string
	AccessToken string
	ExternalURL string // URL for generating user-facing links (e.g., http://localhost:5230)
	Visibility  string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetString("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.API.AdminKey = expandEnvVar(viper.GetString("api.admin_key"))
	if adminKey := viper.GetString("api_admin_key"); adminKey != "" {
		cfg.API.AdminKey = adminKey
	}
	cfg.API.RateLimitPerMin = viper.GetInt("api.rate_limit_per_min")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Providers = loadProviders()

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	cfg.Transport.Timeout = viper.GetString("transport.timeout")
	cfg.Transport.RequestsPerMinute = viper.GetInt("transport.requests_per_minute")
	cfg.Transport.Burst = viper.GetInt("transport.burst")

	cfg.Planner.Style = viper.GetString("planner.style")
	cfg.Planner.Temperature = viper.GetFloat64("planner.temperature")
	cfg.Planner.MaxTokens = viper.GetInt("planner.max_tokens")
	cfg.Planner.QuestionCount = viper.GetInt("planner.question_count")

	cfg.Credentials.EnvPrefix = viper.GetString("credentials.env_prefix")
	cfg.Credentials.CacheSize = viper.GetInt("credentials.cache_size")
	cfg.Credentials.CacheTTL = viper.GetString("credentials.cache_ttl")

	// Memos sink is optional; it is enabled by setting a URL.
	cfg.Memos.URL = viper.GetString("memos.url")
	cfg.Memos.AccessToken = viper.GetString("memos.access_token")
	cfg.Memos.ExternalURL = viper.GetString("memos.external_url")
	cfg.Memos.Visibility = viper.GetString("memos.visibility")
	if memosURL := viper.GetString("memos_url"); memosURL != "" {
		cfg.Memos.URL = memosURL
	}
	if memosToken := viper.GetString("memos_access_token"); memosToken != "" {
		cfg.Memos.AccessToken = memosToken
	}
	// If external URL not set, default to internal URL
	if cfg.Memos.ExternalURL == "" {
		cfg.Memos.ExternalURL = cfg.Memos.URL
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("api.rate_limit_per_min", 60)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "120s")

	viper.SetDefault("transport.timeout", "60s")
	viper.SetDefault("transport.requests_per_minute", 60)

	viper.SetDefault("planner.style", "balanced")
	viper.SetDefault("planner.temperature", 0.7)
	viper.SetDefault("planner.max_tokens", 2048)
	viper.SetDefault("planner.question_count", 5)

	viper.SetDefault("credentials.cache_size", 64)
	viper.SetDefault("credentials.cache_ttl", "5m")
	viper.SetDefault("memos.visibility", "PRIVATE")
}

// loadProviders reads llm.providers. Without a providers section every
// preset is enabled in a fixed order, and whichever has a credential is used.
func loadProviders() []ProviderConfig {
	if !viper.IsSet("llm.providers") {
		return DefaultProviders()
	}

	var providers []ProviderConfig
	providersRaw := viper.Get("llm.providers")
	if providersList, ok := providersRaw.([]interface{}); ok {
		for _, p := range providersList {
			if providerMap, ok := p.(map[string]interface{}); ok {
				providers = append(providers, ProviderConfig{
					Name:           getStringFromMap(providerMap, "name"),
					Enabled:        getBoolFromMap(providerMap, "enabled"),
					Priority:       getIntFromMap(providerMap, "priority"),
					APIKey:         expandEnvVar(getStringFromMap(providerMap, "api_key")),
					CredentialName: getStringFromMap(providerMap, "credential_name"),
					BaseURL:        getStringFromMap(providerMap, "base_url"),
					Model:          getStringFromMap(providerMap, "model"),
					JSONMode:       getBoolFromMap(providerMap, "json_mode"),
				})
			}
		}
	}
	return providers
}

// DefaultProviders enables every built-in preset with its default model.
func DefaultProviders() []ProviderConfig {
	names := []string{"openai", "deepseek", "qwen", "gemini"}
	providers := make([]ProviderConfig, 0, len(names))
	for i, name := range names {
		providers = append(providers, ProviderConfig{
			Name:     name,
			Enabled:  true,
			Priority: i + 1,
			JSONMode: name != "gemini",
		})
	}
	return providers
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		// Unresolved placeholders are treated as unset.
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
