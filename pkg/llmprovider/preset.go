package llmprovider

import "strings"

// Preset describes an OpenAI-compatible chat-completion endpoint.
type Preset struct {
	Name           string
	BaseURL        string
	DefaultModel   string
	CredentialName string
	// JSONMode reports whether the endpoint accepts response_format json_object.
	JSONMode bool
}

var presets = map[string]Preset{
	"openai": {
		Name:           "openai",
		BaseURL:        "https://api.openai.com/v1",
		DefaultModel:   "gpt-4o-mini",
		CredentialName: "openai_api_key",
		JSONMode:       true,
	},
	"deepseek": {
		Name:           "deepseek",
		BaseURL:        "https://api.deepseek.com/v1",
		DefaultModel:   "deepseek-chat",
		CredentialName: "deepseek_api_key",
		JSONMode:       true,
	},
	"qwen": {
		Name:           "qwen",
		BaseURL:        "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
		DefaultModel:   "qwen-plus",
		CredentialName: "qwen_api_key",
		JSONMode:       true,
	},
	"gemini": {
		Name:           "gemini",
		BaseURL:        "https://generativelanguage.googleapis.com/v1beta/openai",
		DefaultModel:   "gemini-2.5-flash",
		CredentialName: "gemini_api_key",
	},
}

// aliases maps alternate provider names onto presets.
var aliases = map[string]string{
	"alibaba":   "qwen",
	"dashscope": "qwen",
	"google":    "gemini",
}

// LookupPreset returns the preset for name, case-insensitively.
func LookupPreset(name string) (Preset, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	p, ok := presets[key]
	return p, ok
}

// PresetNames lists the built-in provider names.
func PresetNames() []string {
	return []string{"openai", "deepseek", "qwen", "gemini"}
}
