package domain

import "strings"

// Provider identifies an LLM backend variant.
type Provider string

const (
	ProviderOpenRouter Provider = "openrouter"
	ProviderOpenAI     Provider = "openai"
	ProviderAnthropic  Provider = "anthropic"
	ProviderLocal      Provider = "local"
	ProviderSimulation Provider = "simulation"
)

// ParseProvider maps a raw provider name onto a known variant. Unset or
// unrecognized values fall back to OpenRouter.
func ParseProvider(raw string) Provider {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "openai":
		return ProviderOpenAI
	case "anthropic":
		return ProviderAnthropic
	case "local":
		return ProviderLocal
	case "simulation":
		return ProviderSimulation
	default:
		return ProviderOpenRouter
	}
}

// Config is the immutable runtime configuration, assembled once at process
// start from the config file, environment variables, and the platform secret
// store, then passed by value through the pipeline.
type Config struct {
	Provider Provider
	APIKey   string
	APIURL   string
	Model    string
	Debug    bool
}

// NeedsAPIKey reports whether the selected provider requires a credential.
func (c Config) NeedsAPIKey() bool {
	switch c.Provider {
	case ProviderSimulation, ProviderLocal:
		return false
	default:
		return true
	}
}
