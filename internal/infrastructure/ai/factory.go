// Package ai implements the LLM gateway: five interchangeable backend
// variants behind the ports.Provider contract, plus the prompt builder and
// the tolerant response parser they share.
package ai

import (
	"net/http"

	"github.com/doeshing/localhelp/internal/domain"
	"github.com/doeshing/localhelp/internal/ports"
)

// NewProvider selects the backend variant for the configured provider.
// The shared HTTP client is only used by the functioning OpenRouter variant;
// the placeholders and the simulator never touch the network.
func NewProvider(cfg domain.Config, client *http.Client) ports.Provider {
	if client == nil {
		client = &http.Client{Timeout: domain.DefaultHTTPTimeout}
	}

	switch cfg.Provider {
	case domain.ProviderOpenAI:
		return newOpenAIProvider(cfg)
	case domain.ProviderAnthropic:
		return newAnthropicProvider(cfg)
	case domain.ProviderLocal:
		return newLocalProvider(cfg)
	case domain.ProviderSimulation:
		return newSimulationProvider()
	default:
		return newOpenRouterProvider(cfg, client)
	}
}
