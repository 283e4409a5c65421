package ai

import (
	"context"

	"github.com/doeshing/localhelp/internal/domain"
	"github.com/doeshing/localhelp/internal/ports"
)

// anthropicProvider is an unimplemented placeholder, same shape as the
// OpenAI one.
type anthropicProvider struct {
	cfg domain.Config
}

func newAnthropicProvider(cfg domain.Config) ports.Provider {
	return &anthropicProvider{cfg: cfg}
}

func (p *anthropicProvider) Name() string {
	return "anthropic"
}

func (p *anthropicProvider) Respond(context.Context, string) (domain.LLMResponse, error) {
	if p.cfg.APIKey == "" {
		return missingKeyResponse("Anthropic", "https://console.anthropic.com/settings/keys"), nil
	}
	return pendingIntegrationResponse("Anthropic"), nil
}
