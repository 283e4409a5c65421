package ai

import (
	"context"

	"github.com/doeshing/localhelp/internal/domain"
	"github.com/doeshing/localhelp/internal/ports"
)

// openAIProvider is an unimplemented placeholder. It checks for the required
// credential and answers with a canned response either way; no network call
// is ever made.
type openAIProvider struct {
	cfg domain.Config
}

func newOpenAIProvider(cfg domain.Config) ports.Provider {
	return &openAIProvider{cfg: cfg}
}

func (p *openAIProvider) Name() string {
	return "openai"
}

func (p *openAIProvider) Respond(context.Context, string) (domain.LLMResponse, error) {
	if p.cfg.APIKey == "" {
		return missingKeyResponse("OpenAI", "https://platform.openai.com/api-keys"), nil
	}
	return pendingIntegrationResponse("OpenAI"), nil
}
