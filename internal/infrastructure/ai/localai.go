package ai

import (
	"context"

	"github.com/doeshing/localhelp/internal/domain"
	"github.com/doeshing/localhelp/internal/ports"
)

// localProvider targets a local model server (Ollama and friends). Still a
// placeholder: it requires an endpoint instead of a credential.
type localProvider struct {
	cfg domain.Config
}

func newLocalProvider(cfg domain.Config) ports.Provider {
	return &localProvider{cfg: cfg}
}

func (p *localProvider) Name() string {
	return "local"
}

func (p *localProvider) Respond(context.Context, string) (domain.LLMResponse, error) {
	if p.cfg.APIURL == "" {
		return missingEndpointResponse("local"), nil
	}
	return pendingIntegrationResponse("local endpoint"), nil
}
