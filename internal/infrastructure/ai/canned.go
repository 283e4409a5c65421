package ai

import (
	"fmt"

	"github.com/doeshing/localhelp/internal/domain"
)

// Canned responses are first-class degraded answers, not errors: the
// pipeline renders them exactly like a real model reply.

func missingKeyResponse(providerLabel, keyURL string) domain.LLMResponse {
	return domain.LLMResponse{
		Explanation: fmt.Sprintf("No API key is configured for the %s provider, so the question could not be sent to the model.", providerLabel),
		AdditionalInfo: fmt.Sprintf(
			"Set LOCALHELP_API_KEY, or store a credential in the system keychain. Keys are available at %s. LOCALHELP_LLM_PROVIDER=simulation works without any key.",
			keyURL),
	}
}

func missingEndpointResponse(providerLabel string) domain.LLMResponse {
	return domain.LLMResponse{
		Explanation: fmt.Sprintf("No endpoint is configured for the %s provider, so the question could not be sent to the model.", providerLabel),
		AdditionalInfo: "Set LOCALHELP_API_URL to the base URL of your local model server. " +
			"LOCALHELP_LLM_PROVIDER=simulation works without any endpoint.",
	}
}

func pendingIntegrationResponse(providerLabel string) domain.LLMResponse {
	return domain.LLMResponse{
		Explanation: fmt.Sprintf("The %s integration is not implemented yet; the configured credential was found but no request was made.", providerLabel),
		AdditionalInfo: "Use LOCALHELP_LLM_PROVIDER=openrouter for a working remote backend, " +
			"or LOCALHELP_LLM_PROVIDER=simulation for an offline one.",
	}
}
