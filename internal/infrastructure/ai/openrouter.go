package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/doeshing/localhelp/internal/domain"
	"github.com/doeshing/localhelp/internal/ports"
)

const (
	openRouterEndpoint     = "https://openrouter.ai/api/v1/chat/completions"
	openRouterDefaultModel = "openai/gpt-3.5-turbo"
)

// openRouterProvider is the functioning remote backend: one synchronous
// chat-completion POST per invocation, no retries.
type openRouterProvider struct {
	cfg        domain.Config
	httpClient *http.Client
}

func newOpenRouterProvider(cfg domain.Config, client *http.Client) ports.Provider {
	return &openRouterProvider{cfg: cfg, httpClient: client}
}

func (p *openRouterProvider) Name() string {
	return "openrouter"
}

func (p *openRouterProvider) Respond(ctx context.Context, prompt string) (domain.LLMResponse, error) {
	if p.cfg.APIKey == "" {
		return missingKeyResponse("OpenRouter", "https://openrouter.ai/keys"), nil
	}

	payload := chatCompletionRequest{
		Model:       valueOrDefault(p.cfg.Model, openRouterDefaultModel),
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: domain.DefaultTemperature,
		MaxTokens:   domain.DefaultMaxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return domain.LLMResponse{}, err
	}

	endpoint := valueOrDefault(p.cfg.APIURL, openRouterEndpoint)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.LLMResponse{}, fmt.Errorf("%w: %v", domain.ErrAPIRequestFailed, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return domain.LLMResponse{}, fmt.Errorf("%w: %v", domain.ErrAPIRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.LLMResponse{}, fmt.Errorf("%w: HTTP %s", domain.ErrAPIRequestFailed, resp.Status)
	}

	var decoded chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.LLMResponse{}, fmt.Errorf("%w: %v", domain.ErrInvalidJSONResponse, err)
	}
	if len(decoded.Choices) == 0 {
		return domain.LLMResponse{}, fmt.Errorf("%w: empty choices", domain.ErrInvalidJSONResponse)
	}

	return ParseResponse(decoded.Choices[0].Message.Content), nil
}

func valueOrDefault(value string, def string) string {
	if value == "" {
		return def
	}
	return value
}
