// Package services contains the application use cases: the assist pipeline
// and the environment doctor.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/doeshing/localhelp/internal/domain"
	"github.com/doeshing/localhelp/internal/ports"
)

// AssistService runs the non-interactive part of the pipeline: resolve
// documentation, build the prompt, consult the LLM backend, evaluate the
// recommended command. Display, confirmation, and execution stay with the
// caller so the service can be exercised without a terminal.
type AssistService struct {
	Resolver ports.DocResolver
	Provider ports.Provider
	Security ports.SecurityService
	Logger   ports.Logger
}

// AskResult is the answer portion of an assist run.
type AskResult struct {
	Response domain.LLMResponse
	// Warnings are advisory guardrail messages for the recommended command.
	Warnings []string
}

// AssistOutcome combines both pipeline stages for non-interactive callers.
type AssistOutcome struct {
	Documentation string
	DocFound      bool
	// Queried is false only when no documentation was found and no question
	// was asked; the caller prints a usage hint instead of an answer.
	Queried  bool
	Response domain.LLMResponse
	Warnings []string
}

// ResolveDocs retrieves documentation for the invocation. Exhaustion of all
// documentation strategies is not an error: found is simply false.
func (s *AssistService) ResolveDocs(ctx context.Context, info domain.CommandInfo) (doc string, found bool, err error) {
	if s.Resolver == nil {
		return "", false, errors.New("services.AssistService resolver not satisfied")
	}

	doc, err = s.Resolver.Resolve(ctx, info.Command, info.Args)
	if err != nil {
		if errors.Is(err, domain.ErrManPageNotFound) {
			if s.Logger != nil {
				s.Logger.Debug("documentation exhausted", map[string]interface{}{
					"command": info.Command,
				})
			}
			return "", false, nil
		}
		return "", false, fmt.Errorf("resolve documentation: %w", err)
	}
	return doc, true, nil
}

// Ask builds the prompt, consults the backend, and evaluates the recommended
// command against the guardrail.
func (s *AssistService) Ask(ctx context.Context, info domain.CommandInfo, doc string, docFound bool) (AskResult, error) {
	if s.Provider == nil {
		return AskResult{}, errors.New("services.AssistService provider not satisfied")
	}

	prompt := domain.BuildPrompt(info, doc, docFound)
	if s.Logger != nil {
		s.Logger.Debug("calling provider", map[string]interface{}{
			"provider":   s.Provider.Name(),
			"promptSize": len(prompt),
		})
	}

	resp, err := s.Provider.Respond(ctx, prompt)
	if err != nil {
		return AskResult{}, fmt.Errorf("provider respond: %w", err)
	}

	result := AskResult{Response: resp}
	if resp.HasCommand() && s.Security != nil {
		result.Warnings = s.Security.Evaluate(resp.Command)
	}
	return result, nil
}

// Run composes both stages. When no documentation was found and no question
// was asked, the backend is not consulted and Queried stays false.
func (s *AssistService) Run(ctx context.Context, info domain.CommandInfo) (AssistOutcome, error) {
	var outcome AssistOutcome

	doc, found, err := s.ResolveDocs(ctx, info)
	if err != nil {
		return outcome, err
	}
	outcome.Documentation = doc
	outcome.DocFound = found

	if !found && !info.HasQuery() {
		return outcome, nil
	}

	result, err := s.Ask(ctx, info, doc, found)
	if err != nil {
		return outcome, err
	}
	outcome.Queried = true
	outcome.Response = result.Response
	outcome.Warnings = result.Warnings
	return outcome, nil
}
