package ai

import (
	"context"
	"strings"

	"github.com/doeshing/localhelp/internal/domain"
	"github.com/doeshing/localhelp/internal/ports"
)

// simulationProvider answers offline with hardcoded responses keyed off the
// prompt text. It never fails and needs no credentials; it exists to exercise
// the rest of the pipeline deterministically.
type simulationProvider struct{}

func newSimulationProvider() ports.Provider {
	return &simulationProvider{}
}

func (p *simulationProvider) Name() string {
	return "simulation"
}

func (p *simulationProvider) Respond(_ context.Context, prompt string) (domain.LLMResponse, error) {
	hasDocs := strings.Contains(prompt, domain.DocSectionMarker)

	switch {
	case containsAll(prompt, "git", "reset", "unstage"):
		return domain.LLMResponse{
			Explanation:    "git reset without a commit argument moves staged changes back to the working tree, which is how you unstage files.",
			Command:        "git reset HEAD",
			Warnings:       "Your working tree files are untouched, but the staging area is cleared for the listed paths.",
			AdditionalInfo: docsVariant(hasDocs, "This matches the RESET section of the git documentation above.", "No local git documentation was available; this is the standard unstage invocation."),
		}, nil
	case containsAll(prompt, "docker", "ps", "running"):
		return domain.LLMResponse{
			Explanation:    "docker ps lists the containers that are currently running, one per line with their status and ports.",
			Command:        "docker ps",
			AdditionalInfo: docsVariant(hasDocs, "See the docker documentation above for the available --filter and --format options.", "Run docker ps --help for the available --filter and --format options."),
		}, nil
	default:
		return domain.LLMResponse{
			Explanation:    "This is a simulated answer; the offline backend only knows a couple of canned scenarios.",
			AdditionalInfo: docsVariant(hasDocs, "Documentation was found for your command, but the simulator cannot interpret it.", "No documentation was found and the simulator has no canned answer for this prompt."),
		}, nil
	}
}

func containsAll(text string, needles ...string) bool {
	for _, needle := range needles {
		if !strings.Contains(text, needle) {
			return false
		}
	}
	return true
}

func docsVariant(hasDocs bool, withDocs, withoutDocs string) string {
	if hasDocs {
		return withDocs
	}
	return withoutDocs
}
