package ai

import (
	"strings"

	"github.com/doeshing/localhelp/internal/domain"
)

// FallbackExplanation is used when no EXPLANATION line could be found.
const FallbackExplanation = "Unable to parse explanation from response."

// noneLiteral marks an optional field as absent in the reply format.
const noneLiteral = "NONE"

// Structured-field prefixes, checked in this order; first match per line
// wins. Matching is case-sensitive and includes the trailing space.
const (
	explanationPrefix = "EXPLANATION: "
	commandPrefix     = "COMMAND: "
	warningsPrefix    = "WARNINGS: "
	infoPrefix        = "INFO: "
)

// ParseResponse extracts the four named fields from free-form model output.
// It never fails: models wrap the structured block in narrative text, repeat
// fields, or drop them, and all of that degrades gracefully. Duplicate field
// lines overwrite earlier values.
func ParseResponse(raw string) domain.LLMResponse {
	resp := domain.LLMResponse{Explanation: FallbackExplanation}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, explanationPrefix):
			resp.Explanation = line[len(explanationPrefix):]
		case strings.HasPrefix(line, commandPrefix):
			resp.Command = optionalField(line[len(commandPrefix):])
		case strings.HasPrefix(line, warningsPrefix):
			resp.Warnings = optionalField(line[len(warningsPrefix):])
		case strings.HasPrefix(line, infoPrefix):
			resp.AdditionalInfo = optionalField(line[len(infoPrefix):])
		}
	}

	return resp
}

// optionalField maps the literal NONE onto absence.
func optionalField(value string) string {
	if value == noneLiteral {
		return ""
	}
	return value
}
