package ai

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/localhelp/internal/domain"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.LLMResponse
	}{
		{
			name: "all four fields",
			raw: "EXPLANATION: resets the staging area\n" +
				"COMMAND: git reset HEAD\n" +
				"WARNINGS: staged changes are unstaged\n" +
				"INFO: see git-reset(1)",
			want: domain.LLMResponse{
				Explanation:    "resets the staging area",
				Command:        "git reset HEAD",
				Warnings:       "staged changes are unstaged",
				AdditionalInfo: "see git-reset(1)",
			},
		},
		{
			name: "NONE means absent",
			raw: "EXPLANATION: lists files\n" +
				"COMMAND: NONE\nWARNINGS: NONE\nINFO: NONE",
			want: domain.LLMResponse{Explanation: "lists files"},
		},
		{
			name: "missing explanation falls back",
			raw:  "COMMAND: ls -la\nsome chatter",
			want: domain.LLMResponse{Explanation: FallbackExplanation, Command: "ls -la"},
		},
		{
			name: "duplicate fields last occurrence wins",
			raw: "EXPLANATION: first\nEXPLANATION: second\n" +
				"COMMAND: ls\nCOMMAND: ls -la",
			want: domain.LLMResponse{Explanation: "second", Command: "ls -la"},
		},
		{
			name: "narrative text around the block is ignored",
			raw: "Sure, happy to help!\n\n" +
				"EXPLANATION: prints the working directory\n" +
				"COMMAND: pwd\n" +
				"Let me know if you need more.",
			want: domain.LLMResponse{Explanation: "prints the working directory", Command: "pwd"},
		},
		{
			name: "prefix match is case-sensitive",
			raw:  "explanation: lowercase does not count",
			want: domain.LLMResponse{Explanation: FallbackExplanation},
		},
		{
			name: "surrounding whitespace is trimmed before matching",
			raw:  "   EXPLANATION: indented still counts",
			want: domain.LLMResponse{Explanation: "indented still counts"},
		},
		{
			name: "NONE literal is exact",
			raw:  "COMMAND: none",
			want: domain.LLMResponse{Explanation: FallbackExplanation, Command: "none"},
		},
		{
			name: "empty input",
			raw:  "",
			want: domain.LLMResponse{Explanation: FallbackExplanation},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseResponse(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseResponse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestParseResponseRoundTrip checks that parsing the canonical four-line
// rendering of a response reproduces it exactly.
func TestParseResponseRoundTrip(t *testing.T) {
	responses := []domain.LLMResponse{
		{Explanation: "does a thing", Command: "git reset HEAD", Warnings: "careful", AdditionalInfo: "extra"},
		{Explanation: "just an explanation"},
		{Explanation: "with a command", Command: "docker ps"},
	}

	for _, resp := range responses {
		raw := fmt.Sprintf("EXPLANATION: %s\nCOMMAND: %s\nWARNINGS: %s\nINFO: %s",
			resp.Explanation, orNone(resp.Command), orNone(resp.Warnings), orNone(resp.AdditionalInfo))
		got := ParseResponse(raw)
		if diff := cmp.Diff(resp, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func orNone(value string) string {
	if value == "" {
		return "NONE"
	}
	return value
}
