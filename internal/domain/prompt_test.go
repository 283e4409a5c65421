package domain_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/doeshing/localhelp/internal/domain"
)

func TestBuildPromptIncludesQueryAndDocs(t *testing.T) {
	info := domain.CommandInfo{Command: "git", Args: []string{"reset"}, Query: "I want to unstage my changes"}
	prompt := domain.BuildPrompt(info, "GIT-RESET(1) manual text", true)

	for _, want := range []string{
		"'git' command",
		"git reset",
		"USER QUESTION: I want to unstage my changes",
		domain.DocSectionMarker,
		"GIT-RESET(1) manual text",
		"EXPLANATION:",
		"COMMAND:",
		"WARNINGS:",
		"INFO:",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPromptWithoutDocs(t *testing.T) {
	info := domain.CommandInfo{Command: "tar"}
	prompt := domain.BuildPrompt(info, "", false)

	if strings.Contains(prompt, domain.DocSectionMarker) {
		t.Errorf("prompt should not contain the documentation marker:\n%s", prompt)
	}
	if !strings.Contains(prompt, "No local documentation was available") {
		t.Errorf("prompt missing the no-documentation note:\n%s", prompt)
	}
}

func TestBuildPromptTruncationBoundary(t *testing.T) {
	info := domain.CommandInfo{Command: "tar", Query: "how do I extract"}

	exact := strings.Repeat("a", domain.MaxDocPromptChars)
	prompt := domain.BuildPrompt(info, exact, true)
	if strings.Contains(prompt, "(truncated)") {
		t.Error("documentation of exactly the cap length must not be truncated")
	}
	if !strings.Contains(prompt, exact) {
		t.Error("documentation of exactly the cap length must pass through whole")
	}

	over := exact + "b"
	prompt = domain.BuildPrompt(info, over, true)
	if !strings.Contains(prompt, exact+"(truncated)") {
		t.Error("documentation one byte over the cap must be cut and marked")
	}
	if strings.Contains(prompt, over) {
		t.Error("overlong documentation must not appear in full")
	}
}

func TestBuildPromptTruncationKeepsRunesWhole(t *testing.T) {
	info := domain.CommandInfo{Command: "tar", Query: "how do I extract"}

	// The three-byte rune starts one byte before the cap, so a byte-offset
	// cut would slice through it.
	ascii := strings.Repeat("a", domain.MaxDocPromptChars-1)
	prompt := domain.BuildPrompt(info, ascii+"日本語", true)

	if !utf8.ValidString(prompt) {
		t.Fatal("prompt contains invalid UTF-8")
	}
	if !strings.Contains(prompt, ascii+"(truncated)") {
		t.Error("cut must back up to the last whole rune")
	}
	if strings.Contains(prompt, "日") {
		t.Error("the straddling rune must be dropped entirely")
	}
}
