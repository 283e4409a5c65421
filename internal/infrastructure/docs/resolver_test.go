package docs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/localhelp/internal/domain"
)

// fakeRunner scripts subprocess outcomes per argv and records the order of
// attempts.
type fakeRunner struct {
	manOutput string
	manErr    error
	results   map[string]fakeResult
	calls     []string
}

type fakeResult struct {
	output   string
	exitCode int
	err      error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (string, int, error) {
	argv := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, argv)
	if res, ok := f.results[argv]; ok {
		return res.output, res.exitCode, res.err
	}
	return "", -1, fmt.Errorf("not found: %s", argv)
}

func (f *fakeRunner) RunFiltered(_ context.Context, name string, args []string, filter string, filterArgs []string) (string, error) {
	f.calls = append(f.calls, strings.Join(append([]string{name}, args...), " ")+" | "+
		strings.Join(append([]string{filter}, filterArgs...), " "))
	return f.manOutput, f.manErr
}

const sampleHelp = "Usage: git reset [options]\nOptions:\n  --hard  discard changes"

func TestResolveManPageShortCircuits(t *testing.T) {
	runner := &fakeRunner{manOutput: "GIT-RESET(1)\n\nNAME\n  git-reset - reset HEAD"}
	resolver := NewResolver(runner, nil)

	doc, err := resolver.Resolve(context.Background(), "git", []string{"reset"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if doc != runner.manOutput {
		t.Errorf("doc = %q", doc)
	}
	// No help-flag strategy may run once the manual page succeeded.
	want := []string{"man git | col -b"}
	if diff := cmp.Diff(want, runner.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveHelpLadderOrder(t *testing.T) {
	runner := &fakeRunner{
		manErr: errors.New("exit status 16"),
		results: map[string]fakeResult{
			"git help": {output: sampleHelp, exitCode: 0},
		},
	}
	resolver := NewResolver(runner, nil)

	doc, err := resolver.Resolve(context.Background(), "git", []string{"reset"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if doc != sampleHelp {
		t.Errorf("doc = %q", doc)
	}

	want := []string{
		"man git | col -b",
		"git --help",
		"git -h",
		"git reset --help",
		"git reset -h",
		"git help",
	}
	if diff := cmp.Diff(want, runner.calls); diff != "" {
		t.Errorf("attempt order mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveHelpLadderWithoutArgs(t *testing.T) {
	runner := &fakeRunner{manErr: errors.New("no man")}
	resolver := NewResolver(runner, nil)

	_, err := resolver.Resolve(context.Background(), "mystery", nil)
	if !errors.Is(err, domain.ErrManPageNotFound) {
		t.Fatalf("error = %v, want ErrManPageNotFound", err)
	}

	// Without args the subcommand patterns repeat the plain ones.
	want := []string{
		"man mystery | col -b",
		"mystery --help",
		"mystery -h",
		"mystery --help",
		"mystery -h",
		"mystery help",
		"mystery",
	}
	if diff := cmp.Diff(want, runner.calls); diff != "" {
		t.Errorf("attempt order mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveRejectsUnhelpfulOutput(t *testing.T) {
	tests := []struct {
		name   string
		result fakeResult
	}{
		{name: "exit status too high", result: fakeResult{output: sampleHelp, exitCode: 3, err: errors.New("exit status 3")}},
		{name: "output too short", result: fakeResult{output: "Usage:", exitCode: 0}},
		{name: "no help markers", result: fakeResult{output: "error: unknown flag --help, try the manual", exitCode: 0}},
		{name: "empty output on success", result: fakeResult{output: "", exitCode: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{
				manErr:  errors.New("no man"),
				results: map[string]fakeResult{"tool --help": tt.result},
			}
			resolver := NewResolver(runner, nil)
			_, err := resolver.Resolve(context.Background(), "tool", nil)
			if !errors.Is(err, domain.ErrManPageNotFound) {
				t.Fatalf("error = %v, want ErrManPageNotFound", err)
			}
		})
	}
}

func TestResolveAcceptsNonZeroHelpExit(t *testing.T) {
	// Plenty of tools print help and exit 1 or 2.
	runner := &fakeRunner{
		manErr: errors.New("no man"),
		results: map[string]fakeResult{
			"tool --help": {output: sampleHelp, exitCode: 2, err: errors.New("exit status 2")},
		},
	}
	resolver := NewResolver(runner, nil)

	doc, err := resolver.Resolve(context.Background(), "tool", nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if doc != sampleHelp {
		t.Errorf("doc = %q", doc)
	}
}

func TestLooksLikeHelpMarkers(t *testing.T) {
	tests := []struct {
		output string
		want   bool
	}{
		{"Usage: foo [options]", true},
		{"usage: foo", true},
		{"USAGE: FOO", true},
		{"Commands:\n  run  start", true},
		{"COMMANDS\n  run  start", false}, // marker match is case sensitive and needs the colon
		{"Try --help for more information", true},
		{"short", false},
		{"completely unrelated error text", false},
	}

	for _, tt := range tests {
		if got := looksLikeHelp(tt.output); got != tt.want {
			t.Errorf("looksLikeHelp(%q) = %v, want %v", tt.output, got, tt.want)
		}
	}
}
