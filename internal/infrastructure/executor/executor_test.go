package executor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/localhelp/internal/domain"
)

func TestSplitCommandLine(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    []string
	}{
		{name: "simple", command: "git reset HEAD", want: []string{"git", "reset", "HEAD"}},
		{name: "repeated spaces collapse", command: "docker   ps  -a", want: []string{"docker", "ps", "-a"}},
		{name: "leading and trailing spaces", command: "  ls -la  ", want: []string{"ls", "-la"}},
		{name: "single word", command: "ls", want: []string{"ls"}},
		{name: "empty", command: "", want: nil},
		{name: "spaces only", command: "    ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitCommandLine(tt.command)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitCommandLine(%q) mismatch (-want +got):\n%s", tt.command, diff)
			}
		})
	}
}

func TestExecuteEmptyCommand(t *testing.T) {
	exe := NewArgvExecutor()
	for _, command := range []string{"", "   "} {
		_, err := exe.Execute(context.Background(), command)
		if !errors.Is(err, domain.ErrNoCommandToExecute) {
			t.Errorf("Execute(%q) error = %v, want ErrNoCommandToExecute", command, err)
		}
	}
}

func TestExecuteCapturesOutput(t *testing.T) {
	exe := NewArgvExecutor()

	result, err := exe.Execute(context.Background(), "echo hello world")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !result.Ran {
		t.Error("Ran = false, want true")
	}
	if result.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", result.ExitCode)
	}
	if got := strings.TrimSpace(result.Stdout); got != "hello world" {
		t.Errorf("Stdout = %q, want %q", got, "hello world")
	}
}

func TestExecuteNonZeroExitIsNotAnError(t *testing.T) {
	exe := NewArgvExecutor()

	result, err := exe.Execute(context.Background(), "false")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !result.Ran {
		t.Error("Ran = false, want true")
	}
	if result.ExitCode == 0 {
		t.Error("ExitCode = 0, want non-zero")
	}
}

func TestExecuteSpawnFailure(t *testing.T) {
	exe := NewArgvExecutor()

	result, err := exe.Execute(context.Background(), "definitely-not-a-real-binary-zzz")
	if err == nil {
		t.Fatal("Execute() error = nil, want spawn failure")
	}
	if result.Ran {
		t.Error("Ran = true, want false")
	}
}
