// Package executor runs a user-confirmed recommended command. The command
// string is split on literal spaces into an argument vector and spawned
// directly: no shell, no expansion, inherited environment.
package executor

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/doeshing/localhelp/internal/domain"
	"github.com/doeshing/localhelp/internal/ports"
)

// ArgvExecutor implements ports.CommandExecutor.
type ArgvExecutor struct{}

// NewArgvExecutor builds a new executor.
func NewArgvExecutor() *ArgvExecutor {
	return &ArgvExecutor{}
}

// SplitCommandLine turns a recommended command string into an argument
// vector, discarding empty fragments.
func SplitCommandLine(command string) []string {
	var argv []string
	for _, fragment := range strings.Split(command, " ") {
		if fragment != "" {
			argv = append(argv, fragment)
		}
	}
	return argv
}

// Execute implements ports.CommandExecutor. A non-zero exit status is part
// of the result, not an error; only spawn failures are returned as errors.
func (e *ArgvExecutor) Execute(ctx context.Context, command string) (domain.ExecutionResult, error) {
	argv := SplitCommandLine(command)
	if len(argv) == 0 {
		return domain.ExecutionResult{}, domain.ErrNoCommandToExecute
	}

	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()
	result := domain.ExecutionResult{
		Ran:        true,
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMS: time.Since(start).Milliseconds(),
	}

	if exitErr, ok := err.(*exec.ExitError); ok {
		result.ExitCode = exitErr.ExitCode()
		result.Err = err
		return result, nil
	}
	if err != nil {
		result.Ran = false
		result.Err = err
		return result, err
	}
	return result, nil
}

var _ ports.CommandExecutor = (*ArgvExecutor)(nil)
