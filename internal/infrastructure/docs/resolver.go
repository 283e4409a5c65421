// Package docs retrieves human-readable documentation for arbitrary
// command-line tools. Documentation availability is wildly inconsistent, so
// the resolver treats heterogeneous, partially-failing subprocess output as a
// best-effort signal: manual page first, then a fixed ladder of help-flag
// invocations, first success wins.
package docs

import (
	"context"
	"fmt"
	"strings"

	"github.com/doeshing/localhelp/internal/domain"
	"github.com/doeshing/localhelp/internal/ports"
)

// helpMarkers are the substrings that make a help-flag attempt's output
// count as real help text. Matching is case-sensitive.
var helpMarkers = []string{
	"Usage:", "usage:", "USAGE:",
	"Options:", "options:",
	"Commands:", "commands:",
	"--help",
	"Examples:", "Description:",
}

// Resolver implements ports.DocResolver on top of a Runner.
type Resolver struct {
	runner Runner
	logger ports.Logger
}

// NewResolver creates a Resolver. A nil runner defaults to the real
// subprocess runner.
func NewResolver(runner Runner, logger ports.Logger) *Resolver {
	if runner == nil {
		runner = NewExecRunner()
	}
	return &Resolver{runner: runner, logger: logger}
}

// Resolve implements ports.DocResolver. Per-attempt failures are absorbed;
// only exhaustion of every strategy surfaces, as domain.ErrManPageNotFound.
func (r *Resolver) Resolve(ctx context.Context, command string, args []string) (string, error) {
	if text, err := r.manPage(ctx, command); err == nil {
		return text, nil
	} else if r.logger != nil {
		r.logger.Debug("man page unavailable", map[string]interface{}{
			"command": command, "error": err.Error(),
		})
	}

	for _, argv := range helpAttempts(command, args) {
		text, err := r.helpAttempt(ctx, argv)
		if err == nil {
			return text, nil
		}
		if r.logger != nil {
			r.logger.Debug("help attempt failed", map[string]interface{}{
				"argv": strings.Join(argv, " "), "error": err.Error(),
			})
		}
	}

	return "", domain.ErrManPageNotFound
}

// manPage runs the manual-page viewer through col -b, which strips the
// backspace-based bold/underline overstrike sequences man emits.
func (r *Resolver) manPage(ctx context.Context, command string) (string, error) {
	text, err := r.runner.RunFiltered(ctx, "man", []string{command}, "col", []string{"-b"})
	if err != nil {
		return "", fmt.Errorf("%w: man %s: %v", domain.ErrHelpCommandFailed, command, err)
	}
	return text, nil
}

// helpAttempt runs one help-flag argv. Success requires an exit status of
// 0, 1, or 2 and output that looks like help.
func (r *Resolver) helpAttempt(ctx context.Context, argv []string) (string, error) {
	output, exitCode, err := r.runner.Run(ctx, argv[0], argv[1:]...)
	if exitCode < 0 || exitCode > 2 {
		if err == nil {
			err = fmt.Errorf("exit status %d", exitCode)
		}
		return "", fmt.Errorf("%w: %v", domain.ErrHelpCommandFailed, err)
	}
	if !looksLikeHelp(output) {
		return "", fmt.Errorf("%w: output does not look like help", domain.ErrHelpCommandFailed)
	}
	return output, nil
}

// helpAttempts is the fixed argv ladder, in order. When args is empty the
// subcommand patterns degrade to the plain ones, so those attempts repeat;
// that repetition is deliberate and harmless.
func helpAttempts(command string, args []string) [][]string {
	subHelp := []string{command, "--help"}
	subShort := []string{command, "-h"}
	if len(args) > 0 {
		subHelp = []string{command, args[0], "--help"}
		subShort = []string{command, args[0], "-h"}
	}
	return [][]string{
		{command, "--help"},
		{command, "-h"},
		subHelp,
		subShort,
		{command, "help"},
		{command},
	}
}

func looksLikeHelp(output string) bool {
	if len(output) < domain.MinHelpOutputLen {
		return false
	}
	for _, marker := range helpMarkers {
		if strings.Contains(output, marker) {
			return true
		}
	}
	return false
}

var _ ports.DocResolver = (*Resolver)(nil)
