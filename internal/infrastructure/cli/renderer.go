package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/doeshing/localhelp/internal/domain"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	labelColor   = color.New(color.Bold)
	commandColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	failColor    = color.New(color.FgRed)
)

// RenderUsage prints the short usage message shown when localhelp is called
// with no arguments.
func RenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: localhelp <command> [subcommand-args...] [question]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  localhelp tar")
	fmt.Fprintln(w, "  localhelp git reset \"I want to unstage my changes\"")
	fmt.Fprintln(w, "  localhelp docker ps \"how do I see running containers\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Set LOCALHELP_LLM_PROVIDER=simulation to try it without an API key.")
}

// RenderDocumentation prints the resolved documentation section.
func RenderDocumentation(w io.Writer, command, doc string) {
	headerColor.Fprintf(w, "📖 Documentation for %s\n", command)
	fmt.Fprintln(w, strings.TrimRight(doc, "\n"))
	fmt.Fprintln(w)
}

// RenderNoDocsQuerying prints the notice used when documentation is missing
// but a question was asked.
func RenderNoDocsQuerying(w io.Writer, command string) {
	warnColor.Fprintf(w, "🔍 No documentation found for %q, querying the model anyway...\n\n", command)
}

// RenderNoDocsHint prints the terminal message when there is neither
// documentation nor a question to forward.
func RenderNoDocsHint(w io.Writer, command string) {
	warnColor.Fprintf(w, "🔍 No documentation found for %q.\n", command)
	fmt.Fprintf(w, "Add a question to ask the model anyway, e.g.:\n")
	fmt.Fprintf(w, "  localhelp %s \"how do I use this\"\n", command)
}

// RenderResponse prints the structured AI answer block. Absent optional
// fields are omitted.
func RenderResponse(w io.Writer, resp domain.LLMResponse) {
	headerColor.Fprintln(w, "🤖 AI Response")
	labelColor.Fprint(w, "💡 Explanation: ")
	fmt.Fprintln(w, resp.Explanation)
	if resp.HasCommand() {
		labelColor.Fprint(w, "👉 Suggested command: ")
		commandColor.Fprintln(w, resp.Command)
	}
	if resp.Warnings != "" {
		labelColor.Fprint(w, "⚠️  Warnings: ")
		warnColor.Fprintln(w, resp.Warnings)
	}
	if resp.AdditionalInfo != "" {
		labelColor.Fprint(w, "ℹ️  Additional info: ")
		fmt.Fprintln(w, resp.AdditionalInfo)
	}
	fmt.Fprintln(w)
}

// RenderExecution prints the captured output of the executed command.
func RenderExecution(w io.Writer, result domain.ExecutionResult) {
	headerColor.Fprintln(w, "📦 Command output")
	if result.Stdout != "" {
		fmt.Fprint(w, result.Stdout)
		if !strings.HasSuffix(result.Stdout, "\n") {
			fmt.Fprintln(w)
		}
	}
	if result.Stderr != "" {
		warnColor.Fprint(w, result.Stderr)
		if !strings.HasSuffix(result.Stderr, "\n") {
			fmt.Fprintln(w)
		}
	}
	if result.ExitCode != 0 {
		failColor.Fprintf(w, "Command exited with status %d\n", result.ExitCode)
	}
}

// RenderHealthReport prints doctor results.
func RenderHealthReport(w io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		switch check.Status {
		case domain.HealthOK:
			fmt.Fprintf(w, "✅ %s: %s\n", check.Name, check.Detail)
		case domain.HealthWarn:
			warnColor.Fprintf(w, "⚠️  %s: %s\n", check.Name, check.Detail)
		default:
			failColor.Fprintf(w, "❌ %s: %s\n", check.Name, check.Detail)
		}
	}
	if report.Healthy() {
		fmt.Fprintln(w, "\nEnvironment looks usable.")
	} else {
		failColor.Fprintln(w, "\nSome checks failed; localhelp may not work correctly.")
	}
}
