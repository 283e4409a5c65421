package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/doeshing/localhelp/internal/app"
	"github.com/doeshing/localhelp/internal/domain"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
	Version string
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	container.Prompter = NewPrompter(nil, nil)

	root := &cobra.Command{
		Use:   "localhelp <command> [subcommand-args...] [question]",
		Short: "Explain command-line tools using local docs and an LLM",
		Long: "localhelp augments man pages and --help output with an LLM explanation,\n" +
			"then optionally runs the model's suggested command after confirmation.",
		Args: cobra.ArbitraryArgs,
		// Flags belong to the target command, not to localhelp.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 || args[0] == "-h" || args[0] == "--help" {
				RenderUsage(out)
				return nil
			}
			return runAssist(cmd.Context(), container, args, out)
		},
	}

	root.AddCommand(newDoctorCommand(container))
	root.AddCommand(newVersionCommand(opts.Version))
	return root, nil
}

// runAssist drives the interactive pipeline around the assist service:
// documentation display, the waiting indicator, the structured answer, and
// the confirmation-gated execution.
func runAssist(ctx context.Context, container *app.Container, args []string, out io.Writer) error {
	info, err := domain.SplitArgs(args)
	if err != nil {
		return err
	}

	svc := container.AssistService

	doc, found, err := svc.ResolveDocs(ctx, info)
	if err != nil {
		return err
	}

	switch {
	case found:
		RenderDocumentation(out, info.Command, doc)
	case info.HasQuery():
		RenderNoDocsQuerying(out, info.Command)
	default:
		RenderNoDocsHint(out, info.Command)
		return nil
	}

	wait := newWaitIndicator()
	wait.Start()
	result, err := svc.Ask(ctx, info, doc, found)
	wait.Stop()
	if err != nil {
		return err
	}

	RenderResponse(out, result.Response)

	if !result.Response.HasCommand() {
		return nil
	}

	confirmed, err := container.Prompter.Confirm(result.Response.Command, result.Warnings)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(out, "Not executing.")
		return nil
	}

	execResult, err := container.Executor.Execute(ctx, result.Response.Command)
	if err != nil {
		if errors.Is(err, domain.ErrNoCommandToExecute) {
			fmt.Fprintln(out, "The suggested command was empty; nothing to execute.")
			return nil
		}
		// Spawn failures are reported, not escalated.
		fmt.Fprintf(out, "Could not run the command: %v\n", err)
		return nil
	}
	RenderExecution(out, execResult)
	return nil
}

func newWaitIndicator() *spinner.Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " waiting for the model..."
	return s
}

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment localhelp depends on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := container.DoctorService.Run()
			RenderHealthReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the localhelp version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if version == "" {
				version = "dev"
			}
			fmt.Fprintln(cmd.OutOrStdout(), "localhelp", version)
		},
	}
}
