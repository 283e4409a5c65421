package docs

import (
	"bytes"
	"context"
	"io"
	"os/exec"

	"github.com/doeshing/localhelp/internal/domain"
)

// Runner spawns subprocesses and captures their combined output up to a
// fixed size limit. Pathological tools can produce unbounded output; the
// limit caps memory without killing the child.
type Runner interface {
	// Run executes name with args. exitCode is -1 when the process could not
	// be started at all.
	Run(ctx context.Context, name string, args ...string) (output string, exitCode int, err error)
	// RunFiltered pipes the stdout of name through filter and captures the
	// filter's output. Success requires the first process to exit zero.
	RunFiltered(ctx context.Context, name string, args []string, filter string, filterArgs []string) (string, error)
}

// ExecRunner is the real Runner backed by os/exec.
type ExecRunner struct{}

// NewExecRunner creates an ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var buf bytes.Buffer
	limited := &LimitedWriter{W: &buf, Limit: domain.MaxCapturedOutput}
	cmd.Stdout = limited
	cmd.Stderr = limited

	err := cmd.Run()
	output := buf.String()

	if err == nil {
		return output, 0, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return output, exitErr.ExitCode(), err
	}
	return output, -1, err
}

func (r *ExecRunner) RunFiltered(ctx context.Context, name string, args []string, filter string, filterArgs []string) (string, error) {
	primary := exec.CommandContext(ctx, name, args...)
	filterCmd := exec.CommandContext(ctx, filter, filterArgs...)

	pipeReader, pipeWriter := io.Pipe()
	primary.Stdout = pipeWriter
	filterCmd.Stdin = pipeReader

	var buf bytes.Buffer
	filterCmd.Stdout = &LimitedWriter{W: &buf, Limit: domain.MaxCapturedOutput}

	if err := filterCmd.Start(); err != nil {
		pipeWriter.Close()
		pipeReader.Close()
		return "", err
	}
	if err := primary.Start(); err != nil {
		pipeWriter.Close()
		pipeReader.Close()
		filterCmd.Wait()
		return "", err
	}

	primaryDone := make(chan error, 1)
	go func() {
		err := primary.Wait()
		pipeWriter.CloseWithError(err)
		primaryDone <- err
	}()

	filterErr := filterCmd.Wait()
	// If the filter died mid-stream, closing the read end unblocks the
	// primary's pending writes; otherwise this is a no-op after EOF.
	pipeReader.Close()
	primaryErr := <-primaryDone

	if primaryErr != nil {
		return "", primaryErr
	}
	if filterErr != nil {
		return "", filterErr
	}
	return buf.String(), nil
}

// LimitedWriter implements io.Writer with size limiting. Writes past the
// limit are reported as successful so the child never sees a broken pipe.
type LimitedWriter struct {
	W         io.Writer
	Limit     int64
	written   int64
	Truncated bool
}

func (lw *LimitedWriter) Write(p []byte) (n int, err error) {
	if lw.written >= lw.Limit {
		lw.Truncated = true
		return len(p), nil
	}

	remaining := lw.Limit - lw.written
	if int64(len(p)) > remaining {
		lw.Truncated = true
		n, err = lw.W.Write(p[:remaining])
		lw.written += int64(n)
		return len(p), err
	}

	n, err = lw.W.Write(p)
	lw.written += int64(n)
	return n, err
}
