package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/doeshing/localhelp/internal/ports"
)

// Prompter implements ConfirmationPrompter using stdin/stdout.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter constructs a prompter referencing stdio.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm asks whether the recommended command should run. Only y, Y, and
// yes count as affirmative; anything else, including empty input and end of
// input, declines.
func (p *Prompter) Confirm(command string, warnings []string) (bool, error) {
	for _, warning := range warnings {
		warnColor.Fprintf(p.out, "⚠️  %s\n", warning)
	}
	fmt.Fprintf(p.out, "\n  $ %s\n\n", command)
	fmt.Fprint(p.out, "Run the suggested command? [y/N]: ")

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		// End of input declines without complaint.
		return false, nil
	}
	line = strings.TrimSpace(line)
	return line == "y" || line == "Y" || line == "yes", nil
}

var _ ports.ConfirmationPrompter = (*Prompter)(nil)
