package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/term"
)

// IsTerminalFunc is the function used to check if a file descriptor is a terminal.
// It can be overridden for testing.
var IsTerminalFunc = term.IsTerminal

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	if f == nil {
		return false
	}
	return IsTerminalFunc(int(f.Fd()))
}

// Prompter asks single-letter questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Choose prints question and reads lines until the answer matches one of
// choices, ignoring case and surrounding whitespace. It returns the matching
// choice, or io.EOF if input ends first.
func (p *Prompter) Choose(question string, choices ...string) (string, error) {
	for {
		fmt.Fprint(p.out, question)
		line, err := p.in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer != "" {
			if i := slices.Index(choices, answer); i >= 0 {
				return choices[i], nil
			}
		}
		if err != nil {
			fmt.Fprintln(p.out)
			return "", err
		}
		fmt.Fprintf(p.out, "Invalid option: %q is not %s.\n", answer, orList(choices))
	}
}

func orList(choices []string) string {
	quoted := make([]string, len(choices))
	for i, c := range choices {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	if len(quoted) <= 1 {
		return strings.Join(quoted, "")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
