// Package display renders the rename preview, counts and results for the
// terminal.
//
// All output goes through a [Printer] bound to one writer. Styling uses a
// lipgloss renderer pinned to that writer, so tests and pipes get plain
// text while an interactive terminal gets color.
package display

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/gyeh/namecleaner/internal/config"
	"github.com/gyeh/namecleaner/internal/model"
	"github.com/gyeh/namecleaner/internal/rename"
)

// IsTerminalFunc reports whether a file descriptor is a terminal.
// It can be overridden for testing.
var IsTerminalFunc = term.IsTerminal

// ColorEnabled resolves a --color mode against f and the NO_COLOR and TERM
// environment variables.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if f == nil || !IsTerminalFunc(int(f.Fd())) {
		return false
	}
	return os.Getenv("NO_COLOR") == "" && strings.ToLower(os.Getenv("TERM")) != "dumb"
}

// Printer writes user-facing output.
type Printer struct {
	out io.Writer

	header   lipgloss.Style
	original lipgloss.Style
	proposed lipgloss.Style
	kind     lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
}

// NewPrinter returns a Printer writing to out, colored when color is true.
func NewPrinter(out io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(out)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return &Printer{
		out:      out,
		header:   base.Bold(true).Foreground(lipgloss.Color("63")),
		original: base.Foreground(lipgloss.Color("204")),
		proposed: base.Foreground(lipgloss.Color("78")),
		kind:     base.Foreground(lipgloss.Color("81")),
		success:  base.Bold(true).Foreground(lipgloss.Color("78")),
		failure:  base.Bold(true).Foreground(lipgloss.Color("197")),
	}
}

// AlreadyClean reports that nothing in dir needs renaming.
func (p *Printer) AlreadyClean(dir string) {
	fmt.Fprintf(p.out, "The names within %s are already formatted properly.\n", dir)
}

// Pending reports how many entries can be renamed.
func (p *Printer) Pending(dir string, files, dirs int) {
	fmt.Fprintf(p.out, "There are %d file(s) and %d dir(s) that can be renamed in %s.\n", files, dirs, dir)
}

// Preview prints the change set as an aligned three-column table. Names are
// quoted so surrounding whitespace stays visible.
func (p *Printer) Preview(cs model.ChangeSet) {
	const indent = "    "
	headers := [3]string{"Current Name", "Altered Name", "Type"}

	rows := make([][3]string, len(cs))
	widths := [3]int{lipgloss.Width(headers[0]), lipgloss.Width(headers[1]), lipgloss.Width(headers[2])}
	for i, e := range cs {
		rows[i] = [3]string{strconv.Quote(e.Original), strconv.Quote(e.Proposed), e.Kind.String()}
		for j, cell := range rows[i] {
			widths[j] = max(widths[j], lipgloss.Width(cell))
		}
	}

	rule := indent + strings.Repeat("-", widths[0]+widths[1]+widths[2]+6)
	fmt.Fprintln(p.out, rule)
	fmt.Fprintln(p.out, indent+p.header.Render(pad(headers[0], widths[0]))+" | "+
		p.header.Render(pad(headers[1], widths[1]))+" | "+p.header.Render(headers[2]))
	fmt.Fprintln(p.out, rule)
	for _, row := range rows {
		fmt.Fprintln(p.out, indent+p.original.Render(pad(row[0], widths[0]))+" | "+
			p.proposed.Render(pad(row[1], widths[1]))+" | "+p.kind.Render(row[2]))
	}
	fmt.Fprintln(p.out)
}

// Summary reports the outcome of an apply run.
func (p *Printer) Summary(s model.RenameSummary) {
	fmt.Fprintln(p.out, p.success.Render(
		fmt.Sprintf("%d file(s) and %d dir(s) were renamed.", s.FilesRenamed, s.DirsRenamed)))
}

// Collisions lists every name that more than one entry would be renamed to.
func (p *Printer) Collisions(ce *rename.CollisionError) {
	fmt.Fprintln(p.out, p.failure.Render("Collisions found, nothing was renamed:"))
	for _, c := range ce.Collisions {
		quoted := make([]string, len(c.Originals))
		for i, o := range c.Originals {
			quoted[i] = strconv.Quote(o)
		}
		fmt.Fprintf(p.out, "  %s <- %s\n", strconv.Quote(c.Proposed), strings.Join(quoted, ", "))
	}
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
