package diag

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/craftinterpreter/glox/ast"
)

var (
	colorError = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")
)

// Printer writes each diagnostic to a writer on its own line and remembers
// whether any were written.
type Printer struct {
	w     io.Writer
	color bool

	lineStyle  lipgloss.Style
	errorStyle lipgloss.Style

	hadError        bool
	hadRuntimeError bool
}

// NewPrinter returns a Printer writing to w. With color set, the line
// prefix and message are styled for the terminal behind w; lipgloss strips
// the styling when w is not a terminal.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:          w,
		color:      color,
		lineStyle:  r.NewStyle().Foreground(colorMuted),
		errorStyle: r.NewStyle().Foreground(colorError).Bold(true),
	}
}

func (p *Printer) Error(line int, message string) {
	p.print(Diagnostic{Kind: KindLexical, Line: line, Message: message})
}

func (p *Printer) TokenError(token ast.Token, message string) {
	p.print(At(token, message))
}

func (p *Printer) RuntimeError(err error) {
	p.print(fromRuntime(err))
}

// HadError reports whether a lexical or syntax error was printed since the
// last Reset.
func (p *Printer) HadError() bool { return p.hadError }

// HadRuntimeError reports whether a runtime error was printed since the
// last Reset.
func (p *Printer) HadRuntimeError() bool { return p.hadRuntimeError }

// Reset clears the error flags, e.g. between REPL lines.
func (p *Printer) Reset() {
	p.hadError = false
	p.hadRuntimeError = false
}

func (p *Printer) print(d Diagnostic) {
	if d.Kind == KindRuntime {
		p.hadRuntimeError = true
	} else {
		p.hadError = true
	}

	_, _ = io.WriteString(p.w, p.format(d)+"\n")
}

func (p *Printer) format(d Diagnostic) string {
	if !p.color {
		return d.String()
	}
	if d.Kind == KindRuntime {
		return p.errorStyle.Render(d.Message) + "\n" + p.lineStyle.Render(d.String()[len(d.Message)+1:])
	}
	prefix := d.String()[:len(d.String())-len(d.Message)]
	return p.lineStyle.Render(prefix) + p.errorStyle.Render(d.Message)
}
