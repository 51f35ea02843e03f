// Package repl reads source lines interactively and prints the syntax tree,
// or the tokens, of each one.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/craftinterpreter/glox/ast"
	"github.com/craftinterpreter/glox/diag"
	"github.com/craftinterpreter/glox/parse"
)

// Options configures a REPL session.
type Options struct {
	Prompt  string
	Color   bool
	MaxArgs int
	// Tokens shows the scanned tokens instead of the syntax tree.
	Tokens bool
}

// Run starts an interactive session on in and out. A terminal gets the full
// screen editor; anything else is read line by line.
func Run(in *os.File, out io.Writer, opts Options) error {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		_, err := tea.NewProgram(New(opts), tea.WithInput(in), tea.WithOutput(out)).Run()
		return err
	}
	return RunPlain(in, out, opts)
}

// RunPlain prints the prompt, reads a line and writes its result until in
// is exhausted.
func RunPlain(in io.Reader, out io.Writer, opts Options) error {
	input := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, opts.Prompt)
		if !input.Scan() {
			break
		}

		result, _ := Eval(input.Text(), opts)
		if result != "" {
			fmt.Fprintln(out, result)
		}
	}
	fmt.Fprintln(out)
	return input.Err()
}

// Eval scans and parses one line. It returns the rendered tokens or tree,
// or the diagnostics if any were reported, and whether it succeeded.
func Eval(line string, opts Options) (string, bool) {
	var errs diag.Collector
	tokens, statements, hadError := parse.Source(line, &errs, parse.WithMaxArgs(opts.MaxArgs))

	if hadError {
		lines := make([]string, errs.Len())
		for i, d := range errs.Diagnostics() {
			lines[i] = d.String()
		}
		return strings.Join(lines, "\n"), false
	}

	if opts.Tokens {
		lines := make([]string, len(tokens))
		for i, t := range tokens {
			lines[i] = t.String()
		}
		return strings.Join(lines, "\n"), true
	}
	return ast.SprintStmts(statements), true
}
