package parse

import (
	"github.com/craftinterpreter/glox/ast"
	"github.com/craftinterpreter/glox/diag"
	"github.com/craftinterpreter/glox/scan"
)

// Source scans and parses source in one pass. It returns the tokens, the
// statements, and whether any lexical or syntax error was reported.
func Source(source string, reporter diag.Reporter, opts ...Option) ([]ast.Token, []ast.Stmt, bool) {
	counter := &counting{Reporter: reporter}
	tokens := scan.NewScanner(source, counter).ScanTokens()
	statements, _ := NewParser(tokens, counter, opts...).Parse()
	return tokens, statements, counter.n > 0
}

// counting counts the lexical and syntax errors passed through it.
type counting struct {
	diag.Reporter
	n int
}

func (c *counting) Error(line int, message string) {
	c.n++
	c.Reporter.Error(line, message)
}

func (c *counting) TokenError(token ast.Token, message string) {
	c.n++
	c.Reporter.TokenError(token, message)
}
