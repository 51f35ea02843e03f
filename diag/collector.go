package diag

import (
	"errors"

	"github.com/craftinterpreter/glox/ast"
)

// Collector records diagnostics in the order they were reported.
type Collector struct {
	diagnostics []Diagnostic
}

func (c *Collector) Error(line int, message string) {
	c.diagnostics = append(c.diagnostics, Diagnostic{Kind: KindLexical, Line: line, Message: message})
}

func (c *Collector) TokenError(token ast.Token, message string) {
	c.diagnostics = append(c.diagnostics, At(token, message))
}

func (c *Collector) RuntimeError(err error) {
	c.diagnostics = append(c.diagnostics, fromRuntime(err))
}

// Diagnostics returns the recorded diagnostics.
func (c *Collector) Diagnostics() []Diagnostic {
	return c.diagnostics
}

func (c *Collector) Len() int {
	return len(c.diagnostics)
}

// Err returns all recorded diagnostics joined into one error, or nil.
func (c *Collector) Err() error {
	if len(c.diagnostics) == 0 {
		return nil
	}
	errs := make([]error, len(c.diagnostics))
	for i, d := range c.diagnostics {
		errs[i] = d
	}
	return errors.Join(errs...)
}

// Reset discards the recorded diagnostics.
func (c *Collector) Reset() {
	c.diagnostics = nil
}
