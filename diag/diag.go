// Package diag carries lexical, syntax and runtime error reports from the
// scanner, parser and downstream evaluators to whoever is listening.
package diag

import (
	"fmt"

	"github.com/craftinterpreter/glox/ast"
)

// Reporter receives diagnostics. Calls are synchronous and return nothing;
// a Reporter never influences the control flow of its caller.
type Reporter interface {
	// Error reports a defect located only by line, such as a lexical error.
	Error(line int, message string)
	// TokenError reports a defect at a token.
	TokenError(token ast.Token, message string)
	// RuntimeError reports an evaluation failure. The scanner and parser
	// never call it.
	RuntimeError(err error)
}

type Kind uint8

const (
	KindLexical Kind = iota
	KindSyntax
	KindRuntime
)

func (k Kind) String() string {
	switch k {
	case KindLexical:
		return "lexical"
	case KindSyntax:
		return "syntax"
	case KindRuntime:
		return "runtime"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Diagnostic is a single reported defect.
type Diagnostic struct {
	Kind    Kind
	Line    int
	Where   string
	Message string
}

func (d Diagnostic) String() string {
	if d.Kind == KindRuntime {
		return fmt.Sprintf("%s\n[line %d]", d.Message, d.Line)
	}
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

// Error lets a Diagnostic travel as an error value.
func (d Diagnostic) Error() string {
	return d.String()
}

// At builds the diagnostic for a defect at token.
func At(token ast.Token, message string) Diagnostic {
	return Diagnostic{Kind: KindSyntax, Line: token.Line, Where: where(token), Message: message}
}

func where(token ast.Token) string {
	if token.TokenType == ast.TokenEof {
		return " at end"
	}
	return " at '" + token.Lexeme + "'"
}

// fromRuntime converts an evaluation error. RuntimeError values keep their
// line; any other error is reported without one.
func fromRuntime(err error) Diagnostic {
	if re, ok := err.(RuntimeError); ok {
		return Diagnostic{Kind: KindRuntime, Line: re.Token.Line, Message: re.Message}
	}
	return Diagnostic{Kind: KindRuntime, Message: err.Error()}
}

// RuntimeError is the error an evaluator raises for a failure at a token.
type RuntimeError struct {
	Token   ast.Token
	Message string
}

func (r RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", r.Message, r.Token.Line)
}
