package diag

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/craftinterpreter/glox/ast"
)

var (
	equalToken = ast.Token{TokenType: ast.TokenEqual, Lexeme: "=", Line: 3}
	eofToken   = ast.Token{TokenType: ast.TokenEof, Line: 9}
)

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{"lexical", Diagnostic{Kind: KindLexical, Line: 2, Message: "Unexpected character."}, "[line 2] Error: Unexpected character."},
		{"at token", At(equalToken, "Invalid assignment target."), "[line 3] Error at '=': Invalid assignment target."},
		{"at end", At(eofToken, "Expect ';' after value."), "[line 9] Error at end: Expect ';' after value."},
		{"runtime", fromRuntime(RuntimeError{Token: equalToken, Message: "Operands must be numbers."}), "Operands must be numbers.\n[line 3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.String(); got != tt.want {
				t.Fatalf("got %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestRuntimeError_Error(t *testing.T) {
	err := RuntimeError{Token: equalToken, Message: "Undefined variable 'a'."}
	if got, want := err.Error(), "Undefined variable 'a'.\n[line 3]"; got != want {
		t.Fatalf("got %q, expected %q", got, want)
	}
	if got := fromRuntime(err).String(); got != err.Error() {
		t.Fatalf("got %q, expected %q", got, err.Error())
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	if p.HadError() || p.HadRuntimeError() {
		t.Fatal("new printer reports errors")
	}

	p.Error(1, "Unexpected character.")
	p.TokenError(eofToken, "Expect expression.")
	if !p.HadError() {
		t.Error("HadError() = false after a syntax error")
	}
	if p.HadRuntimeError() {
		t.Error("HadRuntimeError() = true without a runtime error")
	}

	p.RuntimeError(errors.New("boom"))
	if !p.HadRuntimeError() {
		t.Error("HadRuntimeError() = false after a runtime error")
	}

	want := "[line 1] Error: Unexpected character.\n" +
		"[line 9] Error at end: Expect expression.\n" +
		"boom\n[line 0]\n"
	if buf.String() != want {
		t.Fatalf("got %q, expected %q", buf.String(), want)
	}

	p.Reset()
	if p.HadError() || p.HadRuntimeError() {
		t.Fatal("Reset did not clear the error flags")
	}
}

func TestCollector(t *testing.T) {
	var c Collector
	if c.Err() != nil {
		t.Fatalf("got %v, expected nil", c.Err())
	}

	c.Error(1, "Unterminated string.")
	c.TokenError(equalToken, "Invalid assignment target.")
	if c.Len() != 2 {
		t.Fatalf("got %d diagnostics, expected 2", c.Len())
	}
	if got := c.Diagnostics()[1].Kind; got != KindSyntax {
		t.Errorf("got kind %s, expected syntax", got)
	}

	err := c.Err()
	var d Diagnostic
	if !errors.As(err, &d) || d.Kind != KindLexical {
		t.Errorf("got %v, expected it to wrap the lexical diagnostic", err)
	}
	want := "[line 1] Error: Unterminated string.\n[line 3] Error at '=': Invalid assignment target."
	if err.Error() != want {
		t.Errorf("got %q, expected %q", err.Error(), want)
	}

	c.Reset()
	if c.Len() != 0 {
		t.Fatalf("got %d diagnostics after Reset, expected 0", c.Len())
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := NewLogger(log)

	l.TokenError(equalToken, "Invalid assignment target.")
	l.RuntimeError(RuntimeError{Token: eofToken, Message: "boom"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d records, expected 2: %q", len(lines), buf.String())
	}
	for _, want := range []string{"level=DEBUG", `msg="Invalid assignment target."`, "kind=syntax", "line=3", `token="="`, "token_type=Equal"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("got %q, expected it to contain %q", lines[0], want)
		}
	}
	for _, want := range []string{"level=ERROR", "msg=boom", "kind=runtime", "line=9"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("got %q, expected it to contain %q", lines[1], want)
		}
	}
}

func TestMulti(t *testing.T) {
	var a, b Collector
	var r Reporter = Multi{&a, &b}

	r.Error(1, "Unexpected character.")
	r.TokenError(equalToken, "Invalid assignment target.")
	r.RuntimeError(errors.New("boom"))

	for _, c := range []*Collector{&a, &b} {
		if c.Len() != 3 {
			t.Fatalf("got %d diagnostics, expected 3", c.Len())
		}
	}
}
