package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		source string
		want   string
	}{
		{"sexpr", []string{"parse", "-"}, "print 1 + 2;", "(print (+ 1 2))\n"},
		{"source", []string{"parse", "-o", "source", "-"}, "for (;;) print 1;", "while (true) print 1;\n"},
		{"root with script", []string{"-"}, "var a;", "(var a)\n"},
		{"empty program", []string{"parse", "-"}, "// nothing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.source, append(tt.args, "--no-color")...)
			if err != nil {
				t.Fatalf("unexpected error %v, stderr %q", err, stderr)
			}
			if stdout != tt.want {
				t.Fatalf("got %q, expected %q", stdout, tt.want)
			}
		})
	}
}

func TestParseCommand_json(t *testing.T) {
	stdout, _, err := execute(t, "print nil;", "parse", "-o", "json", "-")
	if err != nil {
		t.Fatal(err)
	}

	var trees []map[string]interface{}
	if err := json.Unmarshal([]byte(stdout), &trees); err != nil {
		t.Fatalf("invalid JSON %q: %v", stdout, err)
	}
	if len(trees) != 1 || trees[0]["type"] != "Print" {
		t.Fatalf("got %v, expected one Print statement", trees)
	}
}

func TestParseCommand_yaml(t *testing.T) {
	stdout, _, err := execute(t, "break;", "parse", "-o", "yaml", "-")
	if ExitCode(err) != ExitDataErr {
		t.Fatalf("got exit code %d, expected %d", ExitCode(err), ExitDataErr)
	}
	if stdout != "" {
		t.Fatalf("got %q, expected no tree for a program with errors", stdout)
	}

	stdout, _, err = execute(t, "while (true) break;", "parse", "-o", "yaml", "-")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "type: While") {
		t.Fatalf("got %q, expected a While statement", stdout)
	}
}

func TestParseCommand_errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		source string
		code   int
		stderr string
	}{
		{"syntax error", []string{"parse", "-"}, "print ;", ExitDataErr, "[line 1] Error at ';': Expect expression.\n"},
		{"lexical error", []string{"parse", "-"}, "print 1;\n#", ExitDataErr, "[line 2] Error: Unexpected character.\n"},
		{"unknown output", []string{"parse", "-o", "xml", "-"}, "print 1;", ExitUsage, ""},
		{"missing file", []string{"parse", "does-not-exist.lox"}, "", ExitIOErr, ""},
		{"too many arguments", []string{"parse", "a", "b"}, "", ExitUsage, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := execute(t, tt.source, append(tt.args, "--no-color")...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := ExitCode(err); got != tt.code {
				t.Fatalf("got exit code %d, expected %d (%v)", got, tt.code, err)
			}
			if stderr != tt.stderr {
				t.Fatalf("got stderr %q, expected %q", stderr, tt.stderr)
			}
		})
	}
}

func TestParseCommand_errSyntax(t *testing.T) {
	_, _, err := execute(t, "1 = 2;", "parse", "-")
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("got %v, expected %v", err, ErrSyntax)
	}
}

func TestTokensCommand(t *testing.T) {
	stdout, _, err := execute(t, "var x = 1;", "tokens", "-")
	if err != nil {
		t.Fatal(err)
	}

	want := "Var var\nIdentifier x\nEqual =\nNumber 1 1\nSemicolon ;\nEof \n"
	if stdout != want {
		t.Fatalf("got %q, expected %q", stdout, want)
	}
}

func TestREPLCommand(t *testing.T) {
	stdout, _, err := execute(t, "print 1;\nprint;\n", "repl", "--no-color")
	if err != nil {
		t.Fatal(err)
	}

	want := "> (print 1)\n> [line 1] Error at ';': Expect expression.\n> \n"
	if stdout != want {
		t.Fatalf("got %q, expected %q", stdout, want)
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glox.toml")
	content := "output = \"source\"\nmax_arguments = 1\nprompt = \"lox> \"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := execute(t, "print 1;", "--config", path, "-")
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "print 1;\n" {
		t.Fatalf("got %q, expected the source form", stdout)
	}

	stdout, _, err = execute(t, "print 1;", "--config", path, "parse", "-o", "sexpr", "-")
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "(print 1)\n" {
		t.Fatalf("got %q, expected the flag to override the config", stdout)
	}

	_, _, err = execute(t, "f(1, 2);", "--config", path, "--no-color", "-")
	if ExitCode(err) != ExitDataErr {
		t.Fatalf("got exit code %d, expected the argument cap from the config", ExitCode(err))
	}

	stdout, _, err = execute(t, "", "--config", path, "repl")
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "lox> \n" {
		t.Fatalf("got %q, expected the configured prompt", stdout)
	}
}

func TestConfigFlag_invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glox.yaml")
	if err := os.WriteFile(path, []byte("output: xml\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := execute(t, "", "--config", path, "parse", "-")
	if ExitCode(err) != ExitUsage {
		t.Fatalf("got exit code %d, expected %d", ExitCode(err), ExitUsage)
	}
}

func TestVerbose(t *testing.T) {
	_, stderr, err := execute(t, "print 1;", "-v", "parse", "-")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"level=DEBUG", "msg=compiled", "statements=1", "run="} {
		if !strings.Contains(stderr, want) {
			t.Errorf("got %q, expected it to contain %q", stderr, want)
		}
	}
}

func TestVerbose_diagnosticPrintedOnce(t *testing.T) {
	_, stderr, err := execute(t, "print ;", "-v", "--no-color", "parse", "-")
	if ExitCode(err) != ExitDataErr {
		t.Fatalf("got exit code %d, expected %d", ExitCode(err), ExitDataErr)
	}
	if n := strings.Count(stderr, "[line 1] Error at ';': Expect expression."); n != 1 {
		t.Fatalf("got the diagnostic %d times in %q, expected once", n, stderr)
	}
	if !strings.Contains(stderr, `level=DEBUG msg="Expect expression." token=;`) {
		t.Fatalf("got %q, expected a debug record for the diagnostic", stderr)
	}
}

func TestParseCommand_numberOutOfRange(t *testing.T) {
	stdout, stderr, err := execute(t, "print 1"+strings.Repeat("0", 400)+";", "parse", "-o", "json", "--no-color", "-")
	if ExitCode(err) != ExitDataErr {
		t.Fatalf("got exit code %d, expected %d", ExitCode(err), ExitDataErr)
	}
	if stdout != "" {
		t.Fatalf("got %q, expected no tree", stdout)
	}
	if stderr != "[line 1] Error: Number literal out of range.\n" {
		t.Fatalf("got stderr %q", stderr)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{errors.New("unknown flag"), ExitUsage},
		{exitError{code: ExitIOErr, err: os.ErrNotExist}, ExitIOErr},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("%v: got %d, expected %d", tt.err, got, tt.want)
		}
	}
}
