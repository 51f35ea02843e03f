package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/craftinterpreter/glox/ast"
	"github.com/craftinterpreter/glox/config"
	"github.com/craftinterpreter/glox/diag"
	"github.com/craftinterpreter/glox/parse"
	"github.com/craftinterpreter/glox/repl"
)

func (a *app) newTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <script>",
		Short: "Print the tokens of a script, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, _, err := a.compile(cmd, args[0])
			for _, t := range tokens {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return err
		},
	}
}

func (a *app) newParseCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "parse <script>",
		Short: "Print the syntax tree of a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("output") {
				output = a.cfg.Output
			}
			return a.runParse(cmd, args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", config.OutputSexpr, "tree format: sexpr, source, json or yaml")
	return cmd
}

func (a *app) newREPLCommand() *cobra.Command {
	var tokens, plain bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runREPL(cmd, tokens, plain)
		},
	}
	cmd.Flags().BoolVar(&tokens, "tokens", false, "show tokens instead of the syntax tree")
	cmd.Flags().BoolVar(&plain, "plain", false, "read plain lines even on a terminal")
	return cmd
}

func (a *app) runParse(cmd *cobra.Command, path, output string) error {
	switch output {
	case config.OutputSexpr, config.OutputSource, config.OutputJSON, config.OutputYAML:
	default:
		return exitError{code: ExitUsage, err: fmt.Errorf("unknown output format %q", output)}
	}

	_, statements, err := a.compile(cmd, path)
	if err != nil {
		return err
	}
	if err := writeTree(cmd.OutOrStdout(), statements, output); err != nil {
		return exitError{code: ExitIOErr, err: err}
	}
	return nil
}

func (a *app) runREPL(cmd *cobra.Command, tokens, plain bool) error {
	opts := repl.Options{
		Prompt:  a.cfg.Prompt,
		Color:   a.cfg.Color,
		MaxArgs: a.cfg.MaxArguments,
		Tokens:  tokens,
	}

	in, ok := cmd.InOrStdin().(*os.File)
	if plain || !ok {
		return repl.RunPlain(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
	}
	return repl.Run(in, cmd.OutOrStdout(), opts)
}

// compile reads and parses the script at path, printing diagnostics to
// stderr. The tokens and statements are returned even when it fails with
// ErrSyntax.
func (a *app) compile(cmd *cobra.Command, path string) ([]ast.Token, []ast.Stmt, error) {
	source, err := readSource(cmd.InOrStdin(), path)
	if err != nil {
		return nil, nil, exitError{code: ExitIOErr, err: err}
	}

	printer := diag.NewPrinter(cmd.ErrOrStderr(), a.cfg.Color)
	reporter := diag.Multi{printer, diag.NewLogger(a.log)}

	start := time.Now()
	tokens, statements, hadError := parse.Source(string(source), reporter, parse.WithMaxArgs(a.cfg.MaxArguments))
	a.log.Debug("compiled",
		slog.String("path", path),
		slog.Int("bytes", len(source)),
		slog.Int("tokens", len(tokens)),
		slog.Int("statements", len(statements)),
		slog.Int("nodes", ast.Count(statements)),
		slog.Duration("elapsed", time.Since(start)))

	if hadError {
		return tokens, statements, exitError{code: ExitDataErr, err: fmt.Errorf("%s: %w", path, ErrSyntax)}
	}
	return tokens, statements, nil
}

func readSource(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func writeTree(w io.Writer, statements []ast.Stmt, output string) error {
	switch output {
	case config.OutputSexpr:
		if len(statements) == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, ast.SprintStmts(statements))
		return err
	case config.OutputSource:
		_, err := fmt.Fprintln(w, ast.Render(statements))
		return err
	case config.OutputJSON:
		return ast.FprintJSON(w, statements)
	case config.OutputYAML:
		return ast.FprintYAML(w, statements)
	}
	return fmt.Errorf("unknown output format %q", output)
}
