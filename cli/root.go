// Package cli implements the glox command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/craftinterpreter/glox/config"
)

// Exit codes, from sysexits.h.
const (
	ExitUsage   = 64
	ExitDataErr = 65
	ExitIOErr   = 74
)

// ErrSyntax is returned when the source had lexical or syntax errors. The
// errors themselves have already been printed.
var ErrSyntax = errors.New("source has errors")

// exitError attaches a process exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string { return e.err.Error() }
func (e exitError) Unwrap() error { return e.err }

// ExitCode returns the process exit code for an error returned by Execute.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitUsage
}

type app struct {
	cfgFile string
	noColor bool
	verbose bool

	cfg config.Config
	log *slog.Logger
}

// NewRootCommand builds the glox command tree.
func NewRootCommand() *cobra.Command {
	a := &app{cfg: config.Default()}

	root := &cobra.Command{
		Use:   "glox [script]",
		Short: "Scan and parse Lox source",
		Long: `glox turns Lox source text into tokens and a syntax tree.

With a script argument it parses the file and prints the tree; without one
it starts an interactive session. Use "-" to read the script from stdin.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.runREPL(cmd, false, false)
			}
			return a.runParse(cmd, args[0], a.cfg.Output)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug information")

	root.AddCommand(
		a.newTokensCommand(),
		a.newParseCommand(),
		a.newREPLCommand(),
	)
	return root
}

// Execute runs the glox command line with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// setup loads the configuration, applies flag overrides and builds the
// logger shared by all commands.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		cfg, err := config.Load(a.cfgFile)
		if err != nil {
			return exitError{code: ExitUsage, err: err}
		}
		a.cfg = cfg
	}
	if a.noColor {
		a.cfg.Color = false
	}
	if a.verbose {
		a.cfg.LogLevel = "debug"
	}

	level, err := a.cfg.Level()
	if err != nil {
		return exitError{code: ExitUsage, err: err}
	}
	a.log = newLogger(cmd.ErrOrStderr(), level).With(slog.String("run", uuid.NewString()))
	a.log.Debug("configured",
		slog.String("command", cmd.Name()),
		slog.String("config", a.cfgFile),
		slog.String("output", a.cfg.Output),
		slog.Int("max_arguments", a.cfg.MaxArguments))
	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "glox: %v\n", err)
}

// Main runs the command line and returns the process exit code.
func Main(stderr io.Writer) int {
	err := Execute()
	if err != nil && !errors.Is(err, ErrSyntax) {
		printError(stderr, err)
	}
	return ExitCode(err)
}
