package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pengelbrecht/sum/internal/config"
	"github.com/pengelbrecht/sum/internal/styles"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Process exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

var rootCmd = &cobra.Command{
	Use:   "sum",
	Short: "Add two numbers",
	Long: `sum adds two numbers.

Integers add exactly. If either operand has a fractional part or an
exponent, the result is a floating-point number.

Examples:
  sum add 2 3
  sum add -3 10
  sum add 2 3.5 --json
  sum check
  sum repl`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var (
	configPath string
	verbose    bool
	noColor    bool

	// cfg is loaded once per invocation by setup.
	cfg config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/sum/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
}

func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	// An explicit --config must exist; the default location may be absent.
	path := configPath
	load := config.Load
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
		load = config.LoadOrDefault
	}

	loaded, err := load(path)
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}
	cfg = loaded

	styles.SetColor(cfg.Output.IsColor() && !noColor)
	slog.Debug("config loaded", "path", path, "version", cfg.Version)
	return nil
}

// Execute runs the CLI with os.Args and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return ExecuteContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// ExecuteContext runs the CLI with the given arguments and writers.
func ExecuteContext(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	resetFlags(rootCmd)
	rootCmd.SetArgs(operandArgs(args))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if isUsageError(err) {
			fmt.Fprintln(stderr, "Run 'sum --help' for usage.")
			return ExitUsage
		}
		return ExitFailure
	}
	return ExitSuccess
}

// usageError marks errors caused by bad arguments or flags.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func isUsageError(err error) bool {
	var uerr usageError
	if errors.As(err, &uerr) {
		return true
	}
	return strings.HasPrefix(err.Error(), "unknown command")
}

// usageArgs wraps a positional-args validator so its errors map to ExitUsage.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// resetFlags restores every flag to its default so repeated executions in
// one process start clean.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}
