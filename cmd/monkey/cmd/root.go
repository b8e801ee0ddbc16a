// Package cmd holds the monkey command line.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/oarkflow/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jabley/monkeyinterpreter/config"
	"github.com/jabley/monkeyinterpreter/repl"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "monkey",
	Short: "Monkey programming language interpreter",
	Long: `monkey evaluates programs written in the Monkey language.

Without a subcommand it starts the REPL.

Examples:
  monkey                     # interactive REPL
  monkey run fib.monkey      # run a program
  echo 'puts(1 + 2)' | monkey repl`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRepl,
}

// Execute runs the command line and returns its error.
func Execute() error {
	return rootCmd.Execute()
}

// Run executes the command line and returns the process exit code: 0 on
// success, 1 when a Monkey program failed, 2 for anything else. Program
// failures have already been described by the time Run returns.
func Run() int {
	err := Execute()
	if err != nil && !isProgramError(err) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return exitCode(err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, TOML or YAML (default: built-in settings)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case isProgramError(err):
		return 1
	default:
		return 2
	}
}

func isProgramError(err error) bool {
	return errors.Is(err, repl.ErrParse) || errors.Is(err, repl.ErrRuntime)
}

// loadConfig reads --config and applies --verbose.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, errors.Wrap(err, "loading config")
	}

	if verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}

// newLogger writes to w, coloured when w is a terminal.
func newLogger(cfg *config.Config, w io.Writer) *log.Logger {
	colour := false
	if f, ok := w.(*os.File); ok {
		colour = cfg.Color && isatty.IsTerminal(f.Fd())
	}

	return &log.Logger{
		Level: log.ParseLevel(cfg.LogLevel),
		Writer: &log.ConsoleWriter{
			ColorOutput: colour,
			Writer:      w,
		},
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
