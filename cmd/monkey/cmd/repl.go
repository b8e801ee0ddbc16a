package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jabley/monkeyinterpreter/object"
	"github.com/jabley/monkeyinterpreter/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the read-eval-print loop",
	Long: `Starts the REPL. On a terminal it offers line editing and history;
otherwise it reads lines from standard input.

Input continues over several lines while brackets are open.
:quit leaves the REPL.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg, cmd.ErrOrStderr())
	out := cmd.OutOrStdout()

	prev := object.SetOutput(out)
	defer object.SetOutput(prev)

	r := repl.New(cfg, logger)

	if stdinIsTerminal(cmd) {
		return r.RunInteractive(out)
	}

	r.Run(cmd.InOrStdin(), out)
	return nil
}

func stdinIsTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
