package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jabley/monkeyinterpreter/object"
	"github.com/jabley/monkeyinterpreter/repl"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a Monkey program",
	Long: `Evaluates the program in <file>. Only output written with puts is
printed. Parse and runtime errors are reported on standard error and
make monkey exit with status 1.`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	prev := object.SetOutput(cmd.OutOrStdout())
	defer object.SetOutput(prev)

	return repl.RunFile(args[0], cmd.ErrOrStderr(), newLogger(cfg, cmd.ErrOrStderr()))
}
