package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jabley/monkeyinterpreter/repl"
)

var benchN int

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time a recursive fibonacci in the evaluator",
	Args:  cobra.NoArgs,
	RunE:  runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().IntVarP(&benchN, "number", "n", 35, "fibonacci number to compute")
}

const benchProgram = `
let fibonacci = fn(x) {
	if (x == 0) {
		0
	} else {
		if (x == 1) {
			return 1;
		} else {
			fibonacci(x - 1) + fibonacci(x - 2);
		}
	}
};
fibonacci(%d);
`

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	session := repl.NewSession(newLogger(cfg, cmd.ErrOrStderr()))

	start := time.Now()
	result, err := session.Exec(fmt.Sprintf(benchProgram, benchN))
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return err
	}
	duration := time.Since(start)

	fmt.Fprintf(cmd.OutOrStdout(), "engine=eval, result=%s, duration=%s\n", result.Inspect(), duration)
	return nil
}
