package main

import (
	"context"
	"fmt"

	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [left right]",
	Short: "Run one calculation on the machine",
	Long: `Runs a calculation. Operands may be passed as arguments; anything missing
is asked for on stdin, e.g.:

  turing run 101 11 --op +
  echo -e "101 11\n*" | turing run`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return fmt.Errorf("expected both operands, got only %q", args[0])
		}
		return cobra.MaximumNArgs(2)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		opts := cli.RunOptions{
			Input:  cmd.InOrStdin(),
			Output: cmd.OutOrStdout(),
		}
		if len(args) == 2 {
			opts.Left, opts.Right = args[0], args[1]
		}
		opts.Operation, _ = cmd.Flags().GetString("op")
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Plain, _ = cmd.Flags().GetBool("plain")
		opts.Window, _ = cmd.Flags().GetInt("window")

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		return cli.RunCalculation(sigCtx, env, opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("op", "o", "", "Operation: +, -, *, / or a table name")
	runCmd.Flags().Bool("json", false, "Print the run record as JSON")
	runCmd.Flags().Bool("plain", false, "Disable colors and markdown styling")
	runCmd.Flags().IntP("window", "w", 0, "Cells shown on each side of the head (default from config)")

	// Make 'run' the default if no command is provided
	rootCmd.Args = runCmd.Args
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
