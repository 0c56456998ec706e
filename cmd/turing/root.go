package main

import (
	"fmt"
	"os"

	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "turing",
	Short: "Turing runs binary arithmetic on a single-tape Turing machine",
	Long: `Turing writes two binary operands on a tape and runs the transition table
for +, -, * or /, then shows the rewritten tape next to the expected result.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "turing.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().Bool("debug", false, "Log every step to stderr")
}

// loadEnv reads the persistent flags and prepares the command environment.
func loadEnv(cmd *cobra.Command) (*cli.Env, error) {
	path, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.Setup(path, debug)
}
