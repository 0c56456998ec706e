package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of turing",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "turing version %s (step limit %d)\n", strings.TrimSpace(turing.Version), turing.StepLimit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
