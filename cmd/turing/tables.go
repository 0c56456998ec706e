package main

import (
	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables [name]",
	Short: "Print the transition tables",
	Long:  `Prints one transition table (by name or operator) or all of them as text, JSON or YAML.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return cli.WriteTables(cmd.OutOrStdout(), name, format)
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.Flags().StringP("format", "f", cli.FormatText, "Output format: text, json or yaml")
}
