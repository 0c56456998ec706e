package main

import (
	"context"
	"errors"

	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [table]",
	Short: "Export a transition table as a Mermaid diagram",
	Long: `Outputs a Mermaid stateDiagram-v2 for the table. --state highlights one state.
--run draws the table of a stored run with its visited states and halting state highlighted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runID, _ := cmd.Flags().GetString("run")
		if runID != "" {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer env.Close()
			return cli.WriteRunGraph(context.Background(), env, cmd.OutOrStdout(), runID)
		}
		if len(args) == 0 {
			return errors.New("graph needs a table name or --run")
		}
		state, _ := cmd.Flags().GetInt("state")
		return cli.WriteGraph(cmd.OutOrStdout(), args[0], state)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Int("state", -1, "State to highlight")
	graphCmd.Flags().String("run", "", "ID of a stored run to overlay")
}
