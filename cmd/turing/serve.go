package main

import (
	"context"
	"fmt"

	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Exposes calculations, run history, tables and Prometheus metrics as a JSON API over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		port := env.Config.Server.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetInt("port")
		}

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		fmt.Fprintf(cmd.OutOrStdout(), ">>> Starting Turing Server on :%d\n", port)
		if err := cli.Serve(sigCtx, env, port); err != nil {
			return err
		}
		if sig := sigCtx.Signal(); sig != nil {
			fmt.Fprintf(cmd.OutOrStdout(), ">>> Stopped by %v\n", sig)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on (default from config)")
}
