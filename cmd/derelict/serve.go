package main

import (
	"github.com/aretw0/derelict/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves one game session as a JSON API over HTTP, with server-sent
events on /events and Prometheus metrics on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.Addr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}
		return cli.Serve(cmd.Context(), cli.ServeOptions{
			Story:        cfg.Story,
			Debug:        debug,
			Addr:         addr,
			MaxInputSize: cfg.MaxInputSize,
			Logger:       logger,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "127.0.0.1:8080", "Address to listen on (env DERELICT_ADDR)")
}
