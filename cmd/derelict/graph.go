package main

import (
	"fmt"

	"github.com/aretw0/derelict/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the scene graph visualization",
	Long: `Outputs a Mermaid diagram (graph TD) of the story.

With --overlay the given steps are played from the entry scene and the
visited scenes and the final scene are highlighted, e.g.
  derelict graph --overlay explore-ship,storage-room`,
	RunE: func(cmd *cobra.Command, args []string) error {
		script, _ := cmd.Flags().GetStringSlice("overlay")

		output, err := cli.Mermaid(cmd.Context(), cfg.Story, script)
		if err != nil {
			return fmt.Errorf("error generating graph: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringSlice("overlay", nil, "Comma-separated choices and answers to play before highlighting")
}
