package main

import (
	"fmt"

	"github.com/aretw0/derelict/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [story.yaml]",
	Short: "Check the story graph for consistency",
	Long: `Loads the story and reports dangling targets, malformed guards and duplicate ids.
Scenes unreachable from the entry scene are reported as warnings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.Story
		if len(args) > 0 {
			path = args[0]
		}
		report, err := cli.Validate(path)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprint(out, report.String())
		fmt.Fprintln(out, "Story is valid!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
