package main

import (
	"github.com/aretw0/derelict/internal/cli"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the adventure in this terminal",
	Long: `Starts a game on stdin/stdout.

Type a choice number or id to pick it, or your answer when a puzzle asks for one.
Commands: /look, /inventory, /quit and /<choice-id> to pick a choice while a puzzle waits.

Modes:
- rich (default on a terminal): banner and markdown narrative.
- plain (default when piped, or --plain): narrative as is.
- tui (--tui): full-screen interface.
- json (--json): NDJSON events out, one input per line in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		jsonMode, _ := flags.GetBool("json")
		tuiMode, _ := flags.GetBool("tui")
		plain, _ := flags.GetBool("plain")

		return cli.Play(cmd.Context(), cli.PlayOptions{
			Story:             cfg.Story,
			Debug:             debug,
			JSON:              jsonMode,
			TUI:               tuiMode,
			Plain:             plain,
			MaxInputSize:      cfg.MaxInputSize,
			AnimationInterval: cfg.AnimationInterval,
			In:                cmd.InOrStdin(),
			Out:               cmd.OutOrStdout(),
			Logger:            logger,
		})
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output, no exit confirmation)")
	playCmd.Flags().Bool("tui", false, "Run the full-screen interface")
	playCmd.Flags().Bool("plain", false, "Print narrative without banner or markdown rendering")

	// 'play' is the default if no command is provided.
	rootCmd.Flags().AddFlagSet(playCmd.Flags())
	rootCmd.RunE = playCmd.RunE
}
