package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/derelict/internal/config"
	"github.com/aretw0/derelict/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfg    config.Config
	logger *slog.Logger
	debug  bool
)

var rootCmd = &cobra.Command{
	Use:   "derelict",
	Short: "Derelict is a text adventure aboard an abandoned spaceship",
	Long: `Derelict plays a scene-graph adventure: read the scene, pick a choice,
answer the riddles and collect what you find. Without a subcommand it starts a game.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("log-level") {
			loaded.LogLevel, _ = flags.GetString("log-level")
		}
		if flags.Changed("log-format") {
			loaded.LogFormat, _ = flags.GetString("log-format")
		}
		if flags.Changed("story") {
			loaded.Story, _ = flags.GetString("story")
		}
		debug, _ = flags.GetBool("debug")
		if debug {
			loaded.LogLevel = "debug"
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
		logger = logging.New(cfg.Level(), cfg.LogFormat)
		return nil
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error (env DERELICT_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json (env DERELICT_LOG_FORMAT)")
	rootCmd.PersistentFlags().String("story", "", "YAML story document; the built-in story when empty (env DERELICT_STORY)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log engine lifecycle events to stderr")
	rootCmd.SilenceErrors = true
}
