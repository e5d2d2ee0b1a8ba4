package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/derelict"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of derelict",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "derelict version %s\n", strings.TrimSpace(derelict.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
