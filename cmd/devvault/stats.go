package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show vault statistics",
	Long: `Show snippet counts per language and the five most used tags.

Languages and tags with equal counts are listed in the order they first
appear in the vault.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	app := mustNewApp(cmd)
	_, err := app.Stats()
	finish(err)
	return nil
}
