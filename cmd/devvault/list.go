package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all snippets",
	Long: `List every snippet in the order it was added.

Code bodies are not shown; use 'devvault view ID' for that.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	app := mustNewApp(cmd)
	_, err := app.List()
	finish(err)
	return nil
}
