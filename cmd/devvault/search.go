package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search snippets by keyword or tag",
	Long: `Search snippets by keyword or tag.

A snippet matches when QUERY appears, ignoring case, in its title, language,
description, any of its tags, or its code. Results keep the order in which
snippets were added.

Examples:
  devvault search list
  devvault search "read a file"
  devvault search bash --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	app := mustNewApp(cmd)
	_, err := app.Search(args[0])
	finish(err)
	return nil
}
