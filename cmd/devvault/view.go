package main

import (
	"github.com/spf13/cobra"
)

var viewCopy bool

func init() {
	viewCmd.Flags().BoolVarP(&viewCopy, "copy", "c", false, "Also copy the code to the clipboard")
	rootCmd.AddCommand(viewCmd)
}

var viewCmd = &cobra.Command{
	Use:   "view ID",
	Short: "View a snippet by ID",
	Long: `Show one snippet including its code.

Examples:
  devvault view 3
  devvault view 3 --copy
  devvault view 3 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func runView(cmd *cobra.Command, args []string) error {
	id := mustParseID(args[0])
	app := mustNewApp(cmd)
	s, err := app.View(id)
	finish(err)
	if viewCopy && err == nil {
		finish(app.CopyCode(s))
	}
	return nil
}
