package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new snippet interactively",
	Long: `Add a new snippet interactively.

You are prompted for a title, language (default "text"), an optional
description, and comma-separated tags. Then paste the code and type END
alone on a line to finish.

Title and code are required; nothing is saved if either is empty.`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	app := mustNewApp(cmd)
	_, err := app.Add()
	finish(err)
	return nil
}
