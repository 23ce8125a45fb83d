package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a snippet by ID",
	Long: `Delete a snippet after confirmation.

Only answering "y" deletes; any other answer cancels. IDs of deleted
snippets are not handed out again unless the highest ID was deleted.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := mustParseID(args[0])
	app := mustNewApp(cmd)
	_, err := app.Delete(id)
	finish(err)
	return nil
}
