package main

import (
	"github.com/spf13/cobra"
)

var seedForce bool

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Replace existing snippets")
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the vault with demo snippets",
	Long: `Write five demo snippets (python, javascript, bash) to the vault.

A vault that already holds snippets is left untouched unless --force is
given, which replaces its whole contents.

Examples:
  devvault seed
  devvault seed --vault /tmp/demo.json
  devvault seed --force`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	app := mustNewApp(cmd)
	_, err := app.Seed(seedForce)
	finish(err)
	return nil
}
