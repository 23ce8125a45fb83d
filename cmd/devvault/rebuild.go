package main

import (
	"fmt"

	"github.com/matsen/devvault/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the SQLite query index from the vault",
	Long: `Rebuild the SQLite query index from the vault file.

'devvault query' rebuilds automatically when the vault changed, so this is
only needed if the index file was damaged or deleted.`,
	Args: cobra.NoArgs,
	RunE: runRebuild,
}

// RebuildResult is the response for the rebuild command.
type RebuildResult struct {
	Status   string `json:"status"`
	Snippets int    `json:"snippets"`
	Index    string `json:"index"`
}

func runRebuild(cmd *cobra.Command, args []string) error {
	settings := mustResolveSettings()
	log := newLogger()

	ix := mustOpenIndex(settings.IndexPath)
	defer ix.Close()

	_, count, err := ix.Sync(storage.NewVault(settings.VaultPath), true)
	if err != nil {
		exitWithError(ExitDataError, "rebuilding index: %v", err)
	}
	log.Debug("rebuilt index", "path", settings.IndexPath, "snippets", count)

	if jsonOutput {
		outputJSON(RebuildResult{Status: "rebuilt", Snippets: count, Index: settings.IndexPath})
	} else {
		fmt.Printf("Rebuilt query index with %d snippets\n", count)
	}
	return nil
}

// mustOpenIndex opens the SQLite index, exits on error.
// The caller is responsible for calling Close() on the returned Index.
func mustOpenIndex(path string) *storage.Index {
	ix, err := storage.OpenIndex(path)
	if err != nil {
		exitWithError(ExitError, "opening index: %v", err)
	}
	return ix
}
