package main

import (
	"fmt"

	"github.com/matsen/devvault/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query SQL",
	Short: "Query snippets using SQL",
	Long: `Execute a SQL query against the SQLite copy of the vault.

The index is rebuilt first if the vault file changed since the last query.
The vault file itself is never modified by this command.

Tables:
  snippets      id, position, title, language, description, code, created_at, tags
  snippet_tags  snippet_id, position, tag   (one row per tag occurrence)

Examples:
  devvault query "SELECT language, COUNT(*) AS n FROM snippets GROUP BY language"
  devvault query "SELECT s.id, s.title FROM snippets s JOIN snippet_tags t ON t.snippet_id = s.id WHERE t.tag = 'io'"
  devvault query "SELECT id, title FROM snippets WHERE created_at >= '2026-02-20'" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	settings := mustResolveSettings()
	log := newLogger()

	ix := mustOpenIndex(settings.IndexPath)
	defer ix.Close()

	rebuilt, count, err := ix.Sync(storage.NewVault(settings.VaultPath), false)
	if err != nil {
		exitWithError(ExitDataError, "syncing index: %v", err)
	}
	if rebuilt {
		log.Debug("rebuilt stale index", "path", settings.IndexPath, "snippets", count)
	}

	cols, records, err := ix.QueryColumns(args[0])
	if err != nil {
		exitWithError(ExitError, "SQL error: %v", err)
	}

	if jsonOutput {
		if records == nil {
			records = []storage.Record{}
		}
		outputJSON(records)
	} else {
		fmt.Print(formatTable(cols, records))
	}
	return nil
}
