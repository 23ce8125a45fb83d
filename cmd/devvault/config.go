package main

import (
	"fmt"
	"os"
	"time"

	"github.com/matsen/devvault/internal/config"
	"github.com/matsen/devvault/internal/display"
	"github.com/matsen/devvault/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values.

Usage:
  devvault config                          # Show resolved locations
  devvault config vault-path               # Get a stored value
  devvault config vault-path ~/vault.json  # Set a value
  devvault config color never              # Disable colors

Keys:
  vault-path   Vault file used when neither --vault nor DEVVAULT_FILE is set
  index-path   SQLite query index location (default under the user cache dir)
  color        auto, always, or never`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

// SettingsResponse is the JSON shape of the resolved settings.
type SettingsResponse struct {
	*config.Settings
	IndexSynced string `json:"index_synced"`
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	// No args: show resolved settings
	if len(args) == 0 {
		settings := mustResolveSettings()
		synced := indexSyncedAt(settings.IndexPath)
		if jsonOutput {
			outputJSON(SettingsResponse{Settings: settings, IndexSynced: synced})
			return nil
		}
		fmt.Printf("vault-path:  %s (%s)\n", settings.VaultPath, settings.VaultSource)
		fmt.Printf("index-path:  %s (synced: %s)\n", settings.IndexPath, synced)
		fmt.Printf("config-file: %s\n", settings.ConfigPath)
		fmt.Printf("color:       %s\n", orDefault(settings.Color, string(display.ColorAuto)))
		if settings.VaultSource == config.SourceDefault {
			fmt.Printf("\n%s\n", config.HelpfulConfigMessage())
		}
		return nil
	}

	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	key := args[0]

	// One arg: get specific value
	if len(args) == 1 {
		value, err := cfg.Get(key)
		if err != nil {
			exitWithError(ExitConfigError, "%v", err)
		}
		if jsonOutput {
			outputJSON(map[string]string{key: value})
		} else {
			fmt.Println(value)
		}
		return nil
	}

	// Two args: set value
	value := args[1]
	if err := cfg.Set(key, value); err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	if err := cfg.Save(); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}

	stored, _ := cfg.Get(key)
	if jsonOutput {
		outputJSON(UpdateResponse{Status: "updated", Key: key, Value: stored})
	} else {
		fmt.Printf("Set %s = %s\n", key, stored)
	}
	return nil
}

// indexSyncedAt reports when the query index was last rebuilt, or "never".
// A missing index file is not created.
func indexSyncedAt(path string) string {
	if _, err := os.Stat(path); err != nil {
		return "never"
	}
	ix, err := storage.OpenIndex(path)
	if err != nil {
		return "unreadable"
	}
	defer ix.Close()

	last, err := ix.LastSync()
	if err != nil {
		return "unreadable"
	}
	if last.IsZero() {
		return "never"
	}
	return last.Local().Format(time.RFC3339)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
