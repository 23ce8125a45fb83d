// Package main provides the devvault CLI entry point.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/matsen/devvault/internal/config"
	"github.com/matsen/devvault/internal/display"
	"github.com/matsen/devvault/internal/logging"
	"github.com/matsen/devvault/internal/prompt"
	"github.com/matsen/devvault/internal/storage"
	"github.com/matsen/devvault/internal/vault"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	jsonOutput bool
	vaultFlag  string
	noColor    bool
	verbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "devvault",
	Short: "Your personal code snippet manager",
	Long: `devvault saves, lists, searches, views, and deletes code snippets
from the terminal.

Snippets live in a single JSON file (~/.devvault.json by default). Every
command reads the whole file and writes it back only when something changed.
The file is not locked: running two writing commands at the same time can
lose one of the changes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env if present (ignore error if not found)
		_ = godotenv.Load()
	},
	Run: func(cmd *cobra.Command, args []string) {
		if !jsonOutput {
			newPrinter(cmd, configuredColor()).Banner(Version)
		}
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&vaultFlag, "vault", "", "Path to the vault file (default ~/.devvault.json)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Use JSON output instead of colored text")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")
	rootCmd.Version = Version
}

// mustResolveSettings resolves file locations, exits on error.
func mustResolveSettings() *config.Settings {
	settings, err := config.Resolve(vaultFlag)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return settings
}

// newPrinter builds a Printer on the command's output, honoring --no-color
// and the configured color mode. Auto mode is left to the renderer.
func newPrinter(cmd *cobra.Command, colorSetting string) *display.Printer {
	out := cmd.OutOrStdout()

	mode, err := display.ParseColorMode(colorSetting)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	if noColor || jsonOutput {
		mode = display.ColorNever
	}

	return display.NewPrinter(out, mode)
}

// configuredColor returns the color key from the global config. A config
// that fails to load falls back to auto; commands that need the config
// report that error themselves.
func configuredColor() string {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		return ""
	}
	return cfg.Color
}

func newLogger() *slog.Logger {
	return logging.New(os.Stderr, verbose)
}

// mustNewApp builds the command handlers for the resolved vault.
func mustNewApp(cmd *cobra.Command) *vault.App {
	settings := mustResolveSettings()
	log := newLogger()
	log.Debug("resolved vault", "path", settings.VaultPath, "source", settings.VaultSource)

	out := newPrinter(cmd, settings.Color)
	return &vault.App{
		Store:  storage.NewVault(settings.VaultPath),
		Prompt: prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()),
		Out:    out,
		Log:    log,
		JSON:   jsonOutput,
	}
}
