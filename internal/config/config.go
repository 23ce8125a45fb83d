package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// VaultFile is the default vault file name in the home directory.
	VaultFile = ".devvault.json"
	// IndexFile is the SQLite query index file name.
	IndexFile = "index.db"
	// CacheDir is the directory name under the user cache directory.
	CacheDir = "devvault"

	// EnvVaultFile overrides the vault path. It may also come from a .env file.
	EnvVaultFile = "DEVVAULT_FILE"
)

// Source names where the vault path came from.
type Source string

const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "env"
	SourceConfig  Source = "config"
	SourceDefault Source = "default"
)

// Settings are the resolved locations and preferences for one invocation.
type Settings struct {
	VaultPath   string `json:"vault_path"`
	VaultSource Source `json:"vault_source"`
	IndexPath   string `json:"index_path"`
	ConfigPath  string `json:"config_path"`
	Color       string `json:"color"`
}

// Resolve determines the vault path from, in order: flagVault, the
// DEVVAULT_FILE environment variable, vault_path in the global config, and
// ~/.devvault.json.
func Resolve(flagVault string) (*Settings, error) {
	cfg, err := LoadGlobalConfig()
	if err != nil {
		return nil, err
	}

	s := &Settings{
		ConfigPath: GlobalConfigPath(),
		Color:      cfg.Color,
	}

	switch {
	case flagVault != "":
		s.VaultPath, s.VaultSource = ExpandPath(flagVault), SourceFlag
	case os.Getenv(EnvVaultFile) != "":
		s.VaultPath, s.VaultSource = ExpandPath(os.Getenv(EnvVaultFile)), SourceEnv
	case cfg.VaultPath != "":
		s.VaultPath, s.VaultSource = cfg.VaultPath, SourceConfig
	default:
		path, err := DefaultVaultPath()
		if err != nil {
			return nil, err
		}
		s.VaultPath, s.VaultSource = path, SourceDefault
	}

	if cfg.IndexPath != "" {
		s.IndexPath = cfg.IndexPath
	} else {
		s.IndexPath = DefaultIndexPath(s.VaultPath)
	}

	return s, nil
}

// DefaultVaultPath returns ~/.devvault.json.
func DefaultVaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, VaultFile), nil
}

// DefaultIndexPath returns the index location under the user cache directory,
// falling back to a hidden file next to the vault.
func DefaultIndexPath(vaultPath string) string {
	cache, err := os.UserCacheDir()
	if err != nil || cache == "" {
		return filepath.Join(filepath.Dir(vaultPath), ".devvault-"+IndexFile)
	}
	return filepath.Join(cache, CacheDir, IndexFile)
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
