// Package config resolves where DevVault keeps its files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/devvault/config.yml.
type GlobalConfig struct {
	VaultPath string `yaml:"vault_path,omitempty"`
	IndexPath string `yaml:"index_path,omitempty"`
	Color     string `yaml:"color,omitempty"` // auto, always, never
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "devvault"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/devvault/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	if cfg.VaultPath != "" {
		cfg.VaultPath = ExpandPath(cfg.VaultPath)
	}
	if cfg.IndexPath != "" {
		cfg.IndexPath = ExpandPath(cfg.IndexPath)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// ValidKeys lists the keys accepted by Get and Set, in display order.
var ValidKeys = []string{"vault-path", "index-path", "color"}

// normalizeKey accepts both vault-path and vault_path spellings.
func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "_", "-")
}

// Get returns the value stored under key.
func (c *GlobalConfig) Get(key string) (string, error) {
	switch normalizeKey(key) {
	case "vault-path":
		return c.VaultPath, nil
	case "index-path":
		return c.IndexPath, nil
	case "color":
		return c.Color, nil
	}
	return "", fmt.Errorf("unknown config key: %s (valid: %s)", key, strings.Join(ValidKeys, ", "))
}

// ValidColors lists the accepted color settings.
var ValidColors = []string{"auto", "always", "never"}

// Set stores value under key. Paths are stored with ~ expanded.
func (c *GlobalConfig) Set(key, value string) error {
	switch normalizeKey(key) {
	case "vault-path":
		c.VaultPath = ExpandPath(value)
	case "index-path":
		c.IndexPath = ExpandPath(value)
	case "color":
		color := strings.ToLower(strings.TrimSpace(value))
		if err := ValidateColor(color); err != nil {
			return err
		}
		c.Color = color
	default:
		return fmt.Errorf("unknown config key: %s (valid: %s)", key, strings.Join(ValidKeys, ", "))
	}
	return nil
}

// ValidateColor checks that a color setting is valid. Empty means auto.
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}
	for _, valid := range ValidColors {
		if color == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid color: %s (valid: %v)", color, ValidColors)
}

// Save writes the config to GlobalConfigPath and refreshes the cache.
func (c *GlobalConfig) Save() error {
	path := GlobalConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config location")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding global config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing global config: %w", err)
	}

	globalConfigCache = c
	return nil
}

// HelpfulConfigMessage explains how to point DevVault at another vault file.
func HelpfulConfigMessage() string {
	configPath := GlobalConfigPath()
	return fmt.Sprintf(`Tip: set a default vault location in %s:
  mkdir -p %s
  echo 'vault_path: ~/notes/devvault.json' > %s

Or set %s in the environment (or a .env file), or pass --vault.`,
		configPath,
		filepath.Dir(configPath),
		configPath,
		EnvVaultFile)
}
