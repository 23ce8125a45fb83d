package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup at fresh temp directories.
func isolate(t *testing.T) string {
	t.Helper()
	ResetGlobalConfigCache()
	t.Cleanup(ResetGlobalConfigCache)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, ".cache"))
	t.Setenv(EnvVaultFile, "")
	return home
}

// writeConfig writes config.yml under the isolated home.
func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".config", GlobalConfigDir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, GlobalConfigFile), []byte(content), 0644))
}

func TestResolve_Default(t *testing.T) {
	home := isolate(t)

	s, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".devvault.json"), s.VaultPath)
	assert.Equal(t, SourceDefault, s.VaultSource)
	assert.Equal(t, filepath.Join(home, ".cache", "devvault", "index.db"), s.IndexPath)
}

func TestResolve_Precedence(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, "vault_path: /from/config.json\n")

	s, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "/from/config.json", s.VaultPath)
	assert.Equal(t, SourceConfig, s.VaultSource)

	t.Setenv(EnvVaultFile, "/from/env.json")
	s, err = Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "/from/env.json", s.VaultPath)
	assert.Equal(t, SourceEnv, s.VaultSource)

	s, err = Resolve("~/from/flag.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "from", "flag.json"), s.VaultPath)
	assert.Equal(t, SourceFlag, s.VaultSource)
}

func TestResolve_IndexPathFromConfig(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, "index_path: ~/idx.db\n")

	s, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "idx.db"), s.IndexPath)
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
		{"~", home},
		{"~/vault.json", filepath.Join(home, "vault.json")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandPath(tt.in), "ExpandPath(%q)", tt.in)
	}
}

func TestHelpfulConfigMessage(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")

	msg := HelpfulConfigMessage()
	assert.Contains(t, msg, "/cfg/devvault/config.yml")
	assert.Contains(t, msg, EnvVaultFile)
}
