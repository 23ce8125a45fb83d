// Package storage handles snippet persistence in the vault JSON file and the
// SQLite query index derived from it.
package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/matsen/devvault/internal/snippet"
)

// Document is the on-disk shape of the vault file.
type Document struct {
	Snippets []snippet.Snippet `json:"snippets"`
}

// Vault reads and writes the snippet collection at a fixed path.
// It holds no state between calls; every Load reads the whole file.
type Vault struct {
	path string
}

// NewVault returns a Vault backed by the file at path.
func NewVault(path string) *Vault {
	return &Vault{path: path}
}

// Path returns the vault file path.
func (v *Vault) Path() string {
	return v.path
}

// Load reads all snippets from the vault file.
// A missing file is an empty vault, not an error.
func (v *Vault) Load() ([]snippet.Snippet, error) {
	data, err := os.ReadFile(v.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []snippet.Snippet{}, nil
		}
		return nil, fmt.Errorf("reading vault file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing vault file %s: %w", v.path, err)
	}
	if doc.Snippets == nil {
		doc.Snippets = []snippet.Snippet{}
	}

	return doc.Snippets, nil
}

// Save writes the full collection to the vault file atomically.
// Uses temp file + rename so a failed write never truncates the vault.
func (v *Vault) Save(snippets []snippet.Snippet) error {
	if snippets == nil {
		snippets = []snippet.Snippet{}
	}

	data, err := json.MarshalIndent(Document{Snippets: snippets}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding vault: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(v.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating vault directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".devvault-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing vault: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, v.path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return nil
}

// Hash computes a SHA256 hash of the vault file's contents.
// A missing file hashes as empty input.
func (v *Vault) Hash() (string, error) {
	data, err := os.ReadFile(v.path)
	if err != nil {
		if os.IsNotExist(err) {
			h := sha256.Sum256([]byte{})
			return hex.EncodeToString(h[:]), nil
		}
		return "", fmt.Errorf("reading vault file: %w", err)
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:]), nil
}

// NextID returns one more than the largest ID, or 1 for an empty collection.
func NextID(snippets []snippet.Snippet) int {
	maxID := 0
	for _, s := range snippets {
		if s.ID > maxID {
			maxID = s.ID
		}
	}
	return maxID + 1
}

// FindByID searches for a snippet by ID.
func FindByID(snippets []snippet.Snippet, id int) (int, bool) {
	for i, s := range snippets {
		if s.ID == id {
			return i, true
		}
	}
	return -1, false
}

// RemoveByID returns a new slice without the snippet with the given ID,
// preserving the order of the rest. The bool reports whether one was removed.
func RemoveByID(snippets []snippet.Snippet, id int) ([]snippet.Snippet, bool) {
	idx, found := FindByID(snippets, id)
	if !found {
		return snippets, false
	}

	out := make([]snippet.Snippet, 0, len(snippets)-1)
	out = append(out, snippets[:idx]...)
	out = append(out, snippets[idx+1:]...)
	return out, true
}
