package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/matsen/devvault/internal/snippet"
	_ "modernc.org/sqlite"
)

// Record is a single row returned by an ad-hoc query, keyed by column name.
type Record map[string]any

const (
	metaVaultHash = "vault_hash"
	metaLastSync  = "last_sync"
)

// Index wraps the SQLite query database derived from the vault file.
// The vault file stays the source of truth; the index can be deleted at any time.
type Index struct {
	db *sql.DB
}

// OpenIndex opens or creates the SQLite index at the given path.
func OpenIndex(path string) (*Index, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createIndexSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Index{db: db}, nil
}

// Close closes the database connection.
func (ix *Index) Close() error {
	return ix.db.Close()
}

func createIndexSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS snippets (
			id INTEGER PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			language TEXT NOT NULL,
			description TEXT,
			code TEXT NOT NULL,
			created_at TEXT NOT NULL,
			tags TEXT
		);

		-- One row per tag occurrence; duplicates are kept
		CREATE TABLE IF NOT EXISTS snippet_tags (
			snippet_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			tag TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_snippet_tags_tag ON snippet_tags(tag);
		CREATE INDEX IF NOT EXISTS idx_snippets_language ON snippets(language);

		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT
		);
	`

	_, err := db.Exec(schema)
	return err
}

// Rebuild clears the index and reloads it from snippets, recording vaultHash
// so NeedsSync can detect later changes to the vault file.
func (ix *Index) Rebuild(snippets []snippet.Snippet, vaultHash string) (int, error) {
	tx, err := ix.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM snippets"); err != nil {
		return 0, fmt.Errorf("clearing snippets table: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM snippet_tags"); err != nil {
		return 0, fmt.Errorf("clearing snippet_tags table: %w", err)
	}

	snipStmt, err := tx.Prepare(`
		INSERT INTO snippets (id, position, title, language, description, code, created_at, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing snippets insert: %w", err)
	}
	defer snipStmt.Close()

	tagStmt, err := tx.Prepare(`INSERT INTO snippet_tags (snippet_id, position, tag) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing tags insert: %w", err)
	}
	defer tagStmt.Close()

	for pos, s := range snippets {
		_, err := snipStmt.Exec(s.ID, pos, s.Title, s.Language, s.Description, s.Code, s.CreatedAt, strings.Join(s.Tags, ","))
		if err != nil {
			return 0, fmt.Errorf("inserting snippet %d: %w", s.ID, err)
		}
		for i, tag := range s.Tags {
			if _, err := tagStmt.Exec(s.ID, i, tag); err != nil {
				return 0, fmt.Errorf("inserting tag for %d: %w", s.ID, err)
			}
		}
	}

	if err := setMeta(tx, metaVaultHash, vaultHash); err != nil {
		return 0, fmt.Errorf("updating hash: %w", err)
	}
	if err := setMeta(tx, metaLastSync, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return 0, fmt.Errorf("updating sync time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing rebuild: %w", err)
	}

	return len(snippets), nil
}

// NeedsSync returns true if the index was built from different vault content.
func (ix *Index) NeedsSync(vaultHash string) (bool, error) {
	stored, err := ix.getMeta(metaVaultHash)
	if err != nil {
		return true, err
	}
	return stored != vaultHash, nil
}

// LastSync returns when the index was last rebuilt, or the zero time.
func (ix *Index) LastSync() (time.Time, error) {
	v, err := ix.getMeta(metaLastSync)
	if err != nil || v == "" {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, v)
}

// Count returns the number of indexed snippets.
func (ix *Index) Count() (int, error) {
	var n int
	if err := ix.db.QueryRow("SELECT COUNT(*) FROM snippets").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting snippets: %w", err)
	}
	return n, nil
}

// QueryColumns runs a query and also returns its column names in select order.
// Records are maps, so callers that print tables need this to keep order.
func (ix *Index) QueryColumns(query string) ([]string, []Record, error) {
	rows, err := ix.db.Query(query)
	if err != nil {
		return nil, nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}
	records, err := scanRecords(rows)
	if err != nil {
		return nil, nil, err
	}
	return cols, records, nil
}

// scanRecords converts SQL rows to records.
func scanRecords(rows *sql.Rows) ([]Record, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var records []Record
	for rows.Next() {
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}

		record := make(Record)
		for i, col := range cols {
			// Text columns come back as []byte from some drivers
			if b, ok := values[i].([]byte); ok {
				record[col] = string(b)
			} else {
				record[col] = values[i]
			}
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func (ix *Index) getMeta(key string) (string, error) {
	var value string
	err := ix.db.QueryRow("SELECT value FROM meta WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading meta %s: %w", key, err)
	}
	return value, nil
}

func setMeta(tx *sql.Tx, key, value string) error {
	_, err := tx.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)", key, value)
	return err
}

// Sync rebuilds the index from the vault if the vault changed since the last
// rebuild, or unconditionally when force is set. It returns whether a
// rebuild happened and how many snippets the index now holds.
func (ix *Index) Sync(v *Vault, force bool) (bool, int, error) {
	hash, err := v.Hash()
	if err != nil {
		return false, 0, fmt.Errorf("hashing vault: %w", err)
	}

	if !force {
		stale, err := ix.NeedsSync(hash)
		if err != nil {
			return false, 0, fmt.Errorf("checking sync status: %w", err)
		}
		if !stale {
			n, err := ix.Count()
			return false, n, err
		}
	}

	snippets, err := v.Load()
	if err != nil {
		return false, 0, fmt.Errorf("loading vault: %w", err)
	}
	n, err := ix.Rebuild(snippets, hash)
	if err != nil {
		return false, 0, err
	}
	return true, n, nil
}
