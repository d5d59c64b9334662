// Package cache is a content-hash-keyed analysis cache: the CLI, when given
// a cache path, records each source file's digest and its serialized
// diagnostics in a local SQLite database and skips re-analyzing a file
// whose digest hasn't changed since the last run. The shape here
// follows plain database/sql idiom against modernc.org/sqlite's pure-Go
// driver (no cgo).
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"

	_ "modernc.org/sqlite"

	"github.com/funvibe/decaf/internal/diagnostics"
	"github.com/funvibe/decaf/internal/token"
)

// Cache wraps a SQLite connection holding one row per analyzed file path.
type Cache struct {
	db *sql.DB
}

// Open creates or opens the cache database at path, creating its schema if
// absent.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: create schema: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error { return c.db.Close() }

const schema = `
CREATE TABLE IF NOT EXISTS analyses (
	file_path     TEXT PRIMARY KEY,
	digest        TEXT NOT NULL,
	diagnostics   TEXT NOT NULL,
	last_analyzed INTEGER NOT NULL
);`

// Digest returns the content hash used as the cache's change detector.
func Digest(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// storedDiagnostic is the JSON-serializable shape of a diagnostics.Diagnostic
// row, since the real type carries an unexported-shape token.Position that
// round-trips fine through encoding/json's exported fields alone.
type storedDiagnostic struct {
	Code       diagnostics.Code `json:"code"`
	Message    string           `json:"message"`
	Line       int              `json:"line"`
	Column     int              `json:"column"`
	LongString string           `json:"long_string"`
}

// Lookup returns the cached diagnostics for filePath if its stored digest
// matches digest, and whether a fresh (hit) result was found at all.
func (c *Cache) Lookup(ctx context.Context, filePath, digest string) ([]*diagnostics.Diagnostic, bool, error) {
	var storedDigest, payload string
	err := c.db.QueryRowContext(ctx,
		`SELECT digest, diagnostics FROM analyses WHERE file_path = ?`, filePath,
	).Scan(&storedDigest, &payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: lookup %s: %w", filePath, err)
	}
	if storedDigest != digest {
		return nil, false, nil
	}

	var stored []storedDiagnostic
	if err := json.Unmarshal([]byte(payload), &stored); err != nil {
		return nil, false, fmt.Errorf("cache: decode %s: %w", filePath, err)
	}
	diags := make([]*diagnostics.Diagnostic, len(stored))
	for i, s := range stored {
		pos := token.Position{Line: s.Line, Column: s.Column, LongString: s.LongString}
		diags[i] = diagnostics.New(s.Code, pos, s.Message)
	}
	return diags, true, nil
}

// Store records filePath's digest and diagnostics, overwriting any
// previous row.
func (c *Cache) Store(ctx context.Context, filePath, digest string, diags []*diagnostics.Diagnostic) error {
	stored := make([]storedDiagnostic, len(diags))
	for i, d := range diags {
		stored[i] = storedDiagnostic{
			Code:       d.Code,
			Message:    d.Message,
			Line:       d.Position.Line,
			Column:     d.Position.Column,
			LongString: d.Position.LongString,
		}
	}
	payload, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", filePath, err)
	}

	_, err = c.db.ExecContext(ctx,
		`INSERT INTO analyses (file_path, digest, diagnostics, last_analyzed) VALUES (?, ?, ?, ?)
		 ON CONFLICT(file_path) DO UPDATE SET digest = excluded.digest,
		   diagnostics = excluded.diagnostics, last_analyzed = excluded.last_analyzed`,
		filePath, digest, string(payload), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("cache: store %s: %w", filePath, err)
	}
	return nil
}

// LastAnalyzed returns a human-readable timestamp for filePath's cache row,
// formatted with go-strftime for the CLI's --verbose report.
func (c *Cache) LastAnalyzed(ctx context.Context, filePath string) (string, error) {
	var unixSec int64
	err := c.db.QueryRowContext(ctx,
		`SELECT last_analyzed FROM analyses WHERE file_path = ?`, filePath,
	).Scan(&unixSec)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("cache: last_analyzed %s: %w", filePath, err)
	}
	return strftime.Format("%Y-%m-%d %H:%M:%S", time.Unix(unixSec, 0).UTC()), nil
}
