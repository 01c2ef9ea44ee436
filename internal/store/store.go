package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// Store is a keyed JSON document container. Load never fails on a
// missing or corrupt document (the caller's zero value stands in as
// the default state), but real I/O errors are reported.
type Store struct {
	db *sql.DB
}

// Close releases the underlying database handle
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the document stored under key into v. It reports whether a
// usable document was found; a missing key or an undecodable value
// leaves v untouched and returns found=false.
func (s *Store) Load(ctx context.Context, key string, v any) (bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM documents WHERE key = ?", key,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load document %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		// A corrupt document degrades to the default state rather than
		// taking the whole application down.
		slog.Warn("discarding undecodable document", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

// Save serializes v and upserts it under key
func (s *Store) Save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode document %q: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(raw))
	if err != nil {
		return fmt.Errorf("failed to save document %q: %w", key, err)
	}
	return nil
}

// Delete removes the document under key. Deleting a missing key is not
// an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete document %q: %w", key, err)
	}
	return nil
}
