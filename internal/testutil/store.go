// Package testutil provides shared helpers for service tests
package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/tablero/internal/store"
)

// NewStore opens an in-memory document store and registers cleanup
func NewStore(t *testing.T) *store.Store {
	t.Helper()

	st, err := store.OpenPath(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory store: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return st
}
