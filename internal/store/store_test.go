package store

import (
	"context"
	"testing"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newStore(t *testing.T) *Store {
	t.Helper()

	st, err := OpenPath(context.Background(), ":memory:")
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

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	in := doc{Name: "boards", Count: 3}
	if err := st.Save(ctx, "k", in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var out doc
	found, err := st.Load(ctx, "k", &out)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !found {
		t.Fatalf("expected document to be found")
	}
	if out != in {
		t.Errorf("round trip mismatch: %+v != %+v", out, in)
	}
}

func TestLoadMissingKey(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	out := doc{Name: "untouched"}
	found, err := st.Load(ctx, "nope", &out)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if found {
		t.Errorf("missing key must report found=false")
	}
	if out.Name != "untouched" {
		t.Errorf("missing key must leave the target untouched: %+v", out)
	}
}

func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	if err := st.Save(ctx, "k", doc{Name: "first"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := st.Save(ctx, "k", doc{Name: "second"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var out doc
	if _, err := st.Load(ctx, "k", &out); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out.Name != "second" {
		t.Errorf("expected last write to win, got %q", out.Name)
	}
}

func TestLoadCorruptDocument(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	// A JSON string is a valid document but not decodable into doc
	if err := st.Save(ctx, "k", "scrambled"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var out doc
	found, err := st.Load(ctx, "k", &out)
	if err != nil {
		t.Fatalf("corrupt document must not error: %v", err)
	}
	if found {
		t.Errorf("corrupt document must report found=false")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	if err := st.Save(ctx, "k", doc{Name: "x"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := st.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := st.Delete(ctx, "k"); err != nil {
		t.Fatalf("deleting a missing key must not error: %v", err)
	}

	var out doc
	found, err := st.Load(ctx, "k", &out)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if found {
		t.Errorf("deleted document must not be found")
	}
}
