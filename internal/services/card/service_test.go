package card

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thenoetrevino/tablero/internal/detail"
	"github.com/thenoetrevino/tablero/internal/palette"
	boardservice "github.com/thenoetrevino/tablero/internal/services/board"
	labelservice "github.com/thenoetrevino/tablero/internal/services/label"
	"github.com/thenoetrevino/tablero/internal/store"
	"github.com/thenoetrevino/tablero/internal/testutil"
	"github.com/thenoetrevino/tablero/internal/tree"
)

const testUserID = "u-test"

func testClock() time.Time {
	return time.Date(2026, time.March, 9, 15, 4, 5, 0, time.UTC)
}

// newFixture wires the full stack over one in-memory store and seeds a
// single card at position 0/0/0.
func newFixture(t *testing.T) (Service, labelservice.Service, *store.Store) {
	t.Helper()

	ctx := context.Background()
	st := testutil.NewStore(t)
	labels := labelservice.NewService(st, testUserID)
	boards := boardservice.NewService(st, palette.NewGenerator(), testUserID)

	if err := boards.AddBoard(ctx, "Sprint 1"); err != nil {
		t.Fatalf("AddBoard failed: %v", err)
	}
	if err := boards.AddList(ctx, 0, "To Do"); err != nil {
		t.Fatalf("AddList failed: %v", err)
	}
	if err := boards.AddCard(ctx, 0, 0, "Fix bug"); err != nil {
		t.Fatalf("AddCard failed: %v", err)
	}

	return NewService(st, labels, testClock, testUserID), labels, st
}

func TestOpenEditSaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _, st := newFixture(t)

	d, err := svc.Open(ctx, 0, 0, 0)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if d.Name != "Fix bug" {
		t.Fatalf("draft opened on wrong card: %q", d.Name)
	}

	d.SetDescription("steps to reproduce")
	if err := d.AddChecklistItem(detail.DefaultChecklistID, "write a failing test"); err != nil {
		t.Fatalf("AddChecklistItem failed: %v", err)
	}
	if err := d.ToggleChecklistItem(detail.DefaultChecklistID, 0); err != nil {
		t.Fatalf("ToggleChecklistItem failed: %v", err)
	}
	if err := d.AddComment("repro found"); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if err := svc.Save(ctx, 0, 0, 0, d); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// A fresh service over the same store sees the committed document
	labels := labelservice.NewService(st, testUserID)
	again := NewService(st, labels, testClock, testUserID)
	reopened, err := again.Open(ctx, 0, 0, 0)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if reopened.Description != "steps to reproduce" {
		t.Errorf("description not persisted: %q", reopened.Description)
	}
	items := reopened.Checklists[0].Items
	if len(items) != 1 || !items[0].Done {
		t.Errorf("checklist state not persisted: %+v", items)
	}
	if len(reopened.Comments) != 1 || reopened.Comments[0].Text != "repro found" {
		t.Errorf("comment not persisted: %+v", reopened.Comments)
	}
	// Item add, item toggle and comment each left an audit entry
	if len(reopened.Activity) < 3 {
		t.Errorf("expected at least 3 activity entries, got %+v", reopened.Activity)
	}
}

func TestOpenDoesNotTouchStoreUntilSave(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newFixture(t)

	d, err := svc.Open(ctx, 0, 0, 0)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	d.SetName("Renamed in draft")

	// Reopening without saving sees the stored card, not the draft
	fresh, err := svc.Open(ctx, 0, 0, 0)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if fresh.Name != "Fix bug" {
		t.Errorf("unsaved draft leaked into the store: %q", fresh.Name)
	}
}

func TestOpenInvalidPosition(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newFixture(t)

	if _, err := svc.Open(ctx, 0, 0, 9); !errors.Is(err, tree.ErrInvalidCardIndex) {
		t.Errorf("expected ErrInvalidCardIndex, got %v", err)
	}
}

func TestSaveStaleLocation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newFixture(t)

	d, err := svc.Open(ctx, 0, 0, 0)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := svc.Save(ctx, 0, 3, 0, d); !errors.Is(err, tree.ErrInvalidListIndex) {
		t.Errorf("expected ErrInvalidListIndex, got %v", err)
	}
}

func TestToggleLabelFromCatalog(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newFixture(t)

	d, err := svc.Open(ctx, 0, 0, 0)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := svc.ToggleLabel(ctx, d, "4"); err != nil {
		t.Fatalf("ToggleLabel failed: %v", err)
	}
	if !d.HasLabel("4") {
		t.Errorf("label not attached")
	}
	if len(d.Labels) != 1 || d.Labels[0].Name != "Bug" {
		t.Errorf("attached label is not the catalog copy: %+v", d.Labels)
	}
}

func TestToggleLabelRejectsDeletedCatalogEntry(t *testing.T) {
	ctx := context.Background()
	svc, labels, _ := newFixture(t)

	if err := labels.Delete(ctx, "4"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	d, err := svc.Open(ctx, 0, 0, 0)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := svc.ToggleLabel(ctx, d, "4"); !errors.Is(err, labelservice.ErrLabelNotFound) {
		t.Errorf("expected ErrLabelNotFound, got %v", err)
	}
	if d.HasLabel("4") {
		t.Errorf("deleted label must not attach")
	}
}

func TestCreateLabelLogsActivity(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newFixture(t)

	d, err := svc.Open(ctx, 0, 0, 0)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	created, err := svc.CreateLabel(ctx, d, "Urgent", "#ff0000")
	if err != nil {
		t.Fatalf("CreateLabel failed: %v", err)
	}
	if d.HasLabel(created.ID) {
		t.Errorf("creation must not attach the label")
	}
	if len(d.Activity) != 1 || d.Activity[0].Text != `Label "Urgent" created` {
		t.Errorf("expected creation entry, got %+v", d.Activity)
	}
}

func TestUpdateLabelSyncsOpenDraft(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newFixture(t)

	d, err := svc.Open(ctx, 0, 0, 0)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := svc.ToggleLabel(ctx, d, "1"); err != nil {
		t.Fatalf("ToggleLabel failed: %v", err)
	}

	name := "Client"
	if err := svc.UpdateLabel(ctx, d, labelservice.UpdateLabelRequest{ID: "1", Name: &name}); err != nil {
		t.Fatalf("UpdateLabel failed: %v", err)
	}
	if d.Labels[0].Name != "Client" {
		t.Errorf("draft copy not synced: %+v", d.Labels[0])
	}
}

func TestDeleteLabelSyncsOpenDraft(t *testing.T) {
	ctx := context.Background()
	svc, labels, _ := newFixture(t)

	d, err := svc.Open(ctx, 0, 0, 0)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := svc.ToggleLabel(ctx, d, "1"); err != nil {
		t.Fatalf("ToggleLabel failed: %v", err)
	}

	if err := svc.DeleteLabel(ctx, d, "1"); err != nil {
		t.Fatalf("DeleteLabel failed: %v", err)
	}
	if d.HasLabel("1") {
		t.Errorf("deleted label still on draft")
	}
	if _, err := labels.Get(ctx, "1"); !errors.Is(err, labelservice.ErrLabelNotFound) {
		t.Errorf("catalog entry should be gone, got %v", err)
	}
}
