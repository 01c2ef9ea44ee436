package detail

import (
	"errors"
	"testing"

	"github.com/thenoetrevino/tablero/internal/models"
)

func checklistDraft(t *testing.T, done ...bool) *Draft {
	t.Helper()

	items := make([]models.ChecklistItem, len(done))
	for i, d := range done {
		items[i] = models.ChecklistItem{Text: "item", Done: d}
	}
	return NewDraft(models.Card{
		Name:       "Card",
		Checklists: []models.Checklist{{ID: "cl-1", Title: "Tasks", Items: items}},
	}, fixedClock)
}

func TestProgress(t *testing.T) {
	cases := []struct {
		name string
		done []bool
		want int
	}{
		{"empty", nil, 0},
		{"none done", []bool{false, false}, 0},
		{"one of three", []bool{true, false, false}, 33},
		{"two of three", []bool{true, true, false}, 67},
		{"all done", []bool{true, true}, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := make([]models.ChecklistItem, len(tc.done))
			for i, d := range tc.done {
				items[i].Done = d
			}
			if got := Progress(items); got != tc.want {
				t.Errorf("Progress = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestToggleChecklistMarksAllDone(t *testing.T) {
	d := checklistDraft(t, true, false, false)

	if err := d.ToggleChecklist("cl-1"); err != nil {
		t.Fatalf("ToggleChecklist failed: %v", err)
	}
	for i, it := range d.Checklists[0].Items {
		if !it.Done {
			t.Errorf("item %d should be done after bulk toggle", i)
		}
	}
	// The bulk flip is one action and gets one log entry
	if len(d.Activity) != 1 || d.Activity[0].Text != "Checklist toggled by user" {
		t.Errorf("expected single bulk-toggle entry, got %+v", d.Activity)
	}
}

func TestToggleChecklistReopensWhenAllDone(t *testing.T) {
	d := checklistDraft(t, true, true)

	if err := d.ToggleChecklist("cl-1"); err != nil {
		t.Fatalf("ToggleChecklist failed: %v", err)
	}
	for i, it := range d.Checklists[0].Items {
		if it.Done {
			t.Errorf("item %d should be reopened after bulk toggle", i)
		}
	}
}

func TestToggleChecklistUnknownID(t *testing.T) {
	d := checklistDraft(t, false)
	if err := d.ToggleChecklist("nope"); !errors.Is(err, ErrChecklistNotFound) {
		t.Errorf("expected ErrChecklistNotFound, got %v", err)
	}
}

func TestToggleChecklistItem(t *testing.T) {
	d := checklistDraft(t, false, true)

	if err := d.ToggleChecklistItem("cl-1", 0); err != nil {
		t.Fatalf("ToggleChecklistItem failed: %v", err)
	}
	if !d.Checklists[0].Items[0].Done {
		t.Errorf("item 0 should be done")
	}
	if err := d.ToggleChecklistItem("cl-1", 1); err != nil {
		t.Fatalf("ToggleChecklistItem failed: %v", err)
	}
	if d.Checklists[0].Items[1].Done {
		t.Errorf("item 1 should be reopened")
	}

	want := []string{"Checklist item completed", "Checklist item reopened"}
	for i, w := range want {
		if d.Activity[i].Text != w {
			t.Errorf("activity[%d] = %q, want %q", i, d.Activity[i].Text, w)
		}
	}
}

func TestToggleChecklistItemOutOfRange(t *testing.T) {
	d := checklistDraft(t, false)
	if err := d.ToggleChecklistItem("cl-1", 3); !errors.Is(err, ErrInvalidItemIndex) {
		t.Errorf("expected ErrInvalidItemIndex, got %v", err)
	}
	if err := d.ToggleChecklistItem("cl-1", -1); !errors.Is(err, ErrInvalidItemIndex) {
		t.Errorf("expected ErrInvalidItemIndex, got %v", err)
	}
}

func TestAddChecklistItem(t *testing.T) {
	d := checklistDraft(t)

	if err := d.AddChecklistItem("cl-1", "write tests"); err != nil {
		t.Fatalf("AddChecklistItem failed: %v", err)
	}
	items := d.Checklists[0].Items
	if len(items) != 1 || items[0].Text != "write tests" || items[0].Done {
		t.Errorf("expected one unchecked item, got %+v", items)
	}
	if len(d.Activity) != 1 || d.Activity[0].Text != "Checklist item added" {
		t.Errorf("expected add entry, got %+v", d.Activity)
	}
}

func TestAddChecklistItemRejectsBlank(t *testing.T) {
	d := checklistDraft(t)
	if err := d.AddChecklistItem("cl-1", "  "); !errors.Is(err, ErrEmptyChecklistItem) {
		t.Errorf("expected ErrEmptyChecklistItem, got %v", err)
	}
	if len(d.Checklists[0].Items) != 0 {
		t.Errorf("rejected item must not be stored")
	}
}
