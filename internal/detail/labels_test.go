package detail

import (
	"testing"

	"github.com/thenoetrevino/tablero/internal/models"
)

func TestToggleLabelSymmetry(t *testing.T) {
	d := NewDraft(models.Card{Name: "Card"}, fixedClock)
	bug := models.Label{ID: "4", Name: "Bug", Color: "#ef4444"}

	d.ToggleLabel(bug)
	if !d.HasLabel("4") {
		t.Fatalf("label should be attached after first toggle")
	}
	d.ToggleLabel(bug)
	if d.HasLabel("4") {
		t.Fatalf("label should be detached after second toggle")
	}

	want := []string{`Label "Bug" added`, `Label "Bug" removed`}
	if len(d.Activity) != 2 {
		t.Fatalf("expected 2 activity entries, got %d", len(d.Activity))
	}
	for i, w := range want {
		if d.Activity[i].Text != w {
			t.Errorf("activity[%d] = %q, want %q", i, d.Activity[i].Text, w)
		}
	}
}

func TestHasLabel(t *testing.T) {
	d := NewDraft(models.Card{
		Name:   "Card",
		Labels: []models.Label{{ID: "1", Name: "Frontend", Color: "#4caf50"}},
	}, fixedClock)

	if !d.HasLabel("1") {
		t.Errorf("expected label 1 to be present")
	}
	if d.HasLabel("2") {
		t.Errorf("label 2 should not be present")
	}
}

func TestSyncLabelUpdate(t *testing.T) {
	d := NewDraft(models.Card{
		Name: "Card",
		Labels: []models.Label{
			{ID: "1", Name: "Frontend", Color: "#4caf50"},
			{ID: "2", Name: "Backend", Color: "#f97316"},
		},
	}, fixedClock)

	d.SyncLabelUpdate(models.Label{ID: "1", Name: "Client", Color: "#123456"})

	if d.Labels[0].Name != "Client" || d.Labels[0].Color != "#123456" {
		t.Errorf("update did not propagate: %+v", d.Labels[0])
	}
	if d.Labels[1].Name != "Backend" {
		t.Errorf("unrelated label was touched: %+v", d.Labels[1])
	}
}

func TestSyncLabelDelete(t *testing.T) {
	d := NewDraft(models.Card{
		Name: "Card",
		Labels: []models.Label{
			{ID: "1", Name: "Frontend", Color: "#4caf50"},
			{ID: "2", Name: "Backend", Color: "#f97316"},
		},
	}, fixedClock)

	d.SyncLabelDelete("1")

	if len(d.Labels) != 1 || d.Labels[0].ID != "2" {
		t.Errorf("expected only label 2 to survive, got %+v", d.Labels)
	}
}

func TestLogLabelCreatedDoesNotAttach(t *testing.T) {
	d := NewDraft(models.Card{Name: "Card"}, fixedClock)

	d.LogLabelCreated("Urgent")

	if len(d.Labels) != 0 {
		t.Errorf("creation must not attach the label")
	}
	if len(d.Activity) != 1 || d.Activity[0].Text != `Label "Urgent" created` {
		t.Errorf("expected creation entry, got %+v", d.Activity)
	}
}
