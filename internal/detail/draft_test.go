package detail

import (
	"errors"
	"testing"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
)

// fixedClock pins timestamps so activity entries are deterministic
func fixedClock() time.Time {
	return time.Date(2026, time.March, 9, 15, 4, 5, 0, time.UTC)
}

const fixedStamp = "3/9/2026, 3:04:05 PM"

func TestNewDraftMigratesLegacyChecklist(t *testing.T) {
	card := models.Card{
		Name:      "Old card",
		Checklist: []models.ChecklistItem{{Text: "first", Done: true}},
	}

	d := NewDraft(card, fixedClock)
	if len(d.Checklists) != 1 {
		t.Fatalf("expected 1 checklist, got %d", len(d.Checklists))
	}
	cl := d.Checklists[0]
	if cl.ID != DefaultChecklistID || cl.Title != "Checklist" {
		t.Errorf("unexpected synthetic checklist: %+v", cl)
	}
	if len(cl.Items) != 1 || cl.Items[0].Text != "first" || !cl.Items[0].Done {
		t.Errorf("legacy items were not carried over: %+v", cl.Items)
	}
}

func TestNewDraftSeedsEmptyChecklist(t *testing.T) {
	d := NewDraft(models.Card{Name: "Fresh"}, fixedClock)
	if len(d.Checklists) != 1 || len(d.Checklists[0].Items) != 0 {
		t.Fatalf("expected one empty checklist, got %+v", d.Checklists)
	}
}

func TestApplyDropsLegacyField(t *testing.T) {
	card := models.Card{
		Name:      "Old card",
		Checklist: []models.ChecklistItem{{Text: "x"}},
	}
	d := NewDraft(card, fixedClock)

	out := d.Apply(card)
	if out.Checklist != nil {
		t.Errorf("legacy checklist field should be dropped on save")
	}
	if len(out.Checklists) != 1 || out.Checklists[0].Items[0].Text != "x" {
		t.Errorf("items should live in the checklists sequence: %+v", out.Checklists)
	}
}

func TestAddComment(t *testing.T) {
	d := NewDraft(models.Card{Name: "Card"}, fixedClock)

	if err := d.AddComment("looks good"); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if len(d.Comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(d.Comments))
	}
	if d.Comments[0].Time != fixedStamp {
		t.Errorf("expected timestamp %q, got %q", fixedStamp, d.Comments[0].Time)
	}
	if len(d.Activity) != 1 || d.Activity[0].Text != "Comment added" {
		t.Errorf("expected 'Comment added' activity, got %+v", d.Activity)
	}
}

func TestAddCommentRejectsBlank(t *testing.T) {
	d := NewDraft(models.Card{Name: "Card"}, fixedClock)

	if err := d.AddComment("   "); !errors.Is(err, ErrEmptyComment) {
		t.Fatalf("expected ErrEmptyComment, got %v", err)
	}
	if len(d.Comments) != 0 || len(d.Activity) != 0 {
		t.Errorf("rejected comment must not touch the draft")
	}
}

func TestActivityIsAppendOnly(t *testing.T) {
	d := NewDraft(models.Card{Name: "Card"}, fixedClock)

	if err := d.AddComment("one"); err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	d.SetDueDate("3/15/2026, 9:00:00 AM")
	d.SetLocation("office")
	d.AddAttachment("spec.pdf")

	want := []string{
		"Comment added",
		"Due date updated",
		"Location updated",
		`Attachment "spec.pdf" added`,
	}
	if len(d.Activity) != len(want) {
		t.Fatalf("expected %d activity entries, got %d", len(want), len(d.Activity))
	}
	for i, w := range want {
		if d.Activity[i].Text != w {
			t.Errorf("activity[%d] = %q, want %q", i, d.Activity[i].Text, w)
		}
	}
}

func TestSetCompletedIsNotLogged(t *testing.T) {
	d := NewDraft(models.Card{Name: "Card"}, fixedClock)
	d.SetCompleted(true)
	d.SetCompleted(false)
	if len(d.Activity) != 0 {
		t.Errorf("completion toggles must not appear in activity: %+v", d.Activity)
	}
}

func TestAddAttachmentEmptyNameIsNoop(t *testing.T) {
	d := NewDraft(models.Card{Name: "Card"}, fixedClock)
	d.AddAttachment("")
	if len(d.Attachments) != 0 || len(d.Activity) != 0 {
		t.Errorf("empty attachment name must be a no-op")
	}
}

func TestDraftDoesNotAliasCard(t *testing.T) {
	card := models.Card{
		Name:     "Card",
		Comments: []models.Comment{{Text: "original", Time: fixedStamp}},
	}
	d := NewDraft(card, fixedClock)

	if err := d.AddComment("draft only"); err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if len(card.Comments) != 1 {
		t.Errorf("editing the draft leaked into the source card")
	}
}

func TestApplyRoundTrip(t *testing.T) {
	card := models.Card{Name: "Card", Color: models.ColorPalette{Bg: "#EDE9FE"}}
	d := NewDraft(card, fixedClock)

	d.SetName("Renamed")
	d.SetDescription("# Title\n\nBody")
	d.SetStartDate("3/9/2026, 9:00:00 AM")
	d.SetCompleted(true)
	if err := d.AddComment("done"); err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	out := d.Apply(card)
	if out.Name != "Renamed" || out.Description != "# Title\n\nBody" {
		t.Errorf("name/description not committed: %+v", out)
	}
	if !out.Completed || out.StartDate != "3/9/2026, 9:00:00 AM" {
		t.Errorf("flags not committed: %+v", out)
	}
	if len(out.Comments) != 1 || len(out.Activity) != 2 {
		t.Errorf("expected 1 comment and 2 activity entries, got %d/%d", len(out.Comments), len(out.Activity))
	}
	// The palette is not part of the draft and must survive untouched
	if out.Color.Bg != "#EDE9FE" {
		t.Errorf("palette was clobbered: %+v", out.Color)
	}
}
