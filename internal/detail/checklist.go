package detail

import (
	"math"
	"strings"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Progress returns the completion percentage of a checklist, rounded to
// the nearest whole number. An empty checklist is 0%.
func Progress(items []models.ChecklistItem) int {
	if len(items) == 0 {
		return 0
	}
	done := 0
	for _, it := range items {
		if it.Done {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(items)) * 100))
}

// ToggleChecklist bulk-toggles a whole checklist: if every item is done
// all items are reopened, otherwise all items are marked done. The bulk
// flip is one logical action and is logged once.
func (d *Draft) ToggleChecklist(checklistID string) error {
	cl := d.checklist(checklistID)
	if cl == nil {
		return ErrChecklistNotFound
	}
	allDone := true
	for _, it := range cl.Items {
		if !it.Done {
			allDone = false
			break
		}
	}
	for i := range cl.Items {
		cl.Items[i].Done = !allDone
	}
	d.log("Checklist toggled by user")
	return nil
}

// ToggleChecklistItem flips a single item and logs whether the item was
// completed or reopened.
func (d *Draft) ToggleChecklistItem(checklistID string, itemIdx int) error {
	cl := d.checklist(checklistID)
	if cl == nil {
		return ErrChecklistNotFound
	}
	if itemIdx < 0 || itemIdx >= len(cl.Items) {
		return ErrInvalidItemIndex
	}
	if cl.Items[itemIdx].Done {
		d.log("Checklist item reopened")
	} else {
		d.log("Checklist item completed")
	}
	cl.Items[itemIdx].Done = !cl.Items[itemIdx].Done
	return nil
}

// AddChecklistItem appends an unchecked item to a checklist. Empty text
// is rejected.
func (d *Draft) AddChecklistItem(checklistID, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyChecklistItem
	}
	cl := d.checklist(checklistID)
	if cl == nil {
		return ErrChecklistNotFound
	}
	cl.Items = append(cl.Items, models.ChecklistItem{Text: text})
	d.log("Checklist item added")
	return nil
}

func (d *Draft) checklist(id string) *models.Checklist {
	for i := range d.Checklists {
		if d.Checklists[i].ID == id {
			return &d.Checklists[i]
		}
	}
	return nil
}
