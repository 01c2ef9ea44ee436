// Package detail implements the card detail engine: a working copy of a
// single card's extended document. The detail dialog edits the draft and
// either commits it back into the board tree with Apply or discards it.
//
// Every mutating operation appends one entry to the draft's activity
// log, which is append-only and survives the commit.
package detail

import (
	"strings"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Clock supplies timestamps for comments and activity entries.
// Injected so tests can pin time.
type Clock func() time.Time

// timeLayout matches the locale-style timestamps already present in
// stored documents, e.g. "1/2/2026, 3:04:05 PM".
const timeLayout = "1/2/2006, 3:04:05 PM"

// DefaultChecklistID is the id given to the checklist synthesized from
// a legacy flat item list.
const DefaultChecklistID = "default"

// Draft is the editable working copy of a card document
type Draft struct {
	Name        string
	Description string
	Labels      []models.Label
	Checklists  []models.Checklist
	Comments    []models.Comment
	Activity    []models.Activity
	Attachments []string
	StartDate   string
	DueDate     string
	Location    string
	Completed   bool

	now Clock
}

// NewDraft builds a draft from a card.
//
// Legacy cards stored a single flat item list instead of named
// checklists; that shape is migrated here, once, into a synthetic
// checklist titled "Checklist". Cards with neither get one empty default
// checklist so the dialog always has somewhere to add items. This is the
// only place that ever looks at the legacy field.
func NewDraft(card models.Card, now Clock) *Draft {
	if now == nil {
		now = time.Now
	}
	c := card.Clone()

	var checklists []models.Checklist
	switch {
	case len(c.Checklists) > 0:
		checklists = c.Checklists
	case c.Checklist != nil:
		checklists = []models.Checklist{{
			ID:    DefaultChecklistID,
			Title: "Checklist",
			Items: c.Checklist,
		}}
	default:
		checklists = []models.Checklist{{
			ID:    DefaultChecklistID,
			Title: "Checklist",
			Items: []models.ChecklistItem{},
		}}
	}

	return &Draft{
		Name:        c.Name,
		Description: c.Description,
		Labels:      orEmptyLabels(c.Labels),
		Checklists:  checklists,
		Comments:    orEmptyComments(c.Comments),
		Activity:    orEmptyActivity(c.Activity),
		Attachments: orEmptyStrings(c.Attachments),
		StartDate:   c.StartDate,
		DueDate:     c.DueDate,
		Location:    c.Location,
		Completed:   c.Completed,
		now:         now,
	}
}

// Apply merges the draft back into the card and returns the committed
// version. The legacy flat checklist field is dropped for good: from
// here on the card only carries the checklists sequence.
func (d *Draft) Apply(card models.Card) models.Card {
	out := card.Clone()
	out.Name = d.Name
	out.Description = d.Description
	out.Labels = append([]models.Label(nil), d.Labels...)
	out.Checklists = make([]models.Checklist, len(d.Checklists))
	for i, cl := range d.Checklists {
		out.Checklists[i] = cl.Clone()
	}
	out.Checklist = nil
	out.Comments = append([]models.Comment(nil), d.Comments...)
	out.Activity = append([]models.Activity(nil), d.Activity...)
	out.Attachments = append([]string(nil), d.Attachments...)
	out.StartDate = d.StartDate
	out.DueDate = d.DueDate
	out.Location = d.Location
	out.Completed = d.Completed
	return out
}

// AddComment appends a comment. Empty or whitespace-only text is
// rejected without touching the draft.
func (d *Draft) AddComment(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyComment
	}
	d.Comments = append(d.Comments, models.Comment{Text: text, Time: d.timestamp()})
	d.log("Comment added")
	return nil
}

// AddAttachment records a file reference by name. An empty name (no
// file picked) is a no-op.
func (d *Draft) AddAttachment(name string) {
	if name == "" {
		return
	}
	d.Attachments = append(d.Attachments, name)
	d.log(`Attachment "` + name + `" added`)
}

// SetName replaces the card title on the draft
func (d *Draft) SetName(name string) {
	d.Name = name
}

// SetDescription replaces the description on the draft
func (d *Draft) SetDescription(text string) {
	d.Description = text
}

// SetStartDate replaces the start date and logs the change
func (d *Draft) SetStartDate(date string) {
	d.StartDate = date
	d.log("Start date updated")
}

// SetDueDate replaces the due date and logs the change
func (d *Draft) SetDueDate(date string) {
	d.DueDate = date
	d.log("Due date updated")
}

// SetLocation replaces the location and logs the change
func (d *Draft) SetLocation(location string) {
	d.Location = location
	d.log("Location updated")
}

// SetCompleted flips the completion marker. Deliberately not logged;
// the header toggle is not part of the audit trail.
func (d *Draft) SetCompleted(done bool) {
	d.Completed = done
}

// log appends one activity entry with the current timestamp
func (d *Draft) log(text string) {
	d.Activity = append(d.Activity, models.Activity{Text: text, Time: d.timestamp()})
}

func (d *Draft) timestamp() string {
	return d.now().Format(timeLayout)
}

func orEmptyLabels(in []models.Label) []models.Label {
	if in == nil {
		return []models.Label{}
	}
	return in
}

func orEmptyComments(in []models.Comment) []models.Comment {
	if in == nil {
		return []models.Comment{}
	}
	return in
}

func orEmptyActivity(in []models.Activity) []models.Activity {
	if in == nil {
		return []models.Activity{}
	}
	return in
}

func orEmptyStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
