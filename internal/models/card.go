package models

// Card represents a single unit of work on a list.
// Beyond its name it carries an extended document: labels from the shared
// catalog, checklists, comments, attachments and an append-only activity log.
// Like boards and lists, a card is identified by its position.
type Card struct {
	Name        string       `json:"name"`
	Color       ColorPalette `json:"color"`
	Description string       `json:"description,omitempty"`
	Labels      []Label      `json:"labels,omitempty"`
	Checklists  []Checklist  `json:"checklists,omitempty"`

	// Checklist is the legacy flat item list. It is migrated into a single
	// "default" checklist when a draft is built and dropped on save.
	Checklist []ChecklistItem `json:"checklist,omitempty"`

	Comments    []Comment  `json:"comments,omitempty"`
	Activity    []Activity `json:"activity,omitempty"`
	Attachments []string   `json:"attachments,omitempty"`
	StartDate   string     `json:"startDate,omitempty"`
	DueDate     string     `json:"dueDate,omitempty"`
	Location    string     `json:"location,omitempty"`
	Completed   bool       `json:"completed,omitempty"`
}

// Checklist is a titled group of checkable items on a card
type Checklist struct {
	ID    string          `json:"id"`
	Title string          `json:"title"`
	Items []ChecklistItem `json:"items"`
}

// ChecklistItem is a single checkable entry in a checklist
type ChecklistItem struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Comment is a user-authored note on a card
type Comment struct {
	Text string `json:"text"`
	Time string `json:"time"`
}

// Activity is a single entry in a card's append-only audit trail
type Activity struct {
	Text string `json:"text"`
	Time string `json:"time"`
}

// Clone returns a deep copy of the card and its whole sub-document
func (c Card) Clone() Card {
	out := c
	out.Labels = append([]Label(nil), c.Labels...)
	out.Checklist = append([]ChecklistItem(nil), c.Checklist...)
	out.Comments = append([]Comment(nil), c.Comments...)
	out.Activity = append([]Activity(nil), c.Activity...)
	out.Attachments = append([]string(nil), c.Attachments...)
	out.Checklists = make([]Checklist, len(c.Checklists))
	for i, cl := range c.Checklists {
		out.Checklists[i] = cl.Clone()
	}
	return out
}

// Clone returns a deep copy of the checklist
func (cl Checklist) Clone() Checklist {
	out := cl
	out.Items = append([]ChecklistItem(nil), cl.Items...)
	return out
}
