package detail

import "github.com/thenoetrevino/tablero/internal/models"

// ToggleLabel attaches the label if the draft doesn't hold it and
// detaches it if it does. The pair is symmetric: toggling twice
// restores the original membership.
func (d *Draft) ToggleLabel(label models.Label) {
	for i, l := range d.Labels {
		if l.ID == label.ID {
			d.Labels = append(d.Labels[:i], d.Labels[i+1:]...)
			d.log(`Label "` + label.Name + `" removed`)
			return
		}
	}
	d.Labels = append(d.Labels, label)
	d.log(`Label "` + label.Name + `" added`)
}

// HasLabel reports whether the draft currently holds the label
func (d *Draft) HasLabel(id string) bool {
	for _, l := range d.Labels {
		if l.ID == id {
			return true
		}
	}
	return false
}

// LogLabelCreated records a catalog creation in the draft's activity.
// Creating a label does not attach it; the entry is the only draft-side
// effect.
func (d *Draft) LogLabelCreated(name string) {
	d.log(`Label "` + name + `" created`)
}

// SyncLabelUpdate propagates a catalog edit into the draft's
// materialized label references.
func (d *Draft) SyncLabelUpdate(label models.Label) {
	for i := range d.Labels {
		if d.Labels[i].ID == label.ID {
			d.Labels[i].Name = label.Name
			d.Labels[i].Color = label.Color
		}
	}
	d.log("Label updated")
}

// SyncLabelDelete removes a deleted catalog label from the draft
func (d *Draft) SyncLabelDelete(id string) {
	kept := d.Labels[:0]
	for _, l := range d.Labels {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	d.Labels = kept
	d.log("Label deleted")
}
