package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/thenoetrevino/tablero/internal/models"
	labelservice "github.com/thenoetrevino/tablero/internal/services/label"
)

// labelPicker lets the detail dialog browse the shared catalog, toggle
// labels on the open draft and maintain the catalog itself.
type labelPicker struct {
	labels []models.Label
	sel    int

	// form is non-nil while creating or editing a catalog entry
	form    *huh.Form
	editing bool
	editID  string
	name    string
	color   string
}

// openLabelPicker loads the catalog and layers the picker over the
// detail dialog
func (m *Model) openLabelPicker() {
	labels, err := m.app.Labels.Labels(m.ctx)
	if err != nil {
		m.setError(err)
		return
	}
	m.detail.picker = &labelPicker{labels: labels}
}

func (p *labelPicker) refresh(m *Model) {
	labels, err := m.app.Labels.Labels(m.ctx)
	if err != nil {
		slog.Warn("failed to refresh label catalog", "error", err)
		return
	}
	p.labels = labels
	if p.sel >= len(labels) {
		p.sel = len(labels) - 1
	}
	if p.sel < 0 {
		p.sel = 0
	}
}

// startLabelForm opens the two-field catalog form, prefilled when
// editing
func (p *labelPicker) startLabelForm(editing bool) {
	p.editing = editing
	p.name, p.color = "", ""
	if editing {
		if len(p.labels) == 0 {
			return
		}
		l := p.labels[p.sel]
		p.editID = l.ID
		p.name, p.color = l.Name, l.Color
	}
	p.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("name").
			Title("Label name").
			Placeholder("Enter label name...").
			Value(&p.name),
		huh.NewInput().
			Key("color").
			Title("Color").
			Placeholder("#rrggbb").
			Value(&p.color),
	))
}

// updateLabelPicker routes one key event inside the picker layer
func (m *Model) updateLabelPicker(msg tea.KeyMsg) tea.Cmd {
	d := m.detail
	p := d.picker

	if p.form != nil {
		form, cmd := p.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			p.form = f
		}
		switch p.form.State {
		case huh.StateCompleted:
			m.commitLabelForm()
			p.form = nil
		case huh.StateAborted:
			p.form = nil
		}
		return cmd
	}

	switch msg.String() {
	case "esc", "q":
		d.picker = nil
	case "j", "down":
		if p.sel < len(p.labels)-1 {
			p.sel++
		}
	case "k", "up":
		if p.sel > 0 {
			p.sel--
		}
	case " ", "enter":
		if len(p.labels) > 0 {
			m.setError(m.app.Cards.ToggleLabel(m.ctx, d.draft, p.labels[p.sel].ID))
		}
	case "n":
		p.startLabelForm(false)
		return p.form.Init()
	case "e":
		p.startLabelForm(true)
		if p.form != nil {
			return p.form.Init()
		}
	case "x":
		if len(p.labels) > 0 {
			m.setError(m.app.Cards.DeleteLabel(m.ctx, d.draft, p.labels[p.sel].ID))
			p.refresh(m)
		}
	}
	return nil
}

// commitLabelForm applies a completed create or edit form to the
// catalog, routing through the card service so the draft stays in sync
func (m *Model) commitLabelForm() {
	d := m.detail
	p := d.picker

	if p.editing {
		err := m.app.Cards.UpdateLabel(m.ctx, d.draft, labelservice.UpdateLabelRequest{
			ID:    p.editID,
			Name:  &p.name,
			Color: &p.color,
		})
		m.setError(err)
		if err == nil {
			m.setStatus("Label updated")
		}
	} else {
		_, err := m.app.Cards.CreateLabel(m.ctx, d.draft, p.name, p.color)
		m.setError(err)
		if err == nil {
			m.setStatus("Label created")
		}
	}
	p.refresh(m)
}
