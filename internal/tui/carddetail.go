package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/tablero/internal/detail"
)

// detailInput says which field of the detail dialog is capturing text
type detailInput int

const (
	detailInputNone detailInput = iota
	detailInputComment
	detailInputDescription
	detailInputItem
	detailInputAttachment
	detailInputStartDate
	detailInputDueDate
	detailInputLocation
)

// detailDialog is the card detail layer: one draft, edited in place,
// committed on save or dropped on cancel.
type detailDialog struct {
	draft *detail.Draft

	boardIdx int
	listIdx  int
	cardIdx  int

	selItem int
	input   detailInput
	text    textarea.Model
	line    textinput.Model
	picker  *labelPicker
}

// openDetail builds a draft for the card under the cursor and switches
// to the detail layer
func (m *Model) openDetail() {
	d, err := m.app.Cards.Open(m.ctx, m.selBoard, m.selList, m.selCard)
	if err != nil {
		m.setError(err)
		return
	}

	text := textarea.New()
	text.CharLimit = 2000
	line := textinput.New()
	line.CharLimit = 200

	m.detail = &detailDialog{
		draft:    d,
		boardIdx: m.selBoard,
		listIdx:  m.selList,
		cardIdx:  m.selCard,
		text:     text,
		line:     line,
	}
	m.mode = modeDetail
}

// saveDetail commits the draft back into the board tree and closes the
// dialog
func (m *Model) saveDetail() {
	d := m.detail
	if err := m.app.Cards.Save(m.ctx, d.boardIdx, d.listIdx, d.cardIdx, d.draft); err != nil {
		m.setError(err)
		return
	}
	m.detail = nil
	m.mode = modeNormal
	m.setStatus("Card saved")
	m.reload()
}

// closeDetail drops the draft without committing anything
func (m *Model) closeDetail() {
	m.detail = nil
	m.mode = modeNormal
	m.setStatus("Changes discarded")
}

// updateDetail routes one key event inside the detail layer
func (m *Model) updateDetail(msg tea.KeyMsg) tea.Cmd {
	d := m.detail

	if d.picker != nil {
		return m.updateLabelPicker(msg)
	}
	if d.input != detailInputNone {
		return m.updateDetailInput(msg)
	}

	switch msg.String() {
	case "esc", "q":
		m.closeDetail()
	case "s":
		m.saveDetail()
	case "j", "down":
		if d.selItem < len(d.draft.Checklists[0].Items)-1 {
			d.selItem++
		}
	case "k", "up":
		if d.selItem > 0 {
			d.selItem--
		}
	case " ":
		if len(d.draft.Checklists[0].Items) > 0 {
			m.setError(d.draft.ToggleChecklistItem(d.draft.Checklists[0].ID, d.selItem))
		}
	case "t":
		m.setError(d.draft.ToggleChecklist(d.draft.Checklists[0].ID))
	case "i":
		m.startDetailLine(detailInputItem, "Checklist item")
	case "a":
		m.startDetailLine(detailInputAttachment, "Attachment name")
	case "S":
		m.startDetailLine(detailInputStartDate, d.draft.StartDate)
	case "D":
		m.startDetailLine(detailInputDueDate, d.draft.DueDate)
	case "w":
		m.startDetailLine(detailInputLocation, d.draft.Location)
	case "c":
		d.input = detailInputComment
		d.text.SetValue("")
		d.text.Focus()
	case "e":
		d.input = detailInputDescription
		d.text.SetValue(d.draft.Description)
		d.text.Focus()
	case "x":
		d.draft.SetCompleted(!d.draft.Completed)
	case "l", "L":
		m.openLabelPicker()
	case "d":
		m.confirm = newConfirmPrompt(targetDetailCard, d.draft.Name)
		m.mode = modeConfirm
		return m.confirm.form.Init()
	}
	return nil
}

// startDetailLine opens the one-line input prefilled for date and
// location edits, empty for new items and attachments
func (m *Model) startDetailLine(kind detailInput, initial string) {
	d := m.detail
	d.input = kind
	switch kind {
	case detailInputItem, detailInputAttachment:
		d.line.SetValue("")
	default:
		d.line.SetValue(initial)
	}
	d.line.Focus()
}

// updateDetailInput handles keys while a detail field is capturing
// text. One-line fields commit on enter; the textarea commits on
// ctrl+s so enter can break lines. Esc always cancels.
func (m *Model) updateDetailInput(msg tea.KeyMsg) tea.Cmd {
	d := m.detail

	switch msg.String() {
	case "esc":
		d.input = detailInputNone
		return nil
	case "enter":
		if d.input != detailInputComment && d.input != detailInputDescription {
			m.commitDetailInput(d.line.Value())
			d.input = detailInputNone
			return nil
		}
	case "ctrl+s":
		if d.input == detailInputComment || d.input == detailInputDescription {
			m.commitDetailInput(d.text.Value())
			d.input = detailInputNone
			return nil
		}
	}

	var cmd tea.Cmd
	if d.input == detailInputComment || d.input == detailInputDescription {
		d.text, cmd = d.text.Update(msg)
	} else {
		d.line, cmd = d.line.Update(msg)
	}
	return cmd
}

// commitDetailInput applies a confirmed field to the draft
func (m *Model) commitDetailInput(value string) {
	d := m.detail
	switch d.input {
	case detailInputComment:
		m.setError(d.draft.AddComment(value))
	case detailInputDescription:
		d.draft.SetDescription(value)
	case detailInputItem:
		m.setError(d.draft.AddChecklistItem(d.draft.Checklists[0].ID, value))
	case detailInputAttachment:
		d.draft.AddAttachment(value)
	case detailInputStartDate:
		d.draft.SetStartDate(value)
	case detailInputDueDate:
		d.draft.SetDueDate(value)
	case detailInputLocation:
		d.draft.SetLocation(value)
	}
}
