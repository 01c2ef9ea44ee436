package tui

import (
	"github.com/charmbracelet/huh"
)

// inputAction says what the name prompt commits to when confirmed
type inputAction int

const (
	actionAddBoard inputAction = iota
	actionRenameBoard
	actionAddList
	actionRenameList
	actionAddCard
	actionRenameCard
)

// inputPrompt is the single-field modal used for every create and
// rename. Enter confirms, Esc cancels without side effects.
type inputPrompt struct {
	form   *huh.Form
	value  string
	action inputAction
	title  string
	create bool
}

// newInputPrompt builds the prompt. Rename prompts come prefilled with
// the current name.
func newInputPrompt(action inputAction, title, initial string) *inputPrompt {
	p := &inputPrompt{
		action: action,
		title:  title,
		value:  initial,
		create: action == actionAddBoard || action == actionAddList || action == actionAddCard,
	}
	p.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("name").
			Title(title).
			Placeholder("Enter a name...").
			Value(&p.value),
	))
	return p
}

// commitInput dispatches a confirmed prompt to the board service.
// Validation errors (an empty name, a vanished position) surface on the
// status line and the board is left untouched.
func (m *Model) commitInput() {
	p := m.input
	var err error
	switch p.action {
	case actionAddBoard:
		err = m.app.Boards.AddBoard(m.ctx, p.value)
		if err == nil {
			m.setStatus("Board created")
		}
	case actionRenameBoard:
		err = m.app.Boards.EditBoard(m.ctx, m.selBoard, p.value)
		if err == nil {
			m.setStatus("Board renamed")
		}
	case actionAddList:
		err = m.app.Boards.AddList(m.ctx, m.selBoard, p.value)
		if err == nil {
			m.setStatus("List created")
		}
	case actionRenameList:
		err = m.app.Boards.EditList(m.ctx, m.selBoard, m.selList, p.value)
		if err == nil {
			m.setStatus("List renamed")
		}
	case actionAddCard:
		err = m.app.Boards.AddCard(m.ctx, m.selBoard, m.selList, p.value)
		if err == nil {
			m.setStatus("Card created")
		}
	case actionRenameCard:
		err = m.app.Boards.EditCard(m.ctx, m.selBoard, m.selList, m.selCard, p.value)
		if err == nil {
			m.setStatus("Card renamed")
		}
	}
	m.setError(err)
	m.reload()
}
