package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// confirmTarget says what a confirmed deletion removes
type confirmTarget int

const (
	targetBoard confirmTarget = iota
	targetList
	targetCard
	// targetDetailCard deletes the card the detail dialog has open and
	// closes the dialog with it
	targetDetailCard
)

// confirmPrompt is the destructive-action gate. Nothing is touched
// until the user picks Yes.
type confirmPrompt struct {
	form      *huh.Form
	confirmed bool
	target    confirmTarget
}

// newConfirmPrompt builds a yes/no form for deleting the named thing
func newConfirmPrompt(target confirmTarget, name string) *confirmPrompt {
	p := &confirmPrompt{target: target}
	p.form = huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Key("confirm").
			Title(fmt.Sprintf("Delete %q?", name)).
			Description("This cannot be undone.").
			Affirmative("Yes").
			Negative("No").
			Value(&p.confirmed),
	))
	return p
}

// commitConfirm runs the deletion the user just approved
func (m *Model) commitConfirm() {
	var err error
	switch m.confirm.target {
	case targetBoard:
		err = m.app.Boards.DeleteBoard(m.ctx, m.selBoard)
		if err == nil {
			m.setStatus("Board deleted")
		}
	case targetList:
		err = m.app.Boards.DeleteList(m.ctx, m.selBoard, m.selList)
		if err == nil {
			m.setStatus("List deleted")
		}
	case targetCard:
		err = m.app.Boards.DeleteCard(m.ctx, m.selBoard, m.selList, m.selCard)
		if err == nil {
			m.setStatus("Card deleted")
		}
	case targetDetailCard:
		d := m.detail
		if d == nil {
			return
		}
		err = m.app.Boards.DeleteCard(m.ctx, d.boardIdx, d.listIdx, d.cardIdx)
		if err == nil {
			m.detail = nil
			m.setStatus("Card deleted")
		}
	}
	m.setError(err)
	m.reload()
}
