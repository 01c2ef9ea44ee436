package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/thenoetrevino/tablero/internal/tree"
)

// Update routes incoming events to whichever layer owns the keyboard.
// Required by tea.Model interface.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		return m, nil
	}

	switch m.mode {
	case modeInput:
		return m.updateInputMode(msg)
	case modeConfirm:
		return m.updateConfirmMode(msg)
	case modeDetail:
		return m.updateDetailMode(msg)
	case modeHelp:
		if _, ok := msg.(tea.KeyMsg); ok {
			m.mode = modeNormal
		}
		return m, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.view == viewBoards {
		return m.updateBoardsView(key)
	}
	return m.updateBoardView(key)
}

// updateInputMode drives the single-field name prompt
func (m Model) updateInputMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.input.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.input.form = f
	}
	switch m.input.form.State {
	case huh.StateCompleted:
		m.commitInput()
		m.input = nil
		m.mode = modeNormal
	case huh.StateAborted:
		m.input = nil
		m.mode = modeNormal
	}
	return m, cmd
}

// updateConfirmMode drives the delete confirmation. A confirmed prompt
// opened from the detail dialog falls back into the dialog only when
// the deletion was cancelled.
func (m Model) updateConfirmMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.confirm.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirm.form = f
	}
	switch m.confirm.form.State {
	case huh.StateCompleted:
		if m.confirm.confirmed {
			m.commitConfirm()
		}
		fromDetail := m.confirm.target == targetDetailCard
		m.confirm = nil
		if fromDetail && m.detail != nil {
			m.mode = modeDetail
		} else {
			m.mode = modeNormal
		}
	case huh.StateAborted:
		fromDetail := m.confirm.target == targetDetailCard
		m.confirm = nil
		if fromDetail && m.detail != nil {
			m.mode = modeDetail
		} else {
			m.mode = modeNormal
		}
	}
	return m, cmd
}

// updateDetailMode feeds keys to the detail layer and everything else
// to whichever text component is focused
func (m Model) updateDetailMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		d := m.detail
		var cmd tea.Cmd
		if d.picker != nil && d.picker.form != nil {
			form, c := d.picker.form.Update(msg)
			if f, fok := form.(*huh.Form); fok {
				d.picker.form = f
			}
			return m, c
		}
		switch d.input {
		case detailInputComment, detailInputDescription:
			d.text, cmd = d.text.Update(msg)
		case detailInputNone:
		default:
			d.line, cmd = d.line.Update(msg)
		}
		return m, cmd
	}
	cmd := m.updateDetail(key)
	return m, cmd
}

// updateBoardsView handles normal-mode keys on the board grid
func (m Model) updateBoardsView(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := key.String()
	switch k {
	case m.keys.Quit:
		return m, tea.Quit
	case m.keys.ShowHelp:
		m.mode = modeHelp
	case m.keys.PrevList, "left":
		if m.selBoard > 0 {
			m.selBoard--
		}
	case m.keys.NextList, "right":
		if m.selBoard < len(m.boards)-1 {
			m.selBoard++
		}
	case m.keys.OpenCard:
		if len(m.boards) > 0 {
			m.view = viewBoard
			m.selList, m.selCard = 0, 0
		}
	case m.keys.AddBoard:
		m.input = newInputPrompt(actionAddBoard, "New board", "")
		m.mode = modeInput
		return m, m.input.form.Init()
	case m.keys.EditBoard:
		if b := m.currentBoard(); b != nil {
			m.input = newInputPrompt(actionRenameBoard, "Rename board", b.Name)
			m.mode = modeInput
			return m, m.input.form.Init()
		}
	case m.keys.DeleteBoard:
		if b := m.currentBoard(); b != nil {
			m.confirm = newConfirmPrompt(targetBoard, b.Name)
			m.mode = modeConfirm
			return m, m.confirm.form.Init()
		}
	case m.keys.MoveCardLeft:
		m.moveBoard(-1)
	case m.keys.MoveCardRight:
		m.moveBoard(1)
	}
	return m, nil
}

// updateBoardView handles normal-mode keys on an open board
func (m Model) updateBoardView(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := key.String()
	switch k {
	case m.keys.Quit:
		return m, tea.Quit
	case m.keys.ShowHelp:
		m.mode = modeHelp
	case m.keys.Back:
		m.view = viewBoards
	case m.keys.PrevList, "left":
		if m.selList > 0 {
			m.selList--
			m.selCard = 0
		}
	case m.keys.NextList, "right":
		if b := m.currentBoard(); b != nil && m.selList < len(b.Lists)-1 {
			m.selList++
			m.selCard = 0
		}
	case m.keys.PrevCard, "up":
		if m.selCard > 0 {
			m.selCard--
		}
	case m.keys.NextCard, "down":
		if l := m.currentList(); l != nil && m.selCard < len(l.Cards)-1 {
			m.selCard++
		}
	case m.keys.OpenCard:
		if m.currentCard() != nil {
			m.openDetail()
		}
	case m.keys.AddList:
		m.input = newInputPrompt(actionAddList, "New list", "")
		m.mode = modeInput
		return m, m.input.form.Init()
	case m.keys.EditList:
		if l := m.currentList(); l != nil {
			m.input = newInputPrompt(actionRenameList, "Rename list", l.Name)
			m.mode = modeInput
			return m, m.input.form.Init()
		}
	case m.keys.DeleteList:
		if l := m.currentList(); l != nil {
			m.confirm = newConfirmPrompt(targetList, l.Name)
			m.mode = modeConfirm
			return m, m.confirm.form.Init()
		}
	case m.keys.AddCard:
		if m.currentList() != nil {
			m.input = newInputPrompt(actionAddCard, "New card", "")
			m.mode = modeInput
			return m, m.input.form.Init()
		}
	case m.keys.EditCard:
		if c := m.currentCard(); c != nil {
			m.input = newInputPrompt(actionRenameCard, "Rename card", c.Name)
			m.mode = modeInput
			return m, m.input.form.Init()
		}
	case m.keys.DeleteCard:
		if c := m.currentCard(); c != nil {
			m.confirm = newConfirmPrompt(targetCard, c.Name)
			m.mode = modeConfirm
			return m, m.confirm.form.Init()
		}
	case m.keys.MoveListLeft:
		m.moveList(-1)
	case m.keys.MoveListRight:
		m.moveList(1)
	case m.keys.MoveCardUp:
		m.moveCardWithin(-1)
	case m.keys.MoveCardDown:
		m.moveCardWithin(1)
	case m.keys.MoveCardLeft:
		m.moveCardAcross(-1)
	case m.keys.MoveCardRight:
		m.moveCardAcross(1)
	}
	return m, nil
}

// moveBoard shifts the selected board one slot. The destination index
// is the position after removal, so a one-slot shift is a swap with the
// neighbor.
func (m *Model) moveBoard(delta int) {
	dst := m.selBoard + delta
	if dst < 0 || dst >= len(m.boards) {
		return
	}
	err := m.app.Boards.Move(m.ctx, tree.KindBoard,
		tree.Location{Index: m.selBoard},
		tree.Location{Index: dst})
	m.setError(err)
	if err == nil {
		m.selBoard = dst
	}
	m.reload()
}

// moveList shifts the selected list one slot within its board
func (m *Model) moveList(delta int) {
	b := m.currentBoard()
	if b == nil {
		return
	}
	dst := m.selList + delta
	if dst < 0 || dst >= len(b.Lists) {
		return
	}
	err := m.app.Boards.Move(m.ctx, tree.KindList,
		tree.Location{Board: m.selBoard, Index: m.selList},
		tree.Location{Board: m.selBoard, Index: dst})
	m.setError(err)
	if err == nil {
		m.selList = dst
	}
	m.reload()
}

// moveCardWithin reorders the selected card inside its list
func (m *Model) moveCardWithin(delta int) {
	l := m.currentList()
	if l == nil {
		return
	}
	dst := m.selCard + delta
	if dst < 0 || dst >= len(l.Cards) {
		return
	}
	err := m.app.Boards.Move(m.ctx, tree.KindCard,
		tree.Location{Board: m.selBoard, List: m.selList, Index: m.selCard},
		tree.Location{Board: m.selBoard, List: m.selList, Index: dst})
	m.setError(err)
	if err == nil {
		m.selCard = dst
	}
	m.reload()
}

// moveCardAcross drops the selected card into the neighboring list,
// keeping its vertical position where the shorter list allows
func (m *Model) moveCardAcross(delta int) {
	b := m.currentBoard()
	if b == nil || m.currentCard() == nil {
		return
	}
	dstList := m.selList + delta
	if dstList < 0 || dstList >= len(b.Lists) {
		return
	}
	dstIdx := m.selCard
	if n := len(b.Lists[dstList].Cards); dstIdx > n {
		dstIdx = n
	}
	err := m.app.Boards.Move(m.ctx, tree.KindCard,
		tree.Location{Board: m.selBoard, List: m.selList, Index: m.selCard},
		tree.Location{Board: m.selBoard, List: dstList, Index: dstIdx})
	m.setError(err)
	if err == nil {
		m.selList = dstList
		m.selCard = dstIdx
	}
	m.reload()
}
