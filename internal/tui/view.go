package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/tablero/internal/detail"
	"github.com/thenoetrevino/tablero/internal/models"
)

// View renders the current layer.
// Required by tea.Model interface.
func (m Model) View() string {
	var body string
	switch m.mode {
	case modeInput:
		box := CreateInputBoxStyle
		if !m.input.create {
			box = EditInputBoxStyle
		}
		body = box.Render(m.input.form.View())
	case modeConfirm:
		body = DeleteConfirmBoxStyle.Render(m.confirm.form.View())
	case modeHelp:
		body = m.viewHelp()
	case modeDetail:
		body = m.viewDetail()
	default:
		if m.view == viewBoards {
			body = m.viewBoardGrid()
		} else {
			body = m.viewOpenBoard()
		}
	}

	if m.width > 0 && m.height > 1 {
		body = lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, body)
	}
	return body + "\n" + m.viewStatusBar()
}

// viewBoardGrid renders the landing screen: one tile per board
func (m Model) viewBoardGrid() string {
	title := TitleStyle.Render("Tablero") + "\n\n"

	if len(m.boards) == 0 {
		return title + SubtleStyle.Render(fmt.Sprintf("No boards yet. Press %q to create one.", m.keys.AddBoard))
	}

	tiles := make([]string, 0, len(m.boards))
	for i, b := range m.boards {
		cards := 0
		for _, l := range b.Lists {
			cards += len(l.Cards)
		}
		content := fmt.Sprintf("%s\n%s", b.Name,
			SubtleStyle.Render(fmt.Sprintf("%d lists, %d cards", len(b.Lists), cards)))

		style := BoardTileStyle.BorderForeground(lipgloss.Color(b.Color.Border))
		if i == m.selBoard {
			style = SelectedBoardTileStyle
		}
		tiles = append(tiles, style.Render(content))
	}
	return title + lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// viewOpenBoard renders one board's lists side by side
func (m Model) viewOpenBoard() string {
	b := m.currentBoard()
	if b == nil {
		return SubtleStyle.Render("Board is gone")
	}

	header := TitleStyle.Render(b.Name) + "\n\n"
	if len(b.Lists) == 0 {
		return header + SubtleStyle.Render(fmt.Sprintf("No lists yet. Press %q to create one.", m.keys.AddList))
	}

	cols := make([]string, 0, len(b.Lists))
	for li, l := range b.Lists {
		cols = append(cols, m.viewList(l, li))
	}
	return header + lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) viewList(l models.List, listIdx int) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(fmt.Sprintf("%s (%d)", l.Name, len(l.Cards))))
	sb.WriteString("\n\n")

	if len(l.Cards) == 0 {
		sb.WriteString(SubtleStyle.Render("empty"))
	}
	for ci, c := range l.Cards {
		style := CardStyle
		if listIdx == m.selList && ci == m.selCard {
			style = SelectedCardStyle
		}
		sb.WriteString(style.Render(m.viewCardSummary(c)))
		sb.WriteString("\n")
	}

	style := ListStyle.BorderForeground(lipgloss.Color(l.Color.Border))
	if listIdx == m.selList {
		style = SelectedListStyle
	}
	return style.Render(sb.String())
}

// viewCardSummary renders the face of a card: name, label chips and a
// checklist progress line
func (m Model) viewCardSummary(c models.Card) string {
	name := c.Name
	if c.Completed {
		name = "✓ " + name
	}
	out := name

	if len(c.Labels) > 0 {
		chips := make([]string, 0, len(c.Labels))
		for _, l := range c.Labels {
			chips = append(chips, lipgloss.NewStyle().
				Foreground(lipgloss.Color(l.Color)).
				Render("● "+l.Name))
		}
		out += "\n" + strings.Join(chips, " ")
	}

	items := append([]models.ChecklistItem(nil), c.Checklist...)
	for _, cl := range c.Checklists {
		items = append(items, cl.Items...)
	}
	if len(items) > 0 {
		out += "\n" + SubtleStyle.Render(fmt.Sprintf("checklist %d%%", detail.Progress(items)))
	}
	return out
}

// viewDetail renders the card detail dialog, or the label picker when
// it is layered on top
func (m Model) viewDetail() string {
	d := m.detail
	if d.picker != nil {
		return m.viewLabelPicker()
	}

	var sb strings.Builder
	marker := " "
	if d.draft.Completed {
		marker = "x"
	}
	sb.WriteString(TitleStyle.Render(fmt.Sprintf("[%s] %s", marker, d.draft.Name)))
	sb.WriteString("\n")

	if d.draft.Description != "" {
		rendered, err := glamour.Render(d.draft.Description, "dark")
		if err != nil {
			rendered = "\n" + d.draft.Description + "\n"
		}
		sb.WriteString(rendered)
	} else {
		sb.WriteString(SubtleStyle.Render("\nNo description. Press e to add one.\n"))
	}

	if d.draft.StartDate != "" || d.draft.DueDate != "" || d.draft.Location != "" {
		sb.WriteString("\n")
		if d.draft.StartDate != "" {
			sb.WriteString(fmt.Sprintf("Start: %s  ", d.draft.StartDate))
		}
		if d.draft.DueDate != "" {
			sb.WriteString(fmt.Sprintf("Due: %s  ", d.draft.DueDate))
		}
		if d.draft.Location != "" {
			sb.WriteString(fmt.Sprintf("Where: %s", d.draft.Location))
		}
		sb.WriteString("\n")
	}

	if len(d.draft.Labels) > 0 {
		chips := make([]string, 0, len(d.draft.Labels))
		for _, l := range d.draft.Labels {
			chips = append(chips, lipgloss.NewStyle().
				Foreground(lipgloss.Color(l.Color)).
				Render("● "+l.Name))
		}
		sb.WriteString("\n" + strings.Join(chips, " ") + "\n")
	}

	cl := d.draft.Checklists[0]
	sb.WriteString(fmt.Sprintf("\n%s (%d%%)\n", cl.Title, detail.Progress(cl.Items)))
	for i, it := range cl.Items {
		cursor := "  "
		if i == d.selItem {
			cursor = "> "
		}
		box := "[ ]"
		if it.Done {
			box = "[x]"
		}
		sb.WriteString(fmt.Sprintf("%s%s %s\n", cursor, box, it.Text))
	}

	if len(d.draft.Attachments) > 0 {
		sb.WriteString("\nAttachments: " + strings.Join(d.draft.Attachments, ", ") + "\n")
	}

	if len(d.draft.Comments) > 0 {
		sb.WriteString("\nComments:\n")
		for _, c := range tailComments(d.draft.Comments, 3) {
			sb.WriteString(SubtleStyle.Render(c.Time) + " " + c.Text + "\n")
		}
	}

	if len(d.draft.Activity) > 0 {
		sb.WriteString("\nActivity:\n")
		for _, a := range tailActivity(d.draft.Activity, 3) {
			sb.WriteString(SubtleStyle.Render(a.Time+" "+a.Text) + "\n")
		}
	}

	if d.input != detailInputNone {
		sb.WriteString("\n")
		switch d.input {
		case detailInputComment, detailInputDescription:
			sb.WriteString(d.text.View())
			sb.WriteString("\n" + SubtleStyle.Render("ctrl+s confirm, esc cancel"))
		default:
			sb.WriteString(d.line.View())
			sb.WriteString("\n" + SubtleStyle.Render("enter confirm, esc cancel"))
		}
	} else {
		sb.WriteString("\n" + SubtleStyle.Render("s save  esc discard  l labels  c comment  i item  space toggle  d delete  x done"))
	}

	return DetailBoxStyle.Render(sb.String())
}

func (m Model) viewLabelPicker() string {
	p := m.detail.picker

	if p.form != nil {
		return LabelPickerBoxStyle.Render(p.form.View())
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Labels"))
	sb.WriteString("\n\n")
	if len(p.labels) == 0 {
		sb.WriteString(SubtleStyle.Render("Catalog is empty. Press n to create a label."))
	}
	for i, l := range p.labels {
		cursor := "  "
		if i == p.sel {
			cursor = "> "
		}
		box := "[ ]"
		if m.detail.draft.HasLabel(l.ID) {
			box = "[x]"
		}
		sb.WriteString(cursor + box + " " + lipgloss.NewStyle().
			Foreground(lipgloss.Color(l.Color)).
			Render("● "+l.Name) + "\n")
	}
	sb.WriteString("\n" + SubtleStyle.Render("space toggle  n new  e edit  x delete  esc back"))
	return LabelPickerBoxStyle.Render(sb.String())
}

// viewStatusBar renders the bottom line: session, context and the last
// status or error
func (m Model) viewStatusBar() string {
	left := m.userName
	if m.view == viewBoard {
		if b := m.currentBoard(); b != nil {
			left += " | " + b.Name
		}
	}

	switch {
	case m.errMsg != "":
		return ErrorBannerStyle.Render(m.errMsg)
	case m.status != "":
		return InfoBannerStyle.Render(m.status) + " " + SubtleStyle.Render(left)
	default:
		return SubtleStyle.Render(left + "  (? for help)")
	}
}

func tailComments(in []models.Comment, n int) []models.Comment {
	if len(in) <= n {
		return in
	}
	return in[len(in)-n:]
}

func tailActivity(in []models.Activity, n int) []models.Activity {
	if len(in) <= n {
		return in
	}
	return in[len(in)-n:]
}
