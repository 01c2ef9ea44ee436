package tui

import (
	"fmt"
	"strings"
)

// viewHelp renders the keybinding reference, built from the active key
// mappings so a remapped config shows its own keys
func (m Model) viewHelp() string {
	k := m.keys
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("Keybindings"))
	sb.WriteString("\n\n")

	section := func(title string, rows [][2]string) {
		sb.WriteString(TitleStyle.Render(title) + "\n")
		for _, r := range rows {
			sb.WriteString(fmt.Sprintf("  %-12s %s\n", r[0], r[1]))
		}
		sb.WriteString("\n")
	}

	section("Boards", [][2]string{
		{k.AddBoard, "new board"},
		{k.EditBoard, "rename board"},
		{k.DeleteBoard, "delete board"},
		{k.MoveCardLeft + "/" + k.MoveCardRight, "reorder board"},
		{k.OpenCard, "open board"},
	})
	section("Lists", [][2]string{
		{k.AddList, "new list"},
		{k.EditList, "rename list"},
		{k.DeleteList, "delete list"},
		{k.MoveListLeft + "/" + k.MoveListRight, "reorder list"},
		{k.PrevList + "/" + k.NextList, "select list"},
	})
	section("Cards", [][2]string{
		{k.AddCard, "new card"},
		{k.EditCard, "rename card"},
		{k.DeleteCard, "delete card"},
		{k.OpenCard, "open card detail"},
		{k.PrevCard + "/" + k.NextCard, "select card"},
		{k.MoveCardUp + "/" + k.MoveCardDown, "reorder card"},
		{k.MoveCardLeft + "/" + k.MoveCardRight, "move card across lists"},
	})
	section("Other", [][2]string{
		{k.Back, "back"},
		{k.ShowHelp, "this help"},
		{k.Quit, "quit"},
	})

	sb.WriteString(SubtleStyle.Render("press any key to close"))
	return HelpBoxStyle.Render(sb.String())
}
