package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// Style definitions for the kanban board UI.
// Rebuilt by applyTheme after the color scheme is loaded.

var (
	// TitleStyle defines the appearance of titles (board names, app header)
	TitleStyle lipgloss.Style

	// SubtleStyle defines muted helper text
	SubtleStyle lipgloss.Style

	// BoardTileStyle defines the board tiles on the boards screen
	BoardTileStyle lipgloss.Style

	// SelectedBoardTileStyle marks the selected board tile
	SelectedBoardTileStyle lipgloss.Style

	// ListStyle defines the appearance of kanban lists
	ListStyle lipgloss.Style

	// SelectedListStyle marks the list holding the cursor
	SelectedListStyle lipgloss.Style

	// CardStyle defines the appearance of individual cards
	CardStyle lipgloss.Style

	// SelectedCardStyle marks the selected card
	SelectedCardStyle lipgloss.Style

	// CreateInputBoxStyle defines the base style for creation dialogs (green border)
	CreateInputBoxStyle lipgloss.Style

	// EditInputBoxStyle defines the base style for edit dialogs (blue border)
	EditInputBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// DetailBoxStyle defines the card detail dialog
	DetailBoxStyle lipgloss.Style

	// LabelPickerBoxStyle defines the label picker dialog
	LabelPickerBoxStyle lipgloss.Style

	// HelpBoxStyle defines the help screen
	HelpBoxStyle lipgloss.Style

	// InfoBannerStyle defines the appearance of info notifications
	InfoBannerStyle lipgloss.Style

	// ErrorBannerStyle defines the appearance of error messages
	ErrorBannerStyle lipgloss.Style
)

// applyTheme rebuilds every style from the current theme colors
func applyTheme() {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	BoardTileStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		Padding(1, 2).
		Width(28)

	SelectedBoardTileStyle = BoardTileStyle.
		BorderForeground(lipgloss.Color(theme.SelectedBorder)).
		Background(lipgloss.Color(theme.SelectedBg))

	ListStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ListBorder)).
		Padding(1).
		Width(40)

	SelectedListStyle = ListStyle.
		BorderForeground(lipgloss.Color(theme.SelectedBorder))

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		Background(lipgloss.Color(theme.CardBg)).
		Padding(0, 1).
		MarginBottom(1).
		Width(36)

	SelectedCardStyle = CardStyle.
		BorderForeground(lipgloss.Color(theme.SelectedBorder)).
		Background(lipgloss.Color(theme.SelectedBg))

	CreateInputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Create)).
		Padding(1)

	EditInputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Edit)).
		Padding(1)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Delete)).
		Padding(1)

	DetailBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)

	LabelPickerBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Edit)).
		Padding(1, 2)

	InfoBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.InfoFg)).
		Background(lipgloss.Color(theme.InfoBg)).
		Bold(true).
		Padding(0, 1)

	ErrorBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ErrorFg)).
		Background(lipgloss.Color(theme.ErrorBg)).
		Bold(true).
		Padding(0, 1)
}
