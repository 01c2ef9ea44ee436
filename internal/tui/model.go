package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// view selects which screen is showing
type view int

const (
	// viewBoards is the board grid, the landing screen
	viewBoards view = iota
	// viewBoard shows one board's lists and cards
	viewBoard
)

// mode selects which layer owns the keyboard
type mode int

const (
	modeNormal mode = iota
	modeInput
	modeConfirm
	modeDetail
	modeHelp
)

// Model represents the application state for the TUI
type Model struct {
	ctx  context.Context
	app  *app.App
	keys config.KeyMappings

	boards   []models.Board
	userName string

	view view
	mode mode

	selBoard int
	selList  int
	selCard  int

	width  int
	height int

	input   *inputPrompt
	confirm *confirmPrompt
	detail  *detailDialog

	status string
	errMsg string
}

// InitialModel creates and initializes the TUI model with data from the
// document store
func InitialModel(ctx context.Context, application *app.App, cfg *config.Config) Model {
	theme.Init(cfg.ColorScheme)
	applyTheme()

	m := Model{
		ctx:      ctx,
		app:      application,
		keys:     cfg.KeyMappings,
		userName: "Guest",
	}
	if u, err := application.Users.Current(ctx); err == nil && u != nil {
		m.userName = u.FullName
	}
	m.reload()
	return m
}

// Init initializes the Bubble Tea application.
// Required by tea.Model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// reload pulls a fresh board snapshot and clamps the cursor back into
// range
func (m *Model) reload() {
	boards, err := m.app.Boards.Boards(m.ctx)
	if err != nil {
		slog.Error("failed to load boards", "error", err)
		boards = []models.Board{}
	}
	m.boards = boards
	m.clampSelection()
}

func (m *Model) clampSelection() {
	if m.selBoard >= len(m.boards) {
		m.selBoard = len(m.boards) - 1
	}
	if m.selBoard < 0 {
		m.selBoard = 0
	}
	if len(m.boards) == 0 {
		m.selList, m.selCard = 0, 0
		return
	}
	lists := m.boards[m.selBoard].Lists
	if m.selList >= len(lists) {
		m.selList = len(lists) - 1
	}
	if m.selList < 0 {
		m.selList = 0
	}
	if len(lists) == 0 {
		m.selCard = 0
		return
	}
	cards := lists[m.selList].Cards
	if m.selCard >= len(cards) {
		m.selCard = len(cards) - 1
	}
	if m.selCard < 0 {
		m.selCard = 0
	}
}

// currentBoard returns the board under the cursor, or nil
func (m *Model) currentBoard() *models.Board {
	if m.selBoard < 0 || m.selBoard >= len(m.boards) {
		return nil
	}
	return &m.boards[m.selBoard]
}

// currentList returns the list under the cursor, or nil
func (m *Model) currentList() *models.List {
	b := m.currentBoard()
	if b == nil || m.selList < 0 || m.selList >= len(b.Lists) {
		return nil
	}
	return &b.Lists[m.selList]
}

// currentCard returns the card under the cursor, or nil
func (m *Model) currentCard() *models.Card {
	l := m.currentList()
	if l == nil || m.selCard < 0 || m.selCard >= len(l.Cards) {
		return nil
	}
	return &l.Cards[m.selCard]
}

// setStatus replaces the status line and clears any previous error
func (m *Model) setStatus(msg string) {
	m.status = msg
	m.errMsg = ""
}

// setError surfaces an operation failure on the status line
func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	m.errMsg = err.Error()
	m.status = ""
}
