package tree

import (
	"errors"
	"testing"

	"github.com/thenoetrevino/tablero/internal/models"
)

func testPalette() models.ColorPalette {
	return models.ColorPalette{Bg: "#EDE9FE", Border: "#beb3e2", Text: "#4b4359"}
}

// buildBoards returns a small fixed tree: two boards, the first with
// two lists of two and one cards.
func buildBoards(t *testing.T) []models.Board {
	t.Helper()

	boards := []models.Board{}
	var err error
	boards, err = AddBoard(boards, "Sprint 1", testPalette())
	if err != nil {
		t.Fatalf("AddBoard: %v", err)
	}
	boards, err = AddBoard(boards, "Backlog", testPalette())
	if err != nil {
		t.Fatalf("AddBoard: %v", err)
	}
	boards, err = AddList(boards, 0, "To Do", testPalette())
	if err != nil {
		t.Fatalf("AddList: %v", err)
	}
	boards, err = AddList(boards, 0, "Done", testPalette())
	if err != nil {
		t.Fatalf("AddList: %v", err)
	}
	for _, name := range []string{"Fix bug", "Write docs"} {
		boards, err = AddCard(boards, 0, 0, name, testPalette())
		if err != nil {
			t.Fatalf("AddCard: %v", err)
		}
	}
	boards, err = AddCard(boards, 0, 1, "Ship it", testPalette())
	if err != nil {
		t.Fatalf("AddCard: %v", err)
	}
	return boards
}

func TestAddBoard(t *testing.T) {
	boards, err := AddBoard(nil, "  Sprint 1  ", testPalette())
	if err != nil {
		t.Fatalf("AddBoard failed: %v", err)
	}
	if len(boards) != 1 {
		t.Fatalf("expected 1 board, got %d", len(boards))
	}
	if boards[0].Name != "Sprint 1" {
		t.Errorf("expected trimmed name 'Sprint 1', got %q", boards[0].Name)
	}
	if boards[0].Lists == nil || len(boards[0].Lists) != 0 {
		t.Errorf("expected empty list slice, got %v", boards[0].Lists)
	}
}

func TestAddBoardEmptyName(t *testing.T) {
	if _, err := AddBoard(nil, "   ", testPalette()); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

func TestEditBoard(t *testing.T) {
	boards := buildBoards(t)

	out, err := EditBoard(boards, 0, "Sprint 2")
	if err != nil {
		t.Fatalf("EditBoard failed: %v", err)
	}
	if out[0].Name != "Sprint 2" {
		t.Errorf("expected rename, got %q", out[0].Name)
	}
	if boards[0].Name != "Sprint 1" {
		t.Errorf("input snapshot was mutated: %q", boards[0].Name)
	}
}

func TestEditBoardInvalidIndex(t *testing.T) {
	boards := buildBoards(t)
	if _, err := EditBoard(boards, 5, "X"); !errors.Is(err, ErrInvalidBoardIndex) {
		t.Errorf("expected ErrInvalidBoardIndex, got %v", err)
	}
	if _, err := EditBoard(boards, -1, "X"); !errors.Is(err, ErrInvalidBoardIndex) {
		t.Errorf("expected ErrInvalidBoardIndex, got %v", err)
	}
}

func TestDeleteBoard(t *testing.T) {
	boards := buildBoards(t)

	out, err := DeleteBoard(boards, 0)
	if err != nil {
		t.Fatalf("DeleteBoard failed: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Backlog" {
		t.Errorf("expected only Backlog to remain, got %v", out)
	}
	if len(boards) != 2 {
		t.Errorf("input snapshot was mutated")
	}
}

func TestDeleteList(t *testing.T) {
	boards := buildBoards(t)

	out, err := DeleteList(boards, 0, 0)
	if err != nil {
		t.Fatalf("DeleteList failed: %v", err)
	}
	if len(out[0].Lists) != 1 || out[0].Lists[0].Name != "Done" {
		t.Errorf("expected only Done to remain, got %v", out[0].Lists)
	}
}

func TestAddCardInvalidList(t *testing.T) {
	boards := buildBoards(t)
	if _, err := AddCard(boards, 0, 9, "X", testPalette()); !errors.Is(err, ErrInvalidListIndex) {
		t.Errorf("expected ErrInvalidListIndex, got %v", err)
	}
}

func TestEditCard(t *testing.T) {
	boards := buildBoards(t)

	out, err := EditCard(boards, 0, 0, 1, "Write better docs")
	if err != nil {
		t.Fatalf("EditCard failed: %v", err)
	}
	if out[0].Lists[0].Cards[1].Name != "Write better docs" {
		t.Errorf("rename did not apply")
	}
	if boards[0].Lists[0].Cards[1].Name != "Write docs" {
		t.Errorf("input snapshot was mutated")
	}
}

func TestDeleteCard(t *testing.T) {
	boards := buildBoards(t)

	out, err := DeleteCard(boards, 0, 0, 0)
	if err != nil {
		t.Fatalf("DeleteCard failed: %v", err)
	}
	if len(out[0].Lists[0].Cards) != 1 || out[0].Lists[0].Cards[0].Name != "Write docs" {
		t.Errorf("expected only 'Write docs' to remain, got %v", out[0].Lists[0].Cards)
	}
}

func TestCardAtReturnsCopy(t *testing.T) {
	boards := buildBoards(t)
	boards[0].Lists[0].Cards[0].Labels = []models.Label{{ID: "1", Name: "Bug", Color: "#ef4444"}}

	card, err := CardAt(boards, 0, 0, 0)
	if err != nil {
		t.Fatalf("CardAt failed: %v", err)
	}
	card.Labels[0].Name = "changed"
	if boards[0].Lists[0].Cards[0].Labels[0].Name != "Bug" {
		t.Errorf("CardAt returned a shallow copy")
	}
}

func TestReplaceCard(t *testing.T) {
	boards := buildBoards(t)

	card, err := CardAt(boards, 0, 0, 0)
	if err != nil {
		t.Fatalf("CardAt failed: %v", err)
	}
	card.Description = "now with details"

	out, err := ReplaceCard(boards, 0, 0, 0, card)
	if err != nil {
		t.Fatalf("ReplaceCard failed: %v", err)
	}
	if out[0].Lists[0].Cards[0].Description != "now with details" {
		t.Errorf("replacement did not apply")
	}
	if boards[0].Lists[0].Cards[0].Description != "" {
		t.Errorf("input snapshot was mutated")
	}
}

func TestReplaceCardInvalidIndex(t *testing.T) {
	boards := buildBoards(t)
	if _, err := ReplaceCard(boards, 0, 0, 9, models.Card{Name: "X"}); !errors.Is(err, ErrInvalidCardIndex) {
		t.Errorf("expected ErrInvalidCardIndex, got %v", err)
	}
}
