package tree

import (
	"errors"
	"testing"

	"github.com/thenoetrevino/tablero/internal/models"
)

func cardNames(boards []models.Board, boardIdx, listIdx int) []string {
	names := make([]string, 0)
	for _, c := range boards[boardIdx].Lists[listIdx].Cards {
		names = append(names, c.Name)
	}
	return names
}

func totalCards(boards []models.Board) int {
	n := 0
	for _, b := range boards {
		for _, l := range b.Lists {
			n += len(l.Cards)
		}
	}
	return n
}

func assertNames(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

// moveFixture builds one board with a three-card list and an empty
// second list.
func moveFixture(t *testing.T) []models.Board {
	t.Helper()

	boards := []models.Board{}
	var err error
	boards, err = AddBoard(boards, "Board", testPalette())
	if err != nil {
		t.Fatalf("AddBoard: %v", err)
	}
	boards, err = AddList(boards, 0, "A", testPalette())
	if err != nil {
		t.Fatalf("AddList: %v", err)
	}
	boards, err = AddList(boards, 0, "B", testPalette())
	if err != nil {
		t.Fatalf("AddList: %v", err)
	}
	for _, name := range []string{"a", "b", "c"} {
		boards, err = AddCard(boards, 0, 0, name, testPalette())
		if err != nil {
			t.Fatalf("AddCard: %v", err)
		}
	}
	return boards
}

func TestMoveCardSameListForward(t *testing.T) {
	boards := moveFixture(t)

	// The destination index counts positions after the removal, so
	// moving the head to index 2 lands it at the tail.
	out, err := Move(boards, KindCard,
		Location{Board: 0, List: 0, Index: 0},
		Location{Board: 0, List: 0, Index: 2})
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	assertNames(t, cardNames(out, 0, 0), []string{"b", "c", "a"})
}

func TestMoveCardSameListBackward(t *testing.T) {
	boards := moveFixture(t)

	out, err := Move(boards, KindCard,
		Location{Board: 0, List: 0, Index: 2},
		Location{Board: 0, List: 0, Index: 0})
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	assertNames(t, cardNames(out, 0, 0), []string{"c", "a", "b"})
}

func TestMoveCardAcrossLists(t *testing.T) {
	boards := moveFixture(t)

	out, err := Move(boards, KindCard,
		Location{Board: 0, List: 0, Index: 1},
		Location{Board: 0, List: 1, Index: 0})
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	assertNames(t, cardNames(out, 0, 0), []string{"a", "c"})
	assertNames(t, cardNames(out, 0, 1), []string{"b"})
	if totalCards(out) != totalCards(boards) {
		t.Errorf("card count changed: %d != %d", totalCards(out), totalCards(boards))
	}
}

func TestMoveCardAppendAtEnd(t *testing.T) {
	boards := moveFixture(t)

	// Destination index equal to the list length appends
	out, err := Move(boards, KindCard,
		Location{Board: 0, List: 0, Index: 0},
		Location{Board: 0, List: 1, Index: 0})
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	out, err = Move(out, KindCard,
		Location{Board: 0, List: 0, Index: 0},
		Location{Board: 0, List: 1, Index: 1})
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	assertNames(t, cardNames(out, 0, 1), []string{"a", "b"})
}

func TestMoveCardInvalidDestination(t *testing.T) {
	boards := moveFixture(t)

	_, err := Move(boards, KindCard,
		Location{Board: 0, List: 0, Index: 0},
		Location{Board: 0, List: 1, Index: 5})
	if !errors.Is(err, ErrInvalidDestination) {
		t.Fatalf("expected ErrInvalidDestination, got %v", err)
	}

	// A failed move leaves the input snapshot intact
	assertNames(t, cardNames(boards, 0, 0), []string{"a", "b", "c"})
	if totalCards(boards) != 3 {
		t.Errorf("failed move corrupted the snapshot")
	}
}

func TestMoveCardInvalidSource(t *testing.T) {
	boards := moveFixture(t)
	_, err := Move(boards, KindCard,
		Location{Board: 0, List: 0, Index: 7},
		Location{Board: 0, List: 1, Index: 0})
	if !errors.Is(err, ErrInvalidCardIndex) {
		t.Errorf("expected ErrInvalidCardIndex, got %v", err)
	}
}

func TestMoveCardCarriesSubDocument(t *testing.T) {
	boards := moveFixture(t)
	boards[0].Lists[0].Cards[1].Comments = []models.Comment{{Text: "hi", Time: "1/2/2026, 3:04:05 PM"}}
	boards[0].Lists[0].Cards[1].Labels = []models.Label{{ID: "4", Name: "Bug", Color: "#ef4444"}}

	out, err := Move(boards, KindCard,
		Location{Board: 0, List: 0, Index: 1},
		Location{Board: 0, List: 1, Index: 0})
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	moved := out[0].Lists[1].Cards[0]
	if len(moved.Comments) != 1 || moved.Comments[0].Text != "hi" {
		t.Errorf("comments did not travel with the card")
	}
	if len(moved.Labels) != 1 || moved.Labels[0].Name != "Bug" {
		t.Errorf("labels did not travel with the card")
	}
}

func TestMoveListWithinBoard(t *testing.T) {
	boards := moveFixture(t)

	out, err := Move(boards, KindList,
		Location{Board: 0, Index: 0},
		Location{Board: 0, Index: 1})
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if out[0].Lists[0].Name != "B" || out[0].Lists[1].Name != "A" {
		t.Errorf("expected [B A], got [%s %s]", out[0].Lists[0].Name, out[0].Lists[1].Name)
	}
	// The moved list keeps its cards
	assertNames(t, cardNames(out, 0, 1), []string{"a", "b", "c"})
}

func TestMoveBoard(t *testing.T) {
	boards := []models.Board{}
	var err error
	for _, name := range []string{"one", "two", "three"} {
		boards, err = AddBoard(boards, name, testPalette())
		if err != nil {
			t.Fatalf("AddBoard: %v", err)
		}
	}

	out, err := Move(boards, KindBoard, Location{Index: 0}, Location{Index: 2})
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	got := []string{out[0].Name, out[1].Name, out[2].Name}
	assertNames(t, got, []string{"two", "three", "one"})
}

func TestMoveInvalidKind(t *testing.T) {
	boards := moveFixture(t)
	if _, err := Move(boards, Kind("column"), Location{}, Location{}); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("expected ErrInvalidKind, got %v", err)
	}
}
