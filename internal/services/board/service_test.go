package board

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/tablero/internal/palette"
	"github.com/thenoetrevino/tablero/internal/store"
	"github.com/thenoetrevino/tablero/internal/testutil"
	"github.com/thenoetrevino/tablero/internal/tree"
)

const testUserID = "u-test"

func newService(t *testing.T) (Service, *store.Store) {
	t.Helper()

	st := testutil.NewStore(t)
	return NewService(st, palette.NewGenerator(), testUserID), st
}

func TestBoardsEmptyOnFreshStore(t *testing.T) {
	svc, _ := newService(t)

	boards, err := svc.Boards(context.Background())
	if err != nil {
		t.Fatalf("Boards failed: %v", err)
	}
	if len(boards) != 0 {
		t.Errorf("expected empty tree, got %v", boards)
	}
}

func TestAddBoardPersists(t *testing.T) {
	ctx := context.Background()
	svc, st := newService(t)

	if err := svc.AddBoard(ctx, "Sprint 1"); err != nil {
		t.Fatalf("AddBoard failed: %v", err)
	}

	// A second service over the same store sees the change
	again := NewService(st, palette.NewGenerator(), testUserID)
	boards, err := again.Boards(ctx)
	if err != nil {
		t.Fatalf("Boards failed: %v", err)
	}
	if len(boards) != 1 || boards[0].Name != "Sprint 1" {
		t.Errorf("expected persisted board, got %v", boards)
	}
	if boards[0].Color.Bg == "" {
		t.Errorf("board was stored without a palette")
	}
}

func TestCrudFlow(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	if err := svc.AddBoard(ctx, "Sprint 1"); err != nil {
		t.Fatalf("AddBoard failed: %v", err)
	}
	if err := svc.AddList(ctx, 0, "To Do"); err != nil {
		t.Fatalf("AddList failed: %v", err)
	}
	if err := svc.AddCard(ctx, 0, 0, "Fix bug"); err != nil {
		t.Fatalf("AddCard failed: %v", err)
	}
	if err := svc.EditCard(ctx, 0, 0, 0, "Fix the bug"); err != nil {
		t.Fatalf("EditCard failed: %v", err)
	}

	boards, err := svc.Boards(ctx)
	if err != nil {
		t.Fatalf("Boards failed: %v", err)
	}
	if boards[0].Lists[0].Cards[0].Name != "Fix the bug" {
		t.Errorf("rename did not persist: %+v", boards[0].Lists[0].Cards)
	}

	if err := svc.DeleteCard(ctx, 0, 0, 0); err != nil {
		t.Fatalf("DeleteCard failed: %v", err)
	}
	if err := svc.DeleteList(ctx, 0, 0); err != nil {
		t.Fatalf("DeleteList failed: %v", err)
	}
	if err := svc.DeleteBoard(ctx, 0); err != nil {
		t.Fatalf("DeleteBoard failed: %v", err)
	}

	boards, err = svc.Boards(ctx)
	if err != nil {
		t.Fatalf("Boards failed: %v", err)
	}
	if len(boards) != 0 {
		t.Errorf("expected empty tree after deletes, got %v", boards)
	}
}

func TestMoveCardPersists(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	if err := svc.AddBoard(ctx, "Sprint 1"); err != nil {
		t.Fatalf("AddBoard failed: %v", err)
	}
	for _, name := range []string{"To Do", "Done"} {
		if err := svc.AddList(ctx, 0, name); err != nil {
			t.Fatalf("AddList failed: %v", err)
		}
	}
	if err := svc.AddCard(ctx, 0, 0, "Ship it"); err != nil {
		t.Fatalf("AddCard failed: %v", err)
	}

	err := svc.Move(ctx, tree.KindCard,
		tree.Location{Board: 0, List: 0, Index: 0},
		tree.Location{Board: 0, List: 1, Index: 0})
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	boards, err := svc.Boards(ctx)
	if err != nil {
		t.Fatalf("Boards failed: %v", err)
	}
	if len(boards[0].Lists[0].Cards) != 0 {
		t.Errorf("card still in source list")
	}
	if len(boards[0].Lists[1].Cards) != 1 || boards[0].Lists[1].Cards[0].Name != "Ship it" {
		t.Errorf("card missing from destination list: %+v", boards[0].Lists[1].Cards)
	}
}

func TestStructuralErrorLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	if err := svc.AddBoard(ctx, "Sprint 1"); err != nil {
		t.Fatalf("AddBoard failed: %v", err)
	}

	if err := svc.EditBoard(ctx, 7, "X"); !errors.Is(err, tree.ErrInvalidBoardIndex) {
		t.Fatalf("expected ErrInvalidBoardIndex, got %v", err)
	}

	boards, err := svc.Boards(ctx)
	if err != nil {
		t.Fatalf("Boards failed: %v", err)
	}
	if len(boards) != 1 || boards[0].Name != "Sprint 1" {
		t.Errorf("failed edit corrupted the stored tree: %v", boards)
	}
}

func TestUserPartitionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	st := testutil.NewStore(t)
	alice := NewService(st, palette.NewGenerator(), "alice")
	bob := NewService(st, palette.NewGenerator(), "bob")

	if err := alice.AddBoard(ctx, "Alice's board"); err != nil {
		t.Fatalf("AddBoard failed: %v", err)
	}

	boards, err := bob.Boards(ctx)
	if err != nil {
		t.Fatalf("Boards failed: %v", err)
	}
	if len(boards) != 0 {
		t.Errorf("bob can see alice's boards: %v", boards)
	}
}
