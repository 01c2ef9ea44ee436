// Package board exposes the board tree CRUD and move operations on top
// of the persisted store. Each operation loads the signed-in user's
// snapshot, applies a pure tree transformation and persists the result.
package board

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/palette"
	"github.com/thenoetrevino/tablero/internal/store"
	"github.com/thenoetrevino/tablero/internal/tree"
)

// Service defines all board-tree business operations
type Service interface {
	// Read operations
	Boards(ctx context.Context) ([]models.Board, error)

	// Board operations
	AddBoard(ctx context.Context, name string) error
	EditBoard(ctx context.Context, boardIdx int, name string) error
	DeleteBoard(ctx context.Context, boardIdx int) error

	// List operations
	AddList(ctx context.Context, boardIdx int, name string) error
	EditList(ctx context.Context, boardIdx, listIdx int, name string) error
	DeleteList(ctx context.Context, boardIdx, listIdx int) error

	// Card operations
	AddCard(ctx context.Context, boardIdx, listIdx int, name string) error
	EditCard(ctx context.Context, boardIdx, listIdx, cardIdx int, name string) error
	DeleteCard(ctx context.Context, boardIdx, listIdx, cardIdx int) error

	// Move relocates a board, list or card (the drag-and-drop commit)
	Move(ctx context.Context, kind tree.Kind, src, dst tree.Location) error
}

// service implements Service interface
type service struct {
	store  *store.Store
	colors *palette.Generator
	userID string
}

// NewService creates a new board service bound to one user's board data
func NewService(st *store.Store, colors *palette.Generator, userID string) Service {
	return &service{store: st, colors: colors, userID: userID}
}

// Boards returns the user's current board tree snapshot
func (s *service) Boards(ctx context.Context) ([]models.Board, error) {
	return s.load(ctx)
}

// AddBoard appends a new board with a freshly generated palette
func (s *service) AddBoard(ctx context.Context, name string) error {
	return s.apply(ctx, func(boards []models.Board) ([]models.Board, error) {
		return tree.AddBoard(boards, name, s.colors.Next())
	})
}

// EditBoard renames a board
func (s *service) EditBoard(ctx context.Context, boardIdx int, name string) error {
	return s.apply(ctx, func(boards []models.Board) ([]models.Board, error) {
		return tree.EditBoard(boards, boardIdx, name)
	})
}

// DeleteBoard removes a board and everything on it
func (s *service) DeleteBoard(ctx context.Context, boardIdx int) error {
	return s.apply(ctx, func(boards []models.Board) ([]models.Board, error) {
		return tree.DeleteBoard(boards, boardIdx)
	})
}

// AddList appends a new list to a board
func (s *service) AddList(ctx context.Context, boardIdx int, name string) error {
	return s.apply(ctx, func(boards []models.Board) ([]models.Board, error) {
		return tree.AddList(boards, boardIdx, name, s.colors.Next())
	})
}

// EditList renames a list
func (s *service) EditList(ctx context.Context, boardIdx, listIdx int, name string) error {
	return s.apply(ctx, func(boards []models.Board) ([]models.Board, error) {
		return tree.EditList(boards, boardIdx, listIdx, name)
	})
}

// DeleteList removes a list and its cards
func (s *service) DeleteList(ctx context.Context, boardIdx, listIdx int) error {
	return s.apply(ctx, func(boards []models.Board) ([]models.Board, error) {
		return tree.DeleteList(boards, boardIdx, listIdx)
	})
}

// AddCard appends a new card to a list
func (s *service) AddCard(ctx context.Context, boardIdx, listIdx int, name string) error {
	return s.apply(ctx, func(boards []models.Board) ([]models.Board, error) {
		return tree.AddCard(boards, boardIdx, listIdx, name, s.colors.Next())
	})
}

// EditCard renames a card
func (s *service) EditCard(ctx context.Context, boardIdx, listIdx, cardIdx int, name string) error {
	return s.apply(ctx, func(boards []models.Board) ([]models.Board, error) {
		return tree.EditCard(boards, boardIdx, listIdx, cardIdx, name)
	})
}

// DeleteCard removes a card
func (s *service) DeleteCard(ctx context.Context, boardIdx, listIdx, cardIdx int) error {
	return s.apply(ctx, func(boards []models.Board) ([]models.Board, error) {
		return tree.DeleteCard(boards, boardIdx, listIdx, cardIdx)
	})
}

// Move commits a drag-and-drop relocation
func (s *service) Move(ctx context.Context, kind tree.Kind, src, dst tree.Location) error {
	return s.apply(ctx, func(boards []models.Board) ([]models.Board, error) {
		return tree.Move(boards, kind, src, dst)
	})
}

// apply runs one tree transformation against the stored snapshot.
// Structural and validation errors surface to the caller with the store
// untouched; persist failures degrade to an unsaved change.
func (s *service) apply(ctx context.Context, op func([]models.Board) ([]models.Board, error)) error {
	boards, err := s.load(ctx)
	if err != nil {
		return err
	}
	next, err := op(boards)
	if err != nil {
		return err
	}
	s.persist(ctx, next)
	return nil
}

func (s *service) load(ctx context.Context) ([]models.Board, error) {
	var boards []models.Board
	found, err := s.store.Load(ctx, store.BoardsKey(s.userID), &boards)
	if err != nil {
		return nil, fmt.Errorf("failed to load boards: %w", err)
	}
	if !found || boards == nil {
		boards = []models.Board{}
	}
	return boards, nil
}

func (s *service) persist(ctx context.Context, boards []models.Board) {
	if err := s.store.Save(ctx, store.BoardsKey(s.userID), boards); err != nil {
		slog.Warn("skipping board persist", "error", err)
	}
}
