// Package card manages the card detail lifecycle: opening a draft from
// the stored tree, routing label-catalog changes through the draft and
// committing the draft back on save. Closing without saving simply
// drops the draft.
package card

import (
	"context"
	"log/slog"
	"time"

	"github.com/thenoetrevino/tablero/internal/detail"
	"github.com/thenoetrevino/tablero/internal/models"
	labelservice "github.com/thenoetrevino/tablero/internal/services/label"
	"github.com/thenoetrevino/tablero/internal/store"
	"github.com/thenoetrevino/tablero/internal/tree"
)

// Service defines the card detail operations
type Service interface {
	// Open builds an editable draft of the card at the given position
	Open(ctx context.Context, boardIdx, listIdx, cardIdx int) (*detail.Draft, error)

	// Save commits a draft back into the stored tree
	Save(ctx context.Context, boardIdx, listIdx, cardIdx int, d *detail.Draft) error

	// Label operations that touch both the draft and the catalog
	ToggleLabel(ctx context.Context, d *detail.Draft, labelID string) error
	CreateLabel(ctx context.Context, d *detail.Draft, name, color string) (*models.Label, error)
	UpdateLabel(ctx context.Context, d *detail.Draft, req labelservice.UpdateLabelRequest) error
	DeleteLabel(ctx context.Context, d *detail.Draft, labelID string) error
}

// service implements Service interface
type service struct {
	store  *store.Store
	labels labelservice.Service
	clock  detail.Clock
	userID string
}

// NewService creates a new card detail service. A nil clock defaults to
// time.Now.
func NewService(st *store.Store, labels labelservice.Service, clock detail.Clock, userID string) Service {
	if clock == nil {
		clock = time.Now
	}
	return &service{store: st, labels: labels, clock: clock, userID: userID}
}

// Open loads the current snapshot and builds a draft for one card.
// Legacy flat checklists are migrated inside the draft; the stored card
// is untouched until Save.
func (s *service) Open(ctx context.Context, boardIdx, listIdx, cardIdx int) (*detail.Draft, error) {
	boards, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	card, err := tree.CardAt(boards, boardIdx, listIdx, cardIdx)
	if err != nil {
		return nil, err
	}
	return detail.NewDraft(card, s.clock), nil
}

// Save merges the draft into the stored card. The position is
// re-validated against the current snapshot, so a stale location
// surfaces as a structural error instead of clobbering another card.
func (s *service) Save(ctx context.Context, boardIdx, listIdx, cardIdx int, d *detail.Draft) error {
	boards, err := s.load(ctx)
	if err != nil {
		return err
	}
	card, err := tree.CardAt(boards, boardIdx, listIdx, cardIdx)
	if err != nil {
		return err
	}
	next, err := tree.ReplaceCard(boards, boardIdx, listIdx, cardIdx, d.Apply(card))
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, store.BoardsKey(s.userID), next); err != nil {
		slog.Warn("skipping card persist", "error", err)
	}
	return nil
}

// ToggleLabel attaches or detaches a catalog label on the draft.
// The id must exist in the catalog; a deleted label cannot be
// re-attached through a stale reference.
func (s *service) ToggleLabel(ctx context.Context, d *detail.Draft, labelID string) error {
	l, err := s.labels.Get(ctx, labelID)
	if err != nil {
		return err
	}
	d.ToggleLabel(*l)
	return nil
}

// CreateLabel adds a catalog entry and records the creation in the
// draft's activity log.
func (s *service) CreateLabel(ctx context.Context, d *detail.Draft, name, color string) (*models.Label, error) {
	created, err := s.labels.Create(ctx, name, color)
	if err != nil {
		return nil, err
	}
	d.LogLabelCreated(created.Name)
	return created, nil
}

// UpdateLabel patches a catalog entry and syncs the draft's copy
func (s *service) UpdateLabel(ctx context.Context, d *detail.Draft, req labelservice.UpdateLabelRequest) error {
	updated, err := s.labels.Update(ctx, req)
	if err != nil {
		return err
	}
	d.SyncLabelUpdate(*updated)
	return nil
}

// DeleteLabel removes a catalog entry everywhere, including the open
// draft.
func (s *service) DeleteLabel(ctx context.Context, d *detail.Draft, labelID string) error {
	if err := s.labels.Delete(ctx, labelID); err != nil {
		return err
	}
	d.SyncLabelDelete(labelID)
	return nil
}

func (s *service) load(ctx context.Context) ([]models.Board, error) {
	var boards []models.Board
	if _, err := s.store.Load(ctx, store.BoardsKey(s.userID), &boards); err != nil {
		return nil, err
	}
	if boards == nil {
		boards = []models.Board{}
	}
	return boards, nil
}
