// Package label manages the shared label catalog.
//
// The catalog is one global document: every account on the machine sees
// the same labels. Cards hold materialized copies of catalog entries,
// so catalog edits and deletions cascade through the signed-in user's
// stored board tree.
package label

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/store"
)

// Hex color regex pattern
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Service defines all label-catalog operations
type Service interface {
	// Read operations
	Labels(ctx context.Context) ([]models.Label, error)
	Get(ctx context.Context, id string) (*models.Label, error)

	// Write operations
	Create(ctx context.Context, name, color string) (*models.Label, error)
	Update(ctx context.Context, req UpdateLabelRequest) (*models.Label, error)
	Delete(ctx context.Context, id string) error
}

// UpdateLabelRequest patches a catalog entry.
// Nil fields are left unchanged.
type UpdateLabelRequest struct {
	ID    string
	Name  *string
	Color *string
}

// service implements Service interface
type service struct {
	store  *store.Store
	userID string
}

// NewService creates a new label catalog service. The userID selects
// which board tree catalog changes cascade into.
func NewService(st *store.Store, userID string) Service {
	return &service{store: st, userID: userID}
}

// defaultCatalog seeds a fresh install with the stock labels
func defaultCatalog() []models.Label {
	return []models.Label{
		{ID: "1", Name: "Frontend", Color: "#4caf50"},
		{ID: "2", Name: "Backend", Color: "#f97316"},
		{ID: "3", Name: "UI", Color: "#7b61ff"},
		{ID: "4", Name: "Bug", Color: "#ef4444"},
	}
}

// Labels returns the catalog, seeding the defaults on first use
func (s *service) Labels(ctx context.Context) ([]models.Label, error) {
	var labels []models.Label
	found, err := s.store.Load(ctx, store.LabelsKey, &labels)
	if err != nil {
		return nil, fmt.Errorf("failed to load label catalog: %w", err)
	}
	if !found {
		labels = defaultCatalog()
		s.persist(ctx, labels)
	}
	return labels, nil
}

// Get returns one catalog entry by id
func (s *service) Get(ctx context.Context, id string) (*models.Label, error) {
	labels, err := s.Labels(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range labels {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, ErrLabelNotFound
}

// Create adds a new catalog entry with a generated id
func (s *service) Create(ctx context.Context, name, color string) (*models.Label, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !hexColorRegex.MatchString(color) {
		return nil, ErrInvalidColor
	}

	labels, err := s.Labels(ctx)
	if err != nil {
		return nil, err
	}
	created := models.Label{ID: uuid.NewString(), Name: name, Color: color}
	labels = append(labels, created)
	s.persist(ctx, labels)
	return &created, nil
}

// Update patches a catalog entry and rewrites the materialized copy on
// every card of the user's board tree that references it.
func (s *service) Update(ctx context.Context, req UpdateLabelRequest) (*models.Label, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.Color != nil && !hexColorRegex.MatchString(*req.Color) {
		return nil, ErrInvalidColor
	}

	labels, err := s.Labels(ctx)
	if err != nil {
		return nil, err
	}

	var updated *models.Label
	for i := range labels {
		if labels[i].ID == req.ID {
			if req.Name != nil {
				labels[i].Name = strings.TrimSpace(*req.Name)
			}
			if req.Color != nil {
				labels[i].Color = *req.Color
			}
			updated = &labels[i]
			break
		}
	}
	if updated == nil {
		return nil, ErrLabelNotFound
	}

	s.persist(ctx, labels)
	s.cascade(ctx, func(card *models.Card) {
		for i := range card.Labels {
			if card.Labels[i].ID == updated.ID {
				card.Labels[i].Name = updated.Name
				card.Labels[i].Color = updated.Color
			}
		}
	})
	return updated, nil
}

// Delete removes a catalog entry and strips it from every card of the
// user's board tree, so no dangling references survive.
func (s *service) Delete(ctx context.Context, id string) error {
	labels, err := s.Labels(ctx)
	if err != nil {
		return err
	}

	kept := labels[:0]
	removed := false
	for _, l := range labels {
		if l.ID == id {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	if !removed {
		return ErrLabelNotFound
	}

	s.persist(ctx, kept)
	s.cascade(ctx, func(card *models.Card) {
		filtered := card.Labels[:0]
		for _, l := range card.Labels {
			if l.ID != id {
				filtered = append(filtered, l)
			}
		}
		card.Labels = filtered
	})
	return nil
}

// persist writes the catalog back; a write failure degrades to an
// unsaved change rather than an error.
func (s *service) persist(ctx context.Context, labels []models.Label) {
	if err := s.store.Save(ctx, store.LabelsKey, labels); err != nil {
		slog.Warn("skipping label catalog persist", "error", err)
	}
}

// cascade applies fn to every card in the user's stored board tree and
// saves the result.
func (s *service) cascade(ctx context.Context, fn func(*models.Card)) {
	key := store.BoardsKey(s.userID)
	var boards []models.Board
	found, err := s.store.Load(ctx, key, &boards)
	if err != nil {
		slog.Warn("skipping label cascade", "error", err)
		return
	}
	if !found {
		return
	}
	for bi := range boards {
		for li := range boards[bi].Lists {
			for ci := range boards[bi].Lists[li].Cards {
				fn(&boards[bi].Lists[li].Cards[ci])
			}
		}
	}
	if err := s.store.Save(ctx, key, boards); err != nil {
		slog.Warn("skipping label cascade persist", "error", err)
	}
}
