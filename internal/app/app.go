package app

import (
	"context"

	"github.com/thenoetrevino/tablero/internal/palette"
	boardservice "github.com/thenoetrevino/tablero/internal/services/board"
	cardservice "github.com/thenoetrevino/tablero/internal/services/card"
	labelservice "github.com/thenoetrevino/tablero/internal/services/label"
	userservice "github.com/thenoetrevino/tablero/internal/services/user"
	"github.com/thenoetrevino/tablero/internal/store"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	store *store.Store

	// UserID is the board-data partition the container was built for
	UserID string

	// Service layer (business logic)
	Users  userservice.Service
	Boards boardservice.Service
	Cards  cardservice.Service
	Labels labelservice.Service
}

// New creates a new App with all services initialized, bound to the
// currently signed-in user (or the guest partition).
func New(ctx context.Context, st *store.Store) *App {
	users := userservice.NewService(st)
	userID := users.CurrentUserID(ctx)

	labels := labelservice.NewService(st, userID)
	return &App{
		store:  st,
		UserID: userID,
		Users:  users,
		Boards: boardservice.NewService(st, palette.NewGenerator(), userID),
		Cards:  cardservice.NewService(st, labels, nil, userID),
		Labels: labels,
	}
}

// Store returns the underlying document store
func (a *App) Store() *store.Store {
	return a.store
}

// Close performs cleanup of application resources
func (a *App) Close() error {
	return a.store.Close()
}
