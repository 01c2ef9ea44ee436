// Package user manages local accounts and the signed-in session. The
// only thing the rest of the application takes from here is the current
// user id, which partitions the board data key.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/store"
)

// Service defines account and session operations
type Service interface {
	SignUp(ctx context.Context, req SignUpRequest) (*models.User, error)
	LogIn(ctx context.Context, identifier, password string) (*models.User, error)
	LogOut(ctx context.Context) error

	// Current returns the signed-in user, or nil when nobody is
	Current(ctx context.Context) (*models.User, error)

	// CurrentUserID returns the board-data partition key: the signed-in
	// user's id, or the guest sentinel.
	CurrentUserID(ctx context.Context) string

	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*models.User, error)
}

// SignUpRequest carries the registration form fields
type SignUpRequest struct {
	FullName        string
	Username        string
	Email           string
	Phone           string
	Bio             string
	Password        string
	ConfirmPassword string
}

// UpdateProfileRequest carries profile edits.
// Nil fields are left unchanged.
type UpdateProfileRequest struct {
	FullName *string
	Username *string
	Email    *string
	Phone    *string
	Bio      *string
}

// service implements Service interface
type service struct {
	store *store.Store
}

// NewService creates a new account service
func NewService(st *store.Store) Service {
	return &service{store: st}
}

// SignUp validates the registration form, rejects duplicate accounts
// and signs the new user in.
func (s *service) SignUp(ctx context.Context, req SignUpRequest) (*models.User, error) {
	if err := validateSignUp(req); err != nil {
		return nil, err
	}

	users, err := s.users(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == req.Email || u.Username == req.Username {
			return nil, ErrDuplicateAccount
		}
	}

	created := models.User{
		ID:       uuid.NewString(),
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Bio:      req.Bio,
		Password: req.Password,
	}
	users = append(users, created)

	if err := s.store.Save(ctx, store.UsersKey, users); err != nil {
		return nil, fmt.Errorf("failed to save accounts: %w", err)
	}
	s.setSession(ctx, &created)
	return &created, nil
}

// LogIn matches the identifier against email or username
func (s *service) LogIn(ctx context.Context, identifier, password string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	users, err := s.users(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if (u.Email == identifier || u.Username == identifier) && u.Password == password {
			s.setSession(ctx, &u)
			return &u, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// LogOut clears the session. Board data stays in place under the
// user's partition key.
func (s *service) LogOut(ctx context.Context) error {
	return s.store.Delete(ctx, store.SessionKey)
}

// Current returns the signed-in user, nil when the session is empty
func (s *service) Current(ctx context.Context) (*models.User, error) {
	var u models.User
	found, err := s.store.Load(ctx, store.SessionKey, &u)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &u, nil
}

// CurrentUserID degrades to the guest partition when nobody is signed
// in or the session cannot be read.
func (s *service) CurrentUserID(ctx context.Context) string {
	u, err := s.Current(ctx)
	if err != nil {
		slog.Warn("failed to read session, using guest partition", "error", err)
		return models.GuestUserID
	}
	if u == nil {
		return models.GuestUserID
	}
	return u.ID
}

// UpdateProfile patches the signed-in account in both the account list
// and the session document.
func (s *service) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*models.User, error) {
	current, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotSignedIn
	}

	patch(current, req)
	if current.FullName == "" {
		return nil, ErrFullNameRequired
	}
	if current.Username == "" {
		return nil, ErrUsernameRequired
	}
	if current.Email == "" {
		return nil, ErrEmailRequired
	}

	users, err := s.users(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == current.ID {
			current.Password = users[i].Password
			users[i] = *current
			break
		}
	}

	if err := s.store.Save(ctx, store.UsersKey, users); err != nil {
		return nil, fmt.Errorf("failed to save accounts: %w", err)
	}
	s.setSession(ctx, current)
	return current, nil
}

func patch(u *models.User, req UpdateProfileRequest) {
	if req.FullName != nil {
		u.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Username != nil {
		u.Username = strings.TrimSpace(*req.Username)
	}
	if req.Email != nil {
		u.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		u.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
}

func validateSignUp(req SignUpRequest) error {
	if strings.TrimSpace(req.FullName) == "" {
		return ErrFullNameRequired
	}
	if strings.TrimSpace(req.Username) == "" {
		return ErrUsernameRequired
	}
	if strings.TrimSpace(req.Email) == "" {
		return ErrEmailRequired
	}
	if req.Password == "" {
		return ErrPasswordRequired
	}
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

func (s *service) users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if _, err := s.store.Load(ctx, store.UsersKey, &users); err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (s *service) setSession(ctx context.Context, u *models.User) {
	if err := s.store.Save(ctx, store.SessionKey, u); err != nil {
		slog.Warn("skipping session persist", "error", err)
	}
}
