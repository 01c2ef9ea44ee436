package cli

import (
	"errors"

	"github.com/thenoetrevino/tablero/internal/detail"
	labelservice "github.com/thenoetrevino/tablero/internal/services/label"
	userservice "github.com/thenoetrevino/tablero/internal/services/user"
	"github.com/thenoetrevino/tablero/internal/tree"
)

// ExitCode maps a service error onto the CLI exit code conventions
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, tree.ErrInvalidBoardIndex),
		errors.Is(err, tree.ErrInvalidListIndex),
		errors.Is(err, tree.ErrInvalidCardIndex),
		errors.Is(err, tree.ErrInvalidDestination),
		errors.Is(err, labelservice.ErrLabelNotFound),
		errors.Is(err, detail.ErrChecklistNotFound),
		errors.Is(err, detail.ErrInvalidItemIndex):
		return ExitNotFound
	case errors.Is(err, tree.ErrEmptyName),
		errors.Is(err, labelservice.ErrEmptyName),
		errors.Is(err, labelservice.ErrInvalidColor),
		errors.Is(err, detail.ErrEmptyComment),
		errors.Is(err, detail.ErrEmptyChecklistItem),
		errors.Is(err, userservice.ErrFullNameRequired),
		errors.Is(err, userservice.ErrUsernameRequired),
		errors.Is(err, userservice.ErrEmailRequired),
		errors.Is(err, userservice.ErrPasswordRequired),
		errors.Is(err, userservice.ErrPasswordMismatch):
		return ExitValidation
	default:
		return ExitError
	}
}
