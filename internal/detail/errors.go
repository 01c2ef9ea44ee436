package detail

import "errors"

// Draft validation errors
var (
	ErrEmptyComment       = errors.New("comment text cannot be empty")
	ErrEmptyChecklistItem = errors.New("checklist item text cannot be empty")
	ErrChecklistNotFound  = errors.New("checklist not found")
	ErrInvalidItemIndex   = errors.New("checklist item index out of range")
)
