package label

import "errors"

// Label-related errors
var (
	ErrEmptyName     = errors.New("label name cannot be empty")
	ErrInvalidColor  = errors.New("label color must be a hex value like #FF5733")
	ErrLabelNotFound = errors.New("label not found")
)
