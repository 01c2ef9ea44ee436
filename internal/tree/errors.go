package tree

import "errors"

// Structural errors. Every operation that receives an index outside its
// parent sequence returns one of these and leaves the input snapshot
// untouched; the tree is never partially modified.
var (
	ErrInvalidBoardIndex  = errors.New("board index out of range")
	ErrInvalidListIndex   = errors.New("list index out of range")
	ErrInvalidCardIndex   = errors.New("card index out of range")
	ErrInvalidDestination = errors.New("destination index out of range")
	ErrInvalidKind        = errors.New("unknown move kind")
	ErrEmptyName          = errors.New("name cannot be empty")
)
