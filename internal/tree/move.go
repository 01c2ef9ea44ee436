package tree

import "github.com/thenoetrevino/tablero/internal/models"

// Kind selects which sibling sequence a move operates on
type Kind string

const (
	KindBoard Kind = "board"
	KindList  Kind = "list"
	KindCard  Kind = "card"
)

// Location addresses one element in the tree. Which fields are read
// depends on the move kind: boards use Index only, lists use Board and
// Index, cards use all three.
type Location struct {
	Board int `json:"boardIndex"`
	List  int `json:"listIndex"`
	Index int `json:"index"`
}

// Move relocates one element using remove-then-insert splice semantics:
// the source element is removed first, then inserted at the destination
// index as interpreted against the sequence *after* removal. That is the
// standard drag-and-drop contract, and it is what makes same-sequence
// reordering come out right (moving index 0 to index 2 in [a b c] yields
// [b c a], not [b a c]).
//
// The source must address an existing element. The destination index may
// equal the post-removal length of the destination sequence (append);
// anything beyond that is ErrInvalidDestination.
func Move(boards []models.Board, kind Kind, src, dst Location) ([]models.Board, error) {
	switch kind {
	case KindBoard:
		return moveBoard(boards, src, dst)
	case KindList:
		return moveList(boards, src, dst)
	case KindCard:
		return moveCard(boards, src, dst)
	default:
		return nil, ErrInvalidKind
	}
}

func moveBoard(boards []models.Board, src, dst Location) ([]models.Board, error) {
	if src.Index < 0 || src.Index >= len(boards) {
		return nil, ErrInvalidBoardIndex
	}
	out := models.CloneBoards(boards)
	moved := out[src.Index]
	out = append(out[:src.Index], out[src.Index+1:]...)
	if dst.Index < 0 || dst.Index > len(out) {
		return nil, ErrInvalidDestination
	}
	out = append(out, models.Board{})
	copy(out[dst.Index+1:], out[dst.Index:])
	out[dst.Index] = moved
	return out, nil
}

func moveList(boards []models.Board, src, dst Location) ([]models.Board, error) {
	if err := checkList(boards, src.Board, src.Index); err != nil {
		return nil, err
	}
	if dst.Board < 0 || dst.Board >= len(boards) {
		return nil, ErrInvalidBoardIndex
	}
	out := models.CloneBoards(boards)

	srcLists := out[src.Board].Lists
	moved := srcLists[src.Index]
	out[src.Board].Lists = append(srcLists[:src.Index], srcLists[src.Index+1:]...)

	// Board indices are unaffected by removing a list, so the
	// destination board resolves against the same snapshot.
	dstLists := out[dst.Board].Lists
	if dst.Index < 0 || dst.Index > len(dstLists) {
		return nil, ErrInvalidDestination
	}
	dstLists = append(dstLists, models.List{})
	copy(dstLists[dst.Index+1:], dstLists[dst.Index:])
	dstLists[dst.Index] = moved
	out[dst.Board].Lists = dstLists
	return out, nil
}

func moveCard(boards []models.Board, src, dst Location) ([]models.Board, error) {
	if err := checkCard(boards, src.Board, src.List, src.Index); err != nil {
		return nil, err
	}
	out := models.CloneBoards(boards)

	srcCards := out[src.Board].Lists[src.List].Cards
	moved := srcCards[src.Index]
	out[src.Board].Lists[src.List].Cards = append(srcCards[:src.Index], srcCards[src.Index+1:]...)

	// The destination list is resolved after the removal; when source
	// and destination are the same list this is exactly where the
	// post-removal index interpretation happens.
	if err := checkList(out, dst.Board, dst.List); err != nil {
		return nil, err
	}
	dstCards := out[dst.Board].Lists[dst.List].Cards
	if dst.Index < 0 || dst.Index > len(dstCards) {
		return nil, ErrInvalidDestination
	}
	dstCards = append(dstCards, models.Card{})
	copy(dstCards[dst.Index+1:], dstCards[dst.Index:])
	dstCards[dst.Index] = moved
	out[dst.Board].Lists[dst.List].Cards = dstCards
	return out, nil
}
