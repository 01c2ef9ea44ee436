// Package tree implements the board tree operations: add, edit and
// delete at the board, list and card levels, plus the move primitive
// behind drag-and-drop reordering.
//
// Every operation is a pure function from a snapshot to a new snapshot.
// The caller's slice is deep-copied before mutation, so a returned error
// always means "nothing changed" and the previous snapshot stays valid.
package tree

import (
	"strings"

	"github.com/thenoetrevino/tablero/internal/models"
)

// AddBoard appends a new empty board with the given palette
func AddBoard(boards []models.Board, name string, color models.ColorPalette) ([]models.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	out := models.CloneBoards(boards)
	out = append(out, models.Board{Name: name, Color: color, Lists: []models.List{}})
	return out, nil
}

// EditBoard renames the board at boardIdx
func EditBoard(boards []models.Board, boardIdx int, name string) ([]models.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if boardIdx < 0 || boardIdx >= len(boards) {
		return nil, ErrInvalidBoardIndex
	}
	out := models.CloneBoards(boards)
	out[boardIdx].Name = name
	return out, nil
}

// DeleteBoard removes the board at boardIdx together with all of its
// lists and cards.
func DeleteBoard(boards []models.Board, boardIdx int) ([]models.Board, error) {
	if boardIdx < 0 || boardIdx >= len(boards) {
		return nil, ErrInvalidBoardIndex
	}
	out := models.CloneBoards(boards)
	out = append(out[:boardIdx], out[boardIdx+1:]...)
	return out, nil
}

// AddList appends a new empty list to the board at boardIdx
func AddList(boards []models.Board, boardIdx int, name string, color models.ColorPalette) ([]models.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if boardIdx < 0 || boardIdx >= len(boards) {
		return nil, ErrInvalidBoardIndex
	}
	out := models.CloneBoards(boards)
	out[boardIdx].Lists = append(out[boardIdx].Lists, models.List{
		Name:  name,
		Color: color,
		Cards: []models.Card{},
	})
	return out, nil
}

// EditList renames a list
func EditList(boards []models.Board, boardIdx, listIdx int, name string) ([]models.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if err := checkList(boards, boardIdx, listIdx); err != nil {
		return nil, err
	}
	out := models.CloneBoards(boards)
	out[boardIdx].Lists[listIdx].Name = name
	return out, nil
}

// DeleteList removes a list and all of its cards
func DeleteList(boards []models.Board, boardIdx, listIdx int) ([]models.Board, error) {
	if err := checkList(boards, boardIdx, listIdx); err != nil {
		return nil, err
	}
	out := models.CloneBoards(boards)
	lists := out[boardIdx].Lists
	out[boardIdx].Lists = append(lists[:listIdx], lists[listIdx+1:]...)
	return out, nil
}

// AddCard appends a new card to a list. The card starts with just a
// name and a palette; the extended document grows through the detail
// draft.
func AddCard(boards []models.Board, boardIdx, listIdx int, name string, color models.ColorPalette) ([]models.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if err := checkList(boards, boardIdx, listIdx); err != nil {
		return nil, err
	}
	out := models.CloneBoards(boards)
	list := &out[boardIdx].Lists[listIdx]
	list.Cards = append(list.Cards, models.Card{Name: name, Color: color})
	return out, nil
}

// EditCard renames a card
func EditCard(boards []models.Board, boardIdx, listIdx, cardIdx int, name string) ([]models.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if err := checkCard(boards, boardIdx, listIdx, cardIdx); err != nil {
		return nil, err
	}
	out := models.CloneBoards(boards)
	out[boardIdx].Lists[listIdx].Cards[cardIdx].Name = name
	return out, nil
}

// DeleteCard removes a card and its whole sub-document
func DeleteCard(boards []models.Board, boardIdx, listIdx, cardIdx int) ([]models.Board, error) {
	if err := checkCard(boards, boardIdx, listIdx, cardIdx); err != nil {
		return nil, err
	}
	out := models.CloneBoards(boards)
	cards := out[boardIdx].Lists[listIdx].Cards
	out[boardIdx].Lists[listIdx].Cards = append(cards[:cardIdx], cards[cardIdx+1:]...)
	return out, nil
}

// CardAt returns a deep copy of the card at the given position
func CardAt(boards []models.Board, boardIdx, listIdx, cardIdx int) (models.Card, error) {
	if err := checkCard(boards, boardIdx, listIdx, cardIdx); err != nil {
		return models.Card{}, err
	}
	return boards[boardIdx].Lists[listIdx].Cards[cardIdx].Clone(), nil
}

// ReplaceCard swaps in a new version of the card at the given position.
// Used when a detail draft is saved back into the tree.
func ReplaceCard(boards []models.Board, boardIdx, listIdx, cardIdx int, card models.Card) ([]models.Board, error) {
	if err := checkCard(boards, boardIdx, listIdx, cardIdx); err != nil {
		return nil, err
	}
	out := models.CloneBoards(boards)
	out[boardIdx].Lists[listIdx].Cards[cardIdx] = card.Clone()
	return out, nil
}

func checkList(boards []models.Board, boardIdx, listIdx int) error {
	if boardIdx < 0 || boardIdx >= len(boards) {
		return ErrInvalidBoardIndex
	}
	if listIdx < 0 || listIdx >= len(boards[boardIdx].Lists) {
		return ErrInvalidListIndex
	}
	return nil
}

func checkCard(boards []models.Board, boardIdx, listIdx, cardIdx int) error {
	if err := checkList(boards, boardIdx, listIdx); err != nil {
		return err
	}
	if cardIdx < 0 || cardIdx >= len(boards[boardIdx].Lists[listIdx].Cards) {
		return ErrInvalidCardIndex
	}
	return nil
}
