package models

// Board is the top-level organizational unit in Tablero: an ordered
// collection of lists, each holding an ordered collection of cards.
// Boards have no stable ID; a board is identified by its position in
// the stored board sequence.
type Board struct {
	Name  string       `json:"name"`
	Color ColorPalette `json:"color"`
	Lists []List       `json:"lists"`
}

// List is a single column on a board
type List struct {
	Name  string       `json:"name"`
	Color ColorPalette `json:"color"`
	Cards []Card       `json:"cards"`
}

// Clone returns a deep copy of the board, including all lists and cards
func (b Board) Clone() Board {
	c := b
	c.Lists = make([]List, len(b.Lists))
	for i, l := range b.Lists {
		c.Lists[i] = l.Clone()
	}
	return c
}

// Clone returns a deep copy of the list and its cards
func (l List) Clone() List {
	c := l
	c.Cards = make([]Card, len(l.Cards))
	for i, card := range l.Cards {
		c.Cards[i] = card.Clone()
	}
	return c
}

// CloneBoards deep-copies an entire board tree.
// Used by mutating operations so callers keep an untouched snapshot.
func CloneBoards(boards []Board) []Board {
	out := make([]Board, len(boards))
	for i, b := range boards {
		out[i] = b.Clone()
	}
	return out
}
