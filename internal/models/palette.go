package models

// ColorPalette is the generated color triple assigned to every new
// board, list and card: a background, a slightly darker border and a
// much darker text color derived from the same base.
type ColorPalette struct {
	Bg     string `json:"bg"`
	Border string `json:"border"`
	Text   string `json:"text"`
}
