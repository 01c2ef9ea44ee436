// Package palette assigns colors to new boards, lists and cards.
// Assignment is a deterministic cycle over a fixed table of soft
// backgrounds; border and text colors are derived by darkening the
// background in Lab space.
package palette

import (
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/thenoetrevino/tablero/internal/models"
)

// backgrounds is the fixed cycle of base colors. New items walk this
// table in order, wrapping around at the end.
var backgrounds = []string{
	"#EDE9FE",
	"#FEF2F2",
	"#ECFDF5",
	"#FCE7F3",
	"#FEF3C7",
	"#D7C9F3",
	"#DCFCE7",
	"#F3E8FF",
	"#FFF7ED",
	"#F1F5F9",
}

// Generator hands out palettes cyclically. The cursor lives on the
// generator, not in package state, so independent sessions and tests
// never share position.
type Generator struct {
	mu   sync.Mutex
	next int
}

// NewGenerator returns a generator positioned at the start of the cycle
func NewGenerator() *Generator {
	return &Generator{}
}

// Next returns the palette for the next background in the cycle
func (g *Generator) Next() models.ColorPalette {
	g.mu.Lock()
	bg := backgrounds[g.next%len(backgrounds)]
	g.next++
	g.mu.Unlock()

	return models.ColorPalette{
		Bg:     bg,
		Border: darken(bg, 0.6),
		Text:   darken(bg, 3),
	}
}

// darken reduces the Lab lightness of a hex color by amount steps,
// where one step is 18 Lab lightness units (the chroma-js convention
// the stored palettes were originally produced with).
func darken(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	l, a, b := c.Lab()
	l -= 0.18 * amount
	if l < 0 {
		l = 0
	}
	return colorful.Lab(l, a, b).Clamped().Hex()
}
