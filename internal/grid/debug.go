package grid

import (
	"strconv"
	"strings"
)

// Debug glyphs, two runes wide so cells look square in a terminal.
const (
	GlyphEmpty  = "░░"
	GlyphFilled = "██"
)

// String renders the grid for debugging: a header of column indices (at most
// ten), then one line per row prefixed by its index when it has one digit.
// The layout is a diagnostic aid and is not stable.
func (g *Grid[T]) String() string {
	return Format(g, func(c Cell[T]) string {
		if c.Filled {
			return GlyphFilled
		}
		return GlyphEmpty
	})
}

// Format renders g using glyph to draw each cell, with the same header and
// row prefixes as String.
func Format[T comparable](g *Grid[T], glyph func(Cell[T]) string) string {
	var sb strings.Builder
	sb.Grow((g.w*2 + 2) * (g.h + 1))

	sb.WriteByte(' ')
	for i := range min(10, g.w) {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	for y := 0; y < g.h; y++ {
		if y < 10 {
			sb.WriteString(strconv.Itoa(y))
		} else {
			sb.WriteByte(' ')
		}
		for x := 0; x < g.w; x++ {
			sb.WriteString(glyph(g.cells[g.index(x, y)]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
