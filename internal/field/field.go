// Package field implements the falling-block automaton: a grid of colored
// blocks in which the active piece descends one row per tick, locks when it
// is obstructed, full rows are cleared and leftover debris sinks into the
// gaps.
//
// The automaton is synchronous. Nothing happens between calls to Tick; a
// caller drives it until Tick returns false and then places the next piece.
package field

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/blockfall/internal/grid"
)

// ErrUnsettled is returned by Settle when the tick limit is reached while
// the field is still changing.
var ErrUnsettled = errors.New("field did not settle")

// Field is a playfield of blocks. The embedded grid exposes the cell-level
// API; the methods below add the automaton on top.
type Field struct {
	*grid.Grid[Block]
}

// New creates an empty w by h field.
func New(w, h int) *Field {
	return &Field{Grid: grid.New[Block](w, h)}
}

// Clone returns an independent copy of the field.
func (f *Field) Clone() *Field {
	return &Field{Grid: f.Grid.Clone()}
}

// Equal reports whether both fields hold the same cells.
func (f *Field) Equal(other *Field) bool {
	if other == nil {
		return false
	}
	return f.Grid.Equal(other.Grid)
}

// ContentHeight is the distance from the topmost occupied row to the bottom
// edge, or 0 for an empty field. A field with a block in row 0 reports its
// full height.
func (f *Field) ContentHeight() int {
	for y := 0; y < f.Height(); y++ {
		if !f.rowEmpty(y) {
			return f.Height() - y
		}
	}
	return 0
}

// ActiveCount returns the number of blocks that belong to the falling piece.
func (f *Field) ActiveCount() int {
	n := 0
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if isActive(f.At(x, y)) {
				n++
			}
		}
	}
	return n
}

// FullRows returns the indices of rows without a single empty cell, top to
// bottom.
func (f *Field) FullRows() []int {
	var rows []int
	for y := 0; y < f.Height(); y++ {
		if f.rowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// Place stamps piece into the field at (x, y), shifted left and up as needed
// to keep it inside the right and bottom edges. Every cell of the piece's
// bounding box is overwritten, empty ones included. It returns the offset
// used.
func (f *Field) Place(x, y int, piece *grid.Grid[Block]) (int, int, error) {
	px, py, err := f.CopyInClipped(x, y, piece)
	if err != nil {
		return px, py, fmt.Errorf("field: place: %w", err)
	}
	return px, py, nil
}

// PlaceMasked is Place restricted to the occupied cells of piece, so the
// empty corners of its bounding box leave the field untouched.
func (f *Field) PlaceMasked(x, y int, piece *grid.Grid[Block]) (int, int, error) {
	if x < 0 || y < 0 {
		return x, y, fmt.Errorf("field: place masked at (%d,%d): %w", x, y, grid.ErrOutOfBounds)
	}
	px, py := f.ClipOffset(x, y, piece.Width(), piece.Height())
	if err := f.CopyInMasked(px, py, piece, grid.MaskOf(piece)); err != nil {
		return px, py, fmt.Errorf("field: place masked: %w", err)
	}
	return px, py, nil
}

// Overlaps reports whether an occupied cell of piece, placed at the clipped
// offset for (x, y), would land on an occupied field cell. A piece that
// cannot be placed at all overlaps by definition.
func (f *Field) Overlaps(x, y int, piece *grid.Grid[Block]) bool {
	if x < 0 || y < 0 || piece.Width() > f.Width() || piece.Height() > f.Height() {
		return true
	}
	px, py := f.ClipOffset(x, y, piece.Width(), piece.Height())
	for sy := 0; sy < piece.Height(); sy++ {
		for sx := 0; sx < piece.Width(); sx++ {
			if piece.At(sx, sy).Filled && f.At(px+sx, py+sy).Filled {
				return true
			}
		}
	}
	return false
}

// Settle ticks until the field stops changing or limit ticks have run. It
// returns the number of ticks that changed the field.
func (f *Field) Settle(limit int) (int, error) {
	for n := 0; n < limit; n++ {
		if !f.Tick() {
			return n, nil
		}
	}
	return limit, fmt.Errorf("field: %d ticks: %w", limit, ErrUnsettled)
}

func (f *Field) rowEmpty(y int) bool {
	for x := 0; x < f.Width(); x++ {
		if f.At(x, y).Filled {
			return false
		}
	}
	return true
}

func (f *Field) rowFull(y int) bool {
	if f.Width() == 0 {
		return false
	}
	for x := 0; x < f.Width(); x++ {
		if !f.At(x, y).Filled {
			return false
		}
	}
	return true
}
