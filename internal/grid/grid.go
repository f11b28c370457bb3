// Package grid provides a bounded 2D container of optional cells together
// with the geometric operations the engine builds on: clipped and masked
// overlays and quarter-turn rotation.
//
// Coordinates follow screen convention: x is the column, y is the row and
// the origin is the top-left corner. A grid never changes shape after it is
// constructed; operations that change dimensions return a new grid.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a coordinate or a sub-grid extends
	// past the edges of the target grid.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrDimensionMismatch is returned when a mask does not have the same
	// size as the grid it stencils.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// Grid is a fixed-size rectangle of cells stored in row-major order.
type Grid[T comparable] struct {
	w     int
	h     int
	cells []Cell[T]
}

// New creates a grid with every cell empty.
// Negative dimensions are treated as zero.
func New[T comparable](w, h int) *Grid[T] {
	w, h = max(w, 0), max(h, 0)
	return &Grid[T]{
		w:     w,
		h:     h,
		cells: make([]Cell[T], w*h),
	}
}

// NewFilled creates a grid with every cell set to c.
func NewFilled[T comparable](w, h int, c Cell[T]) *Grid[T] {
	g := New[T](w, h)
	c = c.normalize()
	for i := range g.cells {
		g.cells[i] = c
	}
	return g
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	return g.h
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

func (g *Grid[T]) index(x, y int) int {
	return y*g.w + x
}

// Get returns the cell at (x, y).
func (g *Grid[T]) Get(x, y int) (Cell[T], error) {
	if !g.InBounds(x, y) {
		return Cell[T]{}, fmt.Errorf("grid: get (%d,%d) in %dx%d: %w", x, y, g.w, g.h, ErrOutOfBounds)
	}
	return g.cells[g.index(x, y)], nil
}

// Set stores c at (x, y).
func (g *Grid[T]) Set(x, y int, c Cell[T]) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("grid: set (%d,%d) in %dx%d: %w", x, y, g.w, g.h, ErrOutOfBounds)
	}
	g.cells[g.index(x, y)] = c.normalize()
	return nil
}

// At is the unchecked variant of Get. The caller guarantees (x, y) is in
// bounds; anything else panics or reads a neighbouring row.
func (g *Grid[T]) At(x, y int) Cell[T] {
	return g.cells[g.index(x, y)]
}

// Put is the unchecked variant of Set.
func (g *Grid[T]) Put(x, y int, c Cell[T]) {
	g.cells[g.index(x, y)] = c.normalize()
}

// Clear empties every cell.
func (g *Grid[T]) Clear() {
	clear(g.cells)
}

// Count returns the number of filled cells.
func (g *Grid[T]) Count() int {
	n := 0
	for _, c := range g.cells {
		if c.Filled {
			n++
		}
	}
	return n
}

// Row returns a copy of row y, or nil when y is out of range.
func (g *Grid[T]) Row(y int) []Cell[T] {
	if y < 0 || y >= g.h {
		return nil
	}
	row := make([]Cell[T], g.w)
	copy(row, g.cells[y*g.w:(y+1)*g.w])
	return row
}

// Clone returns a deep copy that shares no storage with g.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]Cell[T], len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{
		w:     g.w,
		h:     g.h,
		cells: cells,
	}
}

// Equal reports whether both grids have the same dimensions and the same
// cells pairwise.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if other == nil {
		return false
	}
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
