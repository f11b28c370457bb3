package field

import "github.com/vovakirdan/blockfall/internal/grid"

// Block is the payload of an occupied field cell. Active blocks belong to
// the piece that is still falling; inactive ones are locked debris.
type Block struct {
	Color  Color
	Active bool
}

// Cell is a field slot.
type Cell = grid.Cell[Block]

// Locked returns an occupied cell holding settled debris of color c.
func Locked(c Color) Cell {
	return grid.Some(Block{Color: c})
}

// Falling returns an occupied cell that is part of a falling piece.
func Falling(c Color) Cell {
	return grid.Some(Block{Color: c, Active: true})
}

// Debris builds a w by h block where every cell is locked content of color
// c, ready to be stamped into a field.
func Debris(w, h int, c Color) *grid.Grid[Block] {
	return grid.NewFilled(w, h, Locked(c))
}

func isActive(c Cell) bool {
	return c.Filled && c.Value.Active
}
