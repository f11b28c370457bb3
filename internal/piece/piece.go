// Package piece is the catalog of the seven tetromino shapes. Each shape
// is produced as a small grid sized to its bounding box, with every
// occupied cell active and of a single color.
package piece

import (
	"strings"

	"github.com/vovakirdan/blockfall/internal/field"
	"github.com/vovakirdan/blockfall/internal/grid"
)

// Shape names a tetromino.
type Shape uint8

const (
	I Shape = iota
	O
	L
	J
	S
	Z
	T
	ShapeCount
)

func (s Shape) String() string {
	switch s {
	case I:
		return "I"
	case O:
		return "O"
	case L:
		return "L"
	case J:
		return "J"
	case S:
		return "S"
	case Z:
		return "Z"
	case T:
		return "T"
	default:
		return "?"
	}
}

// ParseShape converts a shape letter, in either case, to a Shape.
func ParseShape(s string) (Shape, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "I":
		return I, true
	case "O":
		return O, true
	case "L":
		return L, true
	case "J":
		return J, true
	case "S":
		return S, true
	case "Z":
		return Z, true
	case "T":
		return T, true
	default:
		return I, false
	}
}

// Shapes lists every shape in catalog order.
func Shapes() []Shape {
	return []Shape{I, O, L, J, S, Z, T}
}

type pattern struct {
	w, h  int
	cells [][2]int // (x, y) of each occupied cell
}

var patterns = [ShapeCount]pattern{
	I: {1, 4, [][2]int{{0, 0}, {0, 1}, {0, 2}, {0, 3}}},
	O: {2, 2, [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	L: {2, 3, [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 2}}},
	J: {2, 3, [][2]int{{1, 0}, {1, 1}, {1, 2}, {0, 2}}},
	S: {3, 2, [][2]int{{1, 0}, {2, 0}, {0, 1}, {1, 1}}},
	Z: {3, 2, [][2]int{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
	T: {3, 2, [][2]int{{1, 0}, {0, 1}, {1, 1}, {2, 1}}},
}

// New builds a fresh piece of the given shape. Unknown shapes yield an
// empty grid.
func New(s Shape, c field.Color) *grid.Grid[field.Block] {
	if s >= ShapeCount {
		return grid.New[field.Block](0, 0)
	}
	p := patterns[s]
	g := grid.New[field.Block](p.w, p.h)
	for _, xy := range p.cells {
		g.Put(xy[0], xy[1], field.Falling(c))
	}
	return g
}

// Rotated builds a piece and turns it clockwise turns times.
func Rotated(s Shape, c field.Color, turns int) *grid.Grid[field.Block] {
	return New(s, c).Rotate(grid.Clockwise, turns)
}
