package grid

// Rotation is the direction of a quarter turn.
type Rotation uint8

const (
	Clockwise Rotation = iota
	Counterclockwise
)

// String returns the string representation of a rotation.
func (r Rotation) String() string {
	switch r {
	case Clockwise:
		return "cw"
	case Counterclockwise:
		return "ccw"
	default:
		return "unknown"
	}
}

// ParseRotation converts "cw"/"ccw" (or the long names) to a Rotation.
// Returns Clockwise and false if the string is not recognized.
func ParseRotation(s string) (Rotation, bool) {
	switch s {
	case "cw", "clockwise", "":
		return Clockwise, true
	case "ccw", "counterclockwise":
		return Counterclockwise, true
	default:
		return Clockwise, false
	}
}

// Rotate returns a new grid turned by 90 degrees times turns in direction
// dir. Turns are reduced modulo 4, so negative counts turn the other way;
// a multiple of four returns a plain copy.
func (g *Grid[T]) Rotate(dir Rotation, turns int) *Grid[T] {
	turns = ((turns % 4) + 4) % 4
	out := g.Clone()
	for range turns {
		out = out.quarter(dir)
	}
	return out
}

// quarter performs a single quarter turn into a grid of swapped dimensions.
func (g *Grid[T]) quarter(dir Rotation) *Grid[T] {
	out := New[T](g.h, g.w)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := g.cells[g.index(x, y)]
			if dir == Clockwise {
				// top row becomes the right column
				out.cells[out.index(g.h-1-y, x)] = c
			} else {
				// left column becomes the bottom row
				out.cells[out.index(y, g.w-1-x)] = c
			}
		}
	}
	return out
}
