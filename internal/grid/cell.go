package grid

// Cell is one slot of a grid. A slot is either empty or holds a value.
// An empty cell always carries the zero Value.
type Cell[T comparable] struct {
	Value  T
	Filled bool
}

// Some returns a filled cell holding v.
func Some[T comparable](v T) Cell[T] {
	return Cell[T]{Value: v, Filled: true}
}

// Empty returns an empty cell.
func Empty[T comparable]() Cell[T] {
	return Cell[T]{}
}

// normalize drops any stray value from an empty cell.
func (c Cell[T]) normalize() Cell[T] {
	if !c.Filled {
		return Cell[T]{}
	}
	return c
}
