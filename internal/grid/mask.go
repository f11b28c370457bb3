package grid

// Unit is the payload of a mask cell. It carries nothing beyond presence.
type Unit struct{}

// Mask is a presence-only grid used as a stencil by CopyInMasked.
type Mask struct {
	Grid[Unit]
}

// NewMask creates an empty mask.
func NewMask(w, h int) *Mask {
	return &Mask{Grid: *New[Unit](w, h)}
}

// MaskOf derives a mask from g: a mask cell is filled iff the cell of g at
// the same position is filled.
func MaskOf[T comparable](g *Grid[T]) *Mask {
	m := NewMask(g.w, g.h)
	for i, c := range g.cells {
		if c.Filled {
			m.cells[i] = Some(Unit{})
		}
	}
	return m
}

// Invert flips every cell between filled and empty.
func (m *Mask) Invert() {
	for i, c := range m.cells {
		if c.Filled {
			m.cells[i] = Empty[Unit]()
		} else {
			m.cells[i] = Some(Unit{})
		}
	}
}

// Inverted returns an inverted copy and leaves m untouched.
func (m *Mask) Inverted() *Mask {
	inv := m.Clone()
	inv.Invert()
	return inv
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	return &Mask{Grid: *m.Grid.Clone()}
}

// Equal reports whether both masks cover the same cells.
func (m *Mask) Equal(other *Mask) bool {
	if other == nil {
		return false
	}
	return m.Grid.Equal(&other.Grid)
}
