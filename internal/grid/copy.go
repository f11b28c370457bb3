package grid

import "fmt"

// fits reports whether src placed at (x, y) lies entirely inside g.
func (g *Grid[T]) fits(x, y int, src *Grid[T]) bool {
	return x >= 0 && y >= 0 && x+src.w <= g.w && y+src.h <= g.h
}

// CopyIn writes every cell of src into g with src's top-left corner at
// (x, y). Destination cells are overwritten unconditionally, including with
// emptiness, so stamping a piece leaves no residue inside its bounding box.
func (g *Grid[T]) CopyIn(x, y int, src *Grid[T]) error {
	if !g.fits(x, y, src) {
		return fmt.Errorf("grid: copy %dx%d at (%d,%d) into %dx%d: %w",
			src.w, src.h, x, y, g.w, g.h, ErrOutOfBounds)
	}
	g.stamp(x, y, src, nil)
	return nil
}

// CopyInClipped behaves like CopyIn but first moves the offset left and up
// by the smallest amount that makes src fit against the right and bottom
// edges. The left and top edges are never clipped against. It returns the
// offset actually used.
//
// The only failures are a negative offset and a src larger than g, neither
// of which can be fixed by shifting toward the origin.
func (g *Grid[T]) CopyInClipped(x, y int, src *Grid[T]) (int, int, error) {
	if x < 0 || y < 0 || src.w > g.w || src.h > g.h {
		return x, y, fmt.Errorf("grid: clipped copy %dx%d at (%d,%d) into %dx%d: %w",
			src.w, src.h, x, y, g.w, g.h, ErrOutOfBounds)
	}
	x, y = g.ClipOffset(x, y, src.w, src.h)
	g.stamp(x, y, src, nil)
	return x, y, nil
}

// ClipOffset returns the offset a w by h block placed at (x, y) would be
// shifted to so it ends on or before the right and bottom edges.
func (g *Grid[T]) ClipOffset(x, y, w, h int) (int, int) {
	if x+w > g.w {
		x = g.w - w
	}
	if y+h > g.h {
		y = g.h - h
	}
	return x, y
}

// CopyInMasked writes the cells of src into g at (x, y), but only where the
// corresponding mask cell is filled. All other destination cells keep their
// content.
func (g *Grid[T]) CopyInMasked(x, y int, src *Grid[T], mask *Mask) error {
	if mask.w != src.w || mask.h != src.h {
		return fmt.Errorf("grid: mask %dx%d for source %dx%d: %w",
			mask.w, mask.h, src.w, src.h, ErrDimensionMismatch)
	}
	if !g.fits(x, y, src) {
		return fmt.Errorf("grid: masked copy %dx%d at (%d,%d) into %dx%d: %w",
			src.w, src.h, x, y, g.w, g.h, ErrOutOfBounds)
	}
	g.stamp(x, y, src, mask)
	return nil
}

// stamp copies src into g at a validated offset. A nil mask copies every cell.
func (g *Grid[T]) stamp(x, y int, src *Grid[T], mask *Mask) {
	for sy := 0; sy < src.h; sy++ {
		for sx := 0; sx < src.w; sx++ {
			if mask != nil && !mask.At(sx, sy).Filled {
				continue
			}
			g.cells[g.index(x+sx, y+sy)] = src.cells[src.index(sx, sy)]
		}
	}
}
