package scenario

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/field"
	"github.com/vovakirdan/blockfall/internal/grid"
	"github.com/vovakirdan/blockfall/internal/piece"
)

// Build creates the starting field: rows first, then individual cells.
// Placements are not applied.
func (s *Scenario) Build() (*field.Field, error) {
	f := field.New(s.Size.W, s.Size.H)
	if err := stampRows(f, s.Rows); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	for i, c := range s.Cells {
		color, ok := field.ParseColor(c.C)
		if !ok {
			return nil, fmt.Errorf("scenario %q: cell %d: unknown color %q", s.Name, i, c.C)
		}
		if err := f.Set(c.X, c.Y, field.Locked(color)); err != nil {
			return nil, fmt.Errorf("scenario %q: cell %d: %w", s.Name, i, err)
		}
	}
	return f, nil
}

// stampRows writes ASCII rows aligned to the bottom of f. '.' is empty and
// a color letter is locked debris.
func stampRows(f *field.Field, rows []string) error {
	if len(rows) > f.Height() {
		return fmt.Errorf("%d rows do not fit height %d", len(rows), f.Height())
	}
	top := f.Height() - len(rows)
	for i, row := range rows {
		cells, err := parseRow(row, f.Width())
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		for x, c := range cells {
			f.Put(x, top+i, c)
		}
	}
	return nil
}

func parseRow(row string, width int) ([]field.Cell, error) {
	runes := []rune(row)
	if len(runes) != width {
		return nil, fmt.Errorf("%q has %d cells, want %d", row, len(runes), width)
	}
	cells := make([]field.Cell, width)
	for x, r := range runes {
		if r == '.' {
			continue
		}
		color, ok := field.ParseColor(string(r))
		if !ok {
			return nil, fmt.Errorf("%q: unknown cell %q at column %d", row, r, x)
		}
		cells[x] = field.Locked(color)
	}
	return cells, nil
}

// Piece builds the rotated piece for a placement.
func (p Placement) Piece() (*grid.Grid[field.Block], error) {
	info, err := piece.Lookup(p.Shape)
	if err != nil {
		return nil, err
	}
	color, ok := field.ParseColor(p.Color)
	if !ok {
		return nil, fmt.Errorf("unknown color %q", p.Color)
	}
	dir, ok := grid.ParseRotation(p.Direction)
	if !ok {
		return nil, fmt.Errorf("unknown direction %q", p.Direction)
	}
	return piece.New(info.Shape, color).Rotate(dir, p.Turns), nil
}

// Apply places p into f at its clipped offset.
func (p Placement) Apply(f *field.Field) (int, int, error) {
	g, err := p.Piece()
	if err != nil {
		return 0, 0, err
	}
	if p.Masked {
		return f.PlaceMasked(p.X, p.Y, g)
	}
	return f.Place(p.X, p.Y, g)
}
