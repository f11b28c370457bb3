package piece

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vovakirdan/blockfall/internal/field"
)

// Source yields uniform integers in [0, n). *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// RandomShape picks one of the seven shapes uniformly.
func RandomShape(r Source) Shape {
	return Shape(r.Intn(int(ShapeCount)))
}

// RandomColor picks one of the four colors uniformly.
func RandomColor(r Source) field.Color {
	return field.Color(r.Intn(int(field.ColorCount)))
}

// RandomTurns picks a clockwise quarter-turn count in [0, 4).
func RandomTurns(r Source) int {
	return r.Intn(4)
}

// Info describes a catalog entry.
type Info struct {
	ID     string
	Shape  Shape
	Width  int
	Height int
	Cells  int
}

// List returns information about every shape, sorted by ID.
func List() []Info {
	infos := make([]Info, 0, ShapeCount)
	for _, s := range Shapes() {
		infos = append(infos, info(s))
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
	return infos
}

// Lookup resolves a shape by its ID, case-insensitively.
func Lookup(id string) (Info, error) {
	s, ok := ParseShape(id)
	if !ok {
		return Info{}, fmt.Errorf("piece: unknown shape %q (want one of %s)", id, ids())
	}
	return info(s), nil
}

func info(s Shape) Info {
	p := patterns[s]
	return Info{
		ID:     s.String(),
		Shape:  s,
		Width:  p.w,
		Height: p.h,
		Cells:  len(p.cells),
	}
}

func ids() string {
	names := make([]string, 0, ShapeCount)
	for _, s := range Shapes() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}
