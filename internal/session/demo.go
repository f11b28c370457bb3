package session

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/field"
	"github.com/vovakirdan/blockfall/internal/piece"
)

// Demo layout: a 10x20 field, a random piece near the top left and a
// two-row slab of debris floating across the middle.
const (
	DemoWidth  = 10
	DemoHeight = 20
	demoPieceX = 3
	demoPieceY = 3
	demoSlabY  = 10
)

// Demo builds the demonstration field for seed. The slab is stamped after
// the piece, so the piece falls onto it, then everything sinks, the slab
// clears and the piece settles on the floor.
func Demo(seed int64) (*field.Field, Spawn, error) {
	rng := rand.New(rand.NewSource(seed))
	f := field.New(DemoWidth, DemoHeight)

	sp := Spawn{
		Color: piece.RandomColor(rng),
		Shape: piece.RandomShape(rng),
		Turns: piece.RandomTurns(rng),
	}
	x, y, err := f.Place(demoPieceX, demoPieceY, piece.Rotated(sp.Shape, sp.Color, sp.Turns))
	if err != nil {
		return nil, sp, err
	}
	sp.X, sp.Y = x, y

	if err := f.CopyIn(0, demoSlabY, field.Debris(DemoWidth, 2, sp.Color)); err != nil {
		return nil, sp, err
	}
	return f, sp, nil
}
