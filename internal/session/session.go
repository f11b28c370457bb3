// Package session drives a field with randomly spawned pieces: spawn,
// tick until settled, repeat until the piece budget runs out or a new piece
// no longer fits.
package session

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/field"
	"github.com/vovakirdan/blockfall/internal/piece"
)

// ErrOverflow is returned when a freshly spawned piece would land on
// occupied cells.
var ErrOverflow = errors.New("field overflow")

// Options configure a session.
type Options struct {
	Width, Height  int
	SpawnX         int
	SpawnRow       int
	RandomRotation bool
	RandomColumn   bool
	Masked         bool // place only the occupied cells of a piece
	Pieces         int  // 0 means no limit
	MaxTicks       int  // per piece
}

// OptionsFrom maps the CLI configuration onto session options.
func OptionsFrom(cfg config.Config) Options {
	return Options{
		Width:          cfg.Field.Width,
		Height:         cfg.Field.Height,
		SpawnX:         cfg.Spawn.X,
		SpawnRow:       cfg.Spawn.Row,
		RandomRotation: cfg.Spawn.RandomRotation,
		RandomColumn:   cfg.Spawn.RandomColumn,
		Masked:         cfg.Simulation.MaskedPlacement,
		Pieces:         cfg.Simulation.Pieces,
		MaxTicks:       cfg.Simulation.MaxTicks,
	}
}

// Spawn records a placed piece.
type Spawn struct {
	Shape piece.Shape
	Color field.Color
	Turns int
	X, Y  int // effective offset after clipping
}

// Stats summarises a session.
type Stats struct {
	Pieces     int
	Ticks      int
	Cleared    int
	Height     int
	Overflowed bool
}

// Session owns one field and the RNG that feeds it.
type Session struct {
	opts   Options
	rng    *rand.Rand
	field  *field.Field
	logger *log.Logger

	busy       bool // a piece is still settling
	done       bool
	pieceTicks int
	stats      Stats
}

// New creates a session with its own seeded RNG. A nil logger discards
// output.
func New(opts Options, seed int64, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.MaxTicks <= 0 {
		opts.MaxTicks = config.Default().Simulation.MaxTicks
	}
	return &Session{
		opts:   opts,
		rng:    rand.New(rand.NewSource(seed)),
		field:  field.New(opts.Width, opts.Height),
		logger: logger,
	}
}

// Field returns a copy of the current field.
func (s *Session) Field() *field.Field {
	return s.field.Clone()
}

// Stats returns the running totals.
func (s *Session) Stats() Stats {
	st := s.stats
	st.Height = s.field.ContentHeight()
	return st
}

// Done reports whether the session has finished.
func (s *Session) Done() bool {
	return s.done
}

// Spawn places a new random piece. The shape, color, rotation and column
// are drawn from the session RNG in that order.
func (s *Session) Spawn() (Spawn, error) {
	sp := Spawn{
		Shape: piece.RandomShape(s.rng),
		Color: piece.RandomColor(s.rng),
	}
	if s.opts.RandomRotation {
		sp.Turns = piece.RandomTurns(s.rng)
	}
	p := piece.Rotated(sp.Shape, sp.Color, sp.Turns)

	x := s.opts.SpawnX
	if s.opts.RandomColumn {
		x = s.rng.Intn(max(1, s.field.Width()-p.Width()+1))
	}

	if s.field.Overlaps(x, s.opts.SpawnRow, p) {
		s.done = true
		s.stats.Overflowed = true
		s.logger.Info("overflow", "shape", sp.Shape, "pieces", s.stats.Pieces, "height", s.field.ContentHeight())
		return sp, fmt.Errorf("session: spawn %s at (%d,%d): %w", sp.Shape, x, s.opts.SpawnRow, ErrOverflow)
	}

	var err error
	if s.opts.Masked {
		sp.X, sp.Y, err = s.field.PlaceMasked(x, s.opts.SpawnRow, p)
	} else {
		sp.X, sp.Y, err = s.field.Place(x, s.opts.SpawnRow, p)
	}
	if err != nil {
		s.done = true
		return sp, fmt.Errorf("session: spawn: %w", err)
	}

	s.stats.Pieces++
	s.busy = true
	s.pieceTicks = 0
	s.logger.Debug("spawn", "shape", sp.Shape, "color", sp.Color, "turns", sp.Turns, "x", sp.X, "y", sp.Y)
	return sp, nil
}

// Step runs one automaton step and updates the totals.
func (s *Session) Step() field.StepResult {
	res := s.field.Step()
	if !res.Changed {
		if s.busy {
			s.logger.Debug("settled", "ticks", s.pieceTicks, "height", s.field.ContentHeight())
		}
		s.busy = false
		return res
	}

	s.stats.Ticks++
	s.pieceTicks++
	switch res.Kind {
	case field.StepLock:
		s.logger.Debug("lock", "tick", s.stats.Ticks)
	case field.StepClear:
		s.stats.Cleared += len(res.Cleared)
		s.logger.Info("clear", "rows", res.Cleared, "total", s.stats.Cleared)
	}
	return res
}

// Advance performs one unit of work: a spawn when the field is settled,
// otherwise a single step. It returns false once the session has finished.
// Overflow ends the session and is reported as ErrOverflow.
func (s *Session) Advance() (bool, error) {
	if s.done {
		return false, nil
	}
	if !s.busy {
		if s.opts.Pieces > 0 && s.stats.Pieces >= s.opts.Pieces {
			s.done = true
			return false, nil
		}
		if _, err := s.Spawn(); err != nil {
			return false, err
		}
		return true, nil
	}

	s.Step()
	if s.busy && s.pieceTicks >= s.opts.MaxTicks {
		s.done = true
		return false, fmt.Errorf("session: piece %d: %d ticks: %w", s.stats.Pieces, s.pieceTicks, field.ErrUnsettled)
	}
	return true, nil
}

// Drop spawns one piece and ticks until the field settles.
func (s *Session) Drop() (Spawn, error) {
	sp, err := s.Spawn()
	if err != nil {
		return sp, err
	}
	for s.busy {
		s.Step()
		if s.busy && s.pieceTicks >= s.opts.MaxTicks {
			s.done = true
			return sp, fmt.Errorf("session: drop: %d ticks: %w", s.pieceTicks, field.ErrUnsettled)
		}
	}
	return sp, nil
}

// Run advances until the session finishes, calling observe after every
// unit of work when it is not nil. Overflow is a normal end and is not
// returned as an error.
func (s *Session) Run(observe func(*Session)) (Stats, error) {
	for {
		more, err := s.Advance()
		if err != nil && !errors.Is(err, ErrOverflow) {
			return s.Stats(), err
		}
		if observe != nil && (more || err != nil) {
			observe(s)
		}
		if !more {
			return s.Stats(), nil
		}
	}
}
