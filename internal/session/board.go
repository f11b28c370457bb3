package session

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/field"
)

// Board runs several independent sessions side by side. Panel i is seeded
// with seed+i; no field storage is shared between panels.
type Board struct {
	sessions []*Session
}

// NewBoard creates n sessions. Each logs with a "panel" key.
func NewBoard(n int, opts Options, seed int64, logger *log.Logger) *Board {
	b := &Board{sessions: make([]*Session, 0, n)}
	for i := 0; i < n; i++ {
		var l *log.Logger
		if logger != nil {
			l = logger.With("panel", i)
		}
		b.sessions = append(b.sessions, New(opts, seed+int64(i), l))
	}
	return b
}

// Sessions returns the panels in order.
func (b *Board) Sessions() []*Session {
	return b.sessions
}

// Fields returns a copy of every panel's field.
func (b *Board) Fields() []*field.Field {
	out := make([]*field.Field, len(b.sessions))
	for i, s := range b.sessions {
		out[i] = s.Field()
	}
	return out
}

// Advance moves every unfinished panel forward by one unit of work. It
// returns false when all panels are done. Overflow only ends the affected
// panel.
func (b *Board) Advance() (bool, error) {
	active := false
	for i, s := range b.sessions {
		more, err := s.Advance()
		if err != nil && !errors.Is(err, ErrOverflow) {
			return false, fmt.Errorf("panel %d: %w", i, err)
		}
		active = active || more
	}
	return active, nil
}

// Run advances until every panel is done, calling observe after each round.
func (b *Board) Run(observe func(*Board)) ([]Stats, error) {
	for {
		more, err := b.Advance()
		if err != nil {
			return b.Stats(), err
		}
		if observe != nil {
			observe(b)
		}
		if !more {
			return b.Stats(), nil
		}
	}
}

// Stats returns the totals of every panel.
func (b *Board) Stats() []Stats {
	out := make([]Stats, len(b.sessions))
	for i, s := range b.sessions {
		out[i] = s.Stats()
	}
	return out
}
