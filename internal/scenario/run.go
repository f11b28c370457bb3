package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/blockfall/internal/field"
)

// ErrExpectation is returned by Check when the final field differs from
// the scenario's expectations.
var ErrExpectation = errors.New("expectation failed")

// Tick is one recorded automaton step.
type Tick struct {
	Placement int // index into Scenario.Placements
	Result    field.StepResult
	Height    int // content height after the step
}

// Trace is the record of a scenario run.
type Trace struct {
	Name    string
	Offsets [][2]int // effective offset of each placement
	Ticks   []Tick
	Final   *field.Field
}

// Cleared returns the total number of rows cleared during the run.
func (t Trace) Cleared() int {
	n := 0
	for _, tk := range t.Ticks {
		n += len(tk.Result.Cleared)
	}
	return n
}

// Run builds the field and applies every placement in order, ticking each
// one until the field settles. Unless settle_start is false the starting
// field is settled first, recorded as placement -1. The final settled tick
// of each placement is not recorded.
func Run(s *Scenario) (Trace, error) {
	f, err := s.Build()
	if err != nil {
		return Trace{}, err
	}
	tr := Trace{Name: s.Name, Final: f}

	if s.settlesStart() {
		if err := settle(s, f, &tr, -1); err != nil {
			return tr, err
		}
	}
	for i, p := range s.Placements {
		x, y, err := p.Apply(f)
		if err != nil {
			return tr, fmt.Errorf("scenario %q: placement %d: %w", s.Name, i, err)
		}
		tr.Offsets = append(tr.Offsets, [2]int{x, y})
		if err := settle(s, f, &tr, i); err != nil {
			return tr, err
		}
	}
	return tr, nil
}

func settle(s *Scenario, f *field.Field, tr *Trace, placement int) error {
	for n := 0; n < s.MaxTicks; n++ {
		res := f.Step()
		if !res.Changed {
			return nil
		}
		tr.Ticks = append(tr.Ticks, Tick{
			Placement: placement,
			Result:    res,
			Height:    f.ContentHeight(),
		})
	}
	return fmt.Errorf("scenario %q: placement %d: %d ticks: %w", s.Name, placement, s.MaxTicks, field.ErrUnsettled)
}

// Check compares the final field of tr with the scenario's expectations.
// A scenario without expectations always passes.
func Check(s *Scenario, tr Trace) error {
	if s.Expect == nil || tr.Final == nil {
		return nil
	}
	var errs []error
	if want := s.Expect.ContentHeight; want != nil && tr.Final.ContentHeight() != *want {
		errs = append(errs, fmt.Errorf("content height %d, want %d", tr.Final.ContentHeight(), *want))
	}
	if want := s.Expect.Filled; want != nil && tr.Final.Count() != *want {
		errs = append(errs, fmt.Errorf("filled cells %d, want %d", tr.Final.Count(), *want))
	}
	if len(s.Expect.Rows) > 0 {
		want := field.New(s.Size.W, s.Size.H)
		if err := stampRows(want, s.Expect.Rows); err != nil {
			errs = append(errs, fmt.Errorf("expected rows: %w", err))
		} else if got := lockedLetters(tr.Final); got != lockedLetters(want) {
			errs = append(errs, fmt.Errorf("final field:\n%swant:\n%s", got, lockedLetters(want)))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("scenario %q: %w: %w", s.Name, ErrExpectation, errors.Join(errs...))
	}
	return nil
}

// lockedLetters renders f in the scenario row alphabet, ignoring activity.
func lockedLetters(f *field.Field) string {
	var sb strings.Builder
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			c := f.At(x, y)
			if c.Filled {
				sb.WriteRune(c.Value.Color.Char())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
