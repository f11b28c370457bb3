package field

// Phase is the state of the automaton between ticks.
type Phase uint8

const (
	// PhaseSettled: the next tick changes nothing. A new piece may be placed.
	PhaseSettled Phase = iota
	// PhaseFalling: the active piece can still move, or debris is sinking.
	PhaseFalling
	// PhaseLocking: the active piece is obstructed and locks on the next tick.
	PhaseLocking
	// PhaseClearing: at least one full row is waiting to be emptied.
	PhaseClearing
)

func (p Phase) String() string {
	switch p {
	case PhaseSettled:
		return "settled"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseClearing:
		return "clearing"
	default:
		return "unknown"
	}
}

// Phase reports what the next tick would do, without changing the field.
func (f *Field) Phase() Phase {
	switch f.Clone().Step().Kind {
	case StepFall, StepCompact:
		return PhaseFalling
	case StepLock:
		return PhaseLocking
	case StepClear:
		return PhaseClearing
	default:
		return PhaseSettled
	}
}
