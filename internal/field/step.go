package field

// StepKind identifies what a single tick did.
type StepKind uint8

const (
	StepNone    StepKind = iota // nothing changed; the field is settled
	StepFall                    // the active piece moved down one row
	StepLock                    // the active piece was blocked by debris and locked
	StepCompact                 // debris sank one row into a gap
	StepClear                   // one or more full rows were emptied
)

func (k StepKind) String() string {
	switch k {
	case StepNone:
		return "none"
	case StepFall:
		return "fall"
	case StepLock:
		return "lock"
	case StepCompact:
		return "compact"
	case StepClear:
		return "clear"
	default:
		return "unknown"
	}
}

// StepResult describes the outcome of one tick.
type StepResult struct {
	Kind    StepKind
	Changed bool
	Cleared []int // rows emptied by a clear, top to bottom
}

// Tick advances the automaton by one step and reports whether anything
// changed. False means the field is settled.
func (f *Field) Tick() bool {
	return f.Step().Changed
}

// Step is Tick with details. A fall step runs first; only when it changes
// nothing does a clear step run.
func (f *Field) Step() StepResult {
	if kind := f.fall(); kind != StepNone {
		return StepResult{Kind: kind, Changed: true}
	}
	if cleared := f.clearFull(); len(cleared) > 0 {
		return StepResult{Kind: StepClear, Changed: true, Cleared: cleared}
	}
	return StepResult{Kind: StepNone}
}

// fall moves or locks the active piece, then falls back to compaction when
// no active block moved.
//
// The active blocks move as one rigid body. An active block on the bottom
// row locks the whole piece without counting as a change, because the floor
// always supports. Otherwise the piece descends when every active block has
// an empty or active cell beneath it, and locks where it stands when any
// block rests on debris.
func (f *Field) fall() StepKind {
	if f.Height() == 0 {
		return StepNone
	}
	if f.ActiveCount() > 0 {
		switch {
		case f.activeOnFloor():
			f.lockActive()
		case f.canDescend():
			f.descend()
			return StepFall
		default:
			f.lockActive()
			return StepLock
		}
	}
	if f.compact() {
		return StepCompact
	}
	return StepNone
}

func (f *Field) activeOnFloor() bool {
	bottom := f.Height() - 1
	for x := 0; x < f.Width(); x++ {
		if isActive(f.At(x, bottom)) {
			return true
		}
	}
	return false
}

// canDescend assumes no active block is on the bottom row.
func (f *Field) canDescend() bool {
	for y := f.Height() - 2; y >= 0; y-- {
		for x := 0; x < f.Width(); x++ {
			if !isActive(f.At(x, y)) {
				continue
			}
			below := f.At(x, y+1)
			if below.Filled && !below.Value.Active {
				return false
			}
		}
	}
	return true
}

// descend shifts every active block down one row. Rows are visited bottom
// up so a block always moves into a cell its lower neighbour already left.
func (f *Field) descend() {
	for y := f.Height() - 2; y >= 0; y-- {
		for x := 0; x < f.Width(); x++ {
			c := f.At(x, y)
			if !isActive(c) {
				continue
			}
			f.Put(x, y+1, c)
			f.Put(x, y, Cell{})
		}
	}
}

func (f *Field) lockActive() {
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			c := f.At(x, y)
			if isActive(c) {
				c.Value.Active = false
				f.Put(x, y, c)
			}
		}
	}
}

// compact makes one bottom-up pass in which every empty row pulls the row
// above it down by one. Everything above a gap therefore sinks exactly one
// row per call. It reports whether any occupied row moved.
func (f *Field) compact() bool {
	moved := false
	for y := f.Height() - 1; y > 0; y-- {
		if !f.rowEmpty(y) || f.rowEmpty(y-1) {
			continue
		}
		for x := 0; x < f.Width(); x++ {
			f.Put(x, y, f.At(x, y-1))
			f.Put(x, y-1, Cell{})
		}
		moved = true
	}
	return moved
}

// clearFull empties every full row in place. The gaps close through later
// compaction.
func (f *Field) clearFull() []int {
	rows := f.FullRows()
	for _, y := range rows {
		for x := 0; x < f.Width(); x++ {
			f.Put(x, y, Cell{})
		}
	}
	return rows
}
