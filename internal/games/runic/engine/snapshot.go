package engine

// Snapshot is the observable state of an engine at one instant.
type Snapshot struct {
	Size       int
	Cells      []Cell
	Flags      []Flags
	Score      int
	Moves      int
	Forged     Ledger
	Collection Ledger
	Busy       bool
	State      State
}

// Snapshot captures the current engine state. The returned slices are
// copies.
func (e *Engine) Snapshot() Snapshot {
	flags := make([]Flags, len(e.flags))
	copy(flags, e.flags)
	return Snapshot{
		Size:       e.opts.Size,
		Cells:      e.grid.Cells(),
		Flags:      flags,
		Score:      e.score,
		Moves:      e.moves,
		Forged:     e.forged,
		Collection: e.collection,
		Busy:       e.Busy(),
		State:      e.state,
	}
}

// Flag returns the transient flags of the cell at index.
func (s Snapshot) Flag(index int) Flags {
	if index < 0 || index >= len(s.Flags) {
		return 0
	}
	return s.Flags[index]
}
