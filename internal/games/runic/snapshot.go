package runic

import "github.com/vovakirdan/runic/internal/games/runic/engine"

// Snapshot captures the adapter and engine state for determinism tests.
type Snapshot struct {
	Tick     uint64
	ID       string
	Cursor   int
	Selected int
	Wait     int
	Paused   bool
	Ended    bool
	Ledger   bool
	Board    string
	Engine   engine.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		ID:       g.id,
		Cursor:   g.cursor,
		Selected: g.selected,
		Wait:     g.wait,
		Paused:   g.paused,
		Ended:    g.ended,
		Ledger:   g.showLedger,
	}
	if g.eng != nil {
		s.Board = g.eng.Grid().String()
		s.Engine = g.eng.Snapshot()
	}
	return s
}
