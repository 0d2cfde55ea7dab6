package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TicksFor converts a duration in milliseconds to a tick count at the
// configured rate. Any positive duration takes at least one tick.
func (c RuntimeConfig) TicksFor(ms int) int {
	if ms <= 0 {
		return 0
	}
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	ticks := ms * rate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Moves    int  // Player moves spent in the current run
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
	Busy     bool // Whether the game is animating and ignoring moves
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue // Sound cues raised during this tick
}

// Cue names a short audio effect the platform may play.
type Cue uint8

const (
	CueNone Cue = iota
	CueMove
	CueMatch
	CueMerge
	CueDiscard
	CueInvalid
	CueLevelUp
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueMove:
		return "move"
	case CueMatch:
		return "match"
	case CueMerge:
		return "merge"
	case CueDiscard:
		return "discard"
	case CueInvalid:
		return "invalid"
	case CueLevelUp:
		return "levelup"
	default:
		return "none"
	}
}
