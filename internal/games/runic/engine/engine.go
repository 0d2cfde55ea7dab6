package engine

import (
	"fmt"
	"iter"
	"math/rand"

	"github.com/google/uuid"
)

// DefaultMaxCycles bounds the number of merge cycles one resolution may run.
const DefaultMaxCycles = 1000

// State is the engine's top-level mode.
type State uint8

const (
	// StateIdle accepts moves.
	StateIdle State = iota
	// StateResolving is between an accepted move and the settled board.
	// Every move is ignored until the engine is idle again.
	StateResolving
)

// String returns the state name.
func (s State) String() string {
	if s == StateResolving {
		return "resolving"
	}
	return "idle"
}

// Flags are transient per-cell markers for presentation. They are set by
// the phase that produced them and are all cleared once the board settles.
type Flags uint8

const (
	FlagSpawned Flags = 1 << iota // dropped in by the last refill
	FlagMerged                    // produced by the last merge
	FlagDoomed                    // matched or discarded, about to disappear
)

// Has reports whether all bits of f are set.
func (fl Flags) Has(f Flags) bool {
	return fl&f == f
}

// Options configure an engine. Zero values select defaults.
type Options struct {
	Size      int
	Scoring   Scoring
	MaxCycles int
	Seed      int64
	// Rand drives generation, identities and shuffles. Built from Seed
	// when nil.
	Rand *rand.Rand
	// Generator supplies new level-1 runes. A RandomGenerator over Rand
	// when nil.
	Generator Generator
	// Shuffle permutes n items through swap. Rand.Shuffle when nil.
	Shuffle func(n int, swap func(i, j int))
}

func (o Options) normalized() (Options, error) {
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Size < MinSize || o.Size > MaxSize {
		return o, fmt.Errorf("engine: board size %d out of range %d..%d", o.Size, MinSize, MaxSize)
	}
	if o.Scoring.isZero() {
		o.Scoring = DefaultScoring()
	}
	if !o.Scoring.HighTier.Valid() {
		o.Scoring.HighTier = DefaultScoring().HighTier
	}
	if o.MaxCycles <= 0 {
		o.MaxCycles = DefaultMaxCycles
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(o.Seed))
	}
	if o.Generator == nil {
		o.Generator = NewRandomGenerator(o.Rand)
	}
	if o.Shuffle == nil {
		o.Shuffle = o.Rand.Shuffle
	}
	return o, nil
}

type stepKind uint8

const (
	stepGravity stepKind = iota
	stepDetect
	stepMerge
)

// Engine owns one board and its session counters. It is not safe for
// concurrent use.
type Engine struct {
	opts Options

	grid  *Grid
	flags []Flags
	state State
	next  stepKind
	cycle int

	matched []Cluster
	pending []Event

	score      int
	moves      int
	forged     Ledger
	collection Ledger
}

// New creates an engine with a freshly generated board that holds no
// matches.
func New(opts Options) (*Engine, error) {
	o, err := opts.normalized()
	if err != nil {
		return nil, err
	}
	e := &Engine{opts: o}
	e.fill()
	return e, nil
}

// NewFromRunes creates an engine over a fixed board given in index order.
// Runes without an ID receive one. When the board already contains matches
// the engine starts out resolving, as if a move had just been made.
func NewFromRunes(opts Options, runes []Rune) (*Engine, error) {
	if opts.Size == 0 {
		opts.Size = isqrt(len(runes))
	}
	o, err := opts.normalized()
	if err != nil {
		return nil, err
	}
	if len(runes) != o.Size*o.Size {
		return nil, fmt.Errorf("engine: got %d runes for a %dx%d board", len(runes), o.Size, o.Size)
	}

	e := &Engine{opts: o, grid: NewGrid(o.Size), flags: make([]Flags, o.Size*o.Size)}
	for i, r := range runes {
		if !r.Level.Valid() || int(r.Element) >= ElementCount {
			return nil, fmt.Errorf("engine: invalid rune %v at index %d", r, i)
		}
		if r.ID == "" {
			r.ID = e.newID()
		}
		e.grid.Set(i, r)
		e.collection.Add(r.Key())
	}
	if len(Detect(e.grid)) > 0 {
		e.begin()
	}
	return e, nil
}

// NewFromGrid is NewFromRunes over a parsed grid.
func NewFromGrid(opts Options, g *Grid) (*Engine, error) {
	opts.Size = g.Size()
	return NewFromRunes(opts, g.Runes())
}

func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// fill generates a complete board with no pre-existing runs. A candidate
// that would complete a run with its two left or two upper neighbours is
// redrawn; with five elements at most two are ever excluded.
func (e *Engine) fill() {
	n := e.opts.Size
	e.grid = NewGrid(n)
	e.flags = make([]Flags, n*n)

	for idx := 0; idx < n*n; idx++ {
		r := e.opts.Generator.Generate()
		for attempt := 0; attempt < 64 && e.completesRun(idx, r); attempt++ {
			r = e.opts.Generator.Generate()
		}
		e.grid.Set(idx, r)
		e.collection.Add(r.Key())
	}
}

func (e *Engine) completesRun(idx int, r Rune) bool {
	p := e.grid.Coord(idx)
	left := e.grid.AtXY(p.X-1, p.Y).SameValue(r) && e.grid.AtXY(p.X-2, p.Y).SameValue(r)
	up := e.grid.AtXY(p.X, p.Y-1).SameValue(r) && e.grid.AtXY(p.X, p.Y-2).SameValue(r)
	return left || up
}

func (e *Engine) newID() string {
	id, err := uuid.NewRandomFromReader(e.opts.Rand)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// begin switches to resolving, starting with gravity.
func (e *Engine) begin() {
	e.state = StateResolving
	e.next = stepGravity
	e.cycle = 0
	e.matched = nil
}

// Busy reports whether a resolution is in progress.
func (e *Engine) Busy() bool {
	return e.state == StateResolving
}

// State returns the current mode.
func (e *Engine) State() State {
	return e.state
}

// Size returns the board dimension N.
func (e *Engine) Size() int {
	return e.opts.Size
}

// Score returns the session score.
func (e *Engine) Score() int {
	return e.score
}

// Moves returns the number of accepted moves this session.
func (e *Engine) Moves() int {
	return e.moves
}

// Scoring returns the active point table.
func (e *Engine) Scoring() Scoring {
	return e.opts.Scoring
}

// Grid returns a copy of the board.
func (e *Engine) Grid() *Grid {
	return e.grid.Clone()
}

// At returns the rune at index.
func (e *Engine) At(index int) Rune {
	return e.grid.At(index)
}

// Forged returns the session upgrade ledger.
func (e *Engine) Forged() Ledger {
	return e.forged
}

// Collection returns the ever-produced ledger.
func (e *Engine) Collection() Ledger {
	return e.collection
}

// CanDiscard reports whether Discard(index) would be accepted.
func (e *Engine) CanDiscard(index int) bool {
	return !e.Busy() && e.grid.IsBoundary(index) && !e.grid.At(index).IsZero()
}

// Hints lists the swaps that would create a match. Empty while busy.
func (e *Engine) Hints() []Move {
	if e.Busy() {
		return nil
	}
	return FindMoves(e.grid.Clone())
}

// Swap exchanges two orthogonally adjacent runes and starts resolution.
// The swap is kept even when it produces no match.
func (e *Engine) Swap(from, to int) bool {
	if e.Busy() || !e.grid.Adjacent(from, to) {
		return false
	}
	if e.grid.At(from).IsZero() || e.grid.At(to).IsZero() {
		return false
	}

	e.grid.Swap(from, to)
	e.moves++
	e.pending = append(e.pending,
		Event{Kind: EventSwapped, Index: to, Other: from, Rune: e.grid.At(to)},
		Event{Kind: EventSwapped, Index: from, Other: to, Rune: e.grid.At(from)},
	)
	e.begin()
	return true
}

// Discard drops a boundary rune into the void. Discarding a top-level rune
// awards the discard bonus.
func (e *Engine) Discard(index int) bool {
	if !e.CanDiscard(index) {
		return false
	}

	r := e.grid.At(index)
	e.grid.Clear(index)
	if r.Level >= MaxLevel {
		e.score += e.opts.Scoring.DiscardBonus
	}
	e.moves++
	e.flags[index] |= FlagDoomed
	e.pending = append(e.pending, Event{Kind: EventDiscarded, Index: index, Other: index, Rune: r})
	e.begin()
	return true
}

// Reshuffle permutes all rune values across the board and starts
// resolution. Runes keep their identities.
func (e *Engine) Reshuffle() bool {
	if e.Busy() {
		return false
	}

	runes := e.grid.Runes()
	e.opts.Shuffle(len(runes), func(i, j int) {
		runes[i], runes[j] = runes[j], runes[i]
	})
	for i, r := range runes {
		e.grid.Set(i, r)
	}
	e.moves++
	e.pending = append(e.pending, Event{Kind: EventShuffled, Index: -1, Other: -1})
	e.begin()
	return true
}

// Reset starts a new session: score, moves and both ledgers are cleared
// and a new board is generated.
func (e *Engine) Reset() bool {
	if e.Busy() {
		return false
	}

	e.score = 0
	e.moves = 0
	e.forged = Ledger{}
	e.collection = Ledger{}
	e.pending = nil
	e.fill()
	e.state = StateIdle
	return true
}

// Step advances resolution by one phase. It returns false when the engine
// is idle. Step panics if resolution exceeds the configured cycle bound,
// which means the board cannot settle.
func (e *Engine) Step() (Report, bool) {
	if e.state != StateResolving {
		return Report{}, false
	}

	rep := Report{Cycle: e.cycle, Events: e.pending}
	e.pending = nil

	switch e.next {
	case stepGravity:
		e.clearFlags()
		if e.grid.Full() {
			e.detect(&rep)
			break
		}
		rep.Phase = PhaseGravity
		spawned := applyGravity(e.grid, e.opts.Generator)
		for _, ev := range spawned {
			if ev.Kind == EventSpawned {
				e.flags[ev.Index] |= FlagSpawned
				e.collection.Add(ev.Rune.Key())
			}
		}
		rep.Events = append(rep.Events, spawned...)
		e.next = stepDetect

	case stepDetect:
		e.detect(&rep)

	case stepMerge:
		e.clearFlags()
		rep.Phase = PhaseMerged
		before := e.grid.Clone()
		for _, c := range e.matched {
			e.resolveCluster(c, before, &rep)
		}
		rep.Clusters = e.matched
		e.matched = nil
		e.score += rep.ScoreDelta
		e.cycle++
		if e.cycle > e.opts.MaxCycles {
			panic(fmt.Sprintf("engine: board did not settle after %d cycles", e.opts.MaxCycles))
		}
		e.next = stepGravity
	}
	return rep, true
}

func (e *Engine) detect(rep *Report) {
	clusters := Detect(e.grid)
	if len(clusters) == 0 {
		e.clearFlags()
		e.state = StateIdle
		rep.Phase = PhaseSettled
		return
	}

	for _, c := range clusters {
		for _, idx := range c.Indices {
			e.flags[idx] |= FlagDoomed
		}
	}
	rep.Phase = PhaseMatched
	rep.Clusters = clusters
	e.matched = clusters
	e.next = stepMerge
}

func (e *Engine) clearFlags() {
	clear(e.flags)
}

// Phases yields each resolution step until the board settles.
func (e *Engine) Phases() iter.Seq[Report] {
	return func(yield func(Report) bool) {
		for {
			rep, ok := e.Step()
			if !ok || !yield(rep) {
				return
			}
		}
	}
}

// Resolve runs resolution to completion and returns every step.
func (e *Engine) Resolve() []Report {
	var reps []Report
	for rep := range e.Phases() {
		reps = append(reps, rep)
	}
	return reps
}
