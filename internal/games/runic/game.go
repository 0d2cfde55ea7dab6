// Package runic adapts the rune engine to the terminal platform: it owns the
// cursor and selection, paces the engine's resolution phases over ticks,
// raises sound cues, and draws the board.
package runic

import (
	"sync"

	"github.com/vovakirdan/runic/internal/config"
	"github.com/vovakirdan/runic/internal/core"
	"github.com/vovakirdan/runic/internal/games/runic/engine"
	"github.com/vovakirdan/runic/internal/games/runic/presets"
	"github.com/vovakirdan/runic/internal/registry"
)

// Variant IDs.
const (
	IDStandard = "runic"
	IDLarge    = "runic_large"
)

// LargeSize is the board dimension of the large variant.
const LargeSize = 8

// hintMS is how long a hint stays highlighted.
const hintMS = 2000

// Package-level settings picked up by games created afterwards.
var (
	settingsMu     sync.RWMutex
	settings       = config.DefaultRunicConfig()
	selectedPreset *presets.Preset
)

// SetConfig sets the configuration used by new games.
func SetConfig(cfg config.RunicConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

// SetPreset makes new standard games start from a fixed board. Nil clears it.
func SetPreset(p *presets.Preset) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	selectedPreset = p
}

func currentSettings() (config.RunicConfig, *presets.Preset) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings, selectedPreset
}

func init() {
	registry.Register(IDStandard, func() registry.Game {
		return New()
	})
	registry.Register(IDLarge, func() registry.Game {
		return NewLarge()
	})
}

// Game is a single-player Runic Synthesis session.
type Game struct {
	id     string
	title  string
	size   int // fixed board size; 0 means use the config
	cfg    config.RunicConfig
	preset *presets.Preset

	rt   core.RuntimeConfig
	eng  *engine.Engine
	tick uint64

	cursor   int
	selected int // -1 when nothing is selected

	wait      int // ticks left before the next engine step
	hint      engine.Move
	hintTicks int
	hintIndex int
	stuck     bool

	last     engine.Report
	message  string
	msgTicks int

	showLedger bool
	paused     bool
	ended      bool
	tooSmall   bool
	failure    string // engine construction error, shown instead of the board
}

// New creates a standard game sized by the current configuration.
func New() *Game {
	cfg, preset := currentSettings()
	return &Game{
		id:       IDStandard,
		title:    "Runic Synthesis",
		cfg:      cfg,
		preset:   preset,
		selected: -1,
	}
}

// NewLarge creates the 8x8 variant. Presets do not apply to it.
func NewLarge() *Game {
	cfg, _ := currentSettings()
	return &Game{
		id:       IDLarge,
		title:    "Runic Synthesis (8x8)",
		size:     LargeSize,
		cfg:      cfg,
		selected: -1,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// boardSize returns the size new engines are built with.
func (g *Game) boardSize() int {
	if g.size > 0 {
		return g.size
	}
	return g.cfg.Board.Size
}

// Reset starts a new run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.tick = 0
	g.cursor = 0
	g.selected = -1
	g.wait = 0
	g.hintTicks = 0
	g.hintIndex = 0
	g.last = engine.Report{}
	g.message = ""
	g.msgTicks = 0
	g.showLedger = false
	g.paused = false
	g.ended = false
	g.failure = ""

	eng, err := g.newEngine(cfg.Seed)
	if err != nil {
		g.eng = nil
		g.failure = err.Error()
		return
	}
	g.eng = eng
	g.cursor = g.eng.Size()*(g.eng.Size()/2) + g.eng.Size()/2
	g.stuck = len(g.eng.Hints()) == 0 && !g.eng.Busy()
	g.checkScreenSize()
}

func (g *Game) newEngine(seed int64) (*engine.Engine, error) {
	opts := EngineOptions(g.cfg, g.boardSize(), seed)
	if g.preset == nil {
		return engine.New(opts)
	}
	grid, err := g.preset.Grid()
	if err != nil {
		return nil, err
	}
	return engine.NewFromGrid(opts, grid)
}

// EngineOptions converts configuration into engine options.
func EngineOptions(cfg config.RunicConfig, size int, seed int64) engine.Options {
	var s engine.Scoring
	for i, p := range cfg.Scoring.LevelPoints {
		if i+1 > int(engine.MaxLevel) {
			break
		}
		s.Points[i+1] = p
	}
	s.BlastBonus = cfg.Scoring.BlastBonus
	s.DiscardBonus = cfg.Scoring.DiscardBonus
	s.HighTier = engine.Level(cfg.Scoring.HighTierLevel)

	return engine.Options{
		Size:      size,
		Scoring:   s,
		MaxCycles: cfg.Resolution.MaxCycles,
		Seed:      seed,
	}
}

// ApplyConfig takes pacing changes immediately. Board and scoring changes
// apply from the next run.
func (g *Game) ApplyConfig(cfg config.RunicConfig) {
	g.cfg = cfg
}

// Resize adapts to a new terminal size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.rt.ScreenW = w
	g.rt.ScreenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	if g.eng == nil {
		g.tooSmall = false
		return
	}
	_, ok := g.layout()
	g.tooSmall = !ok
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var cues []core.Cue

	if g.eng == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.ended {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.ended {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		// First press ends the run; the platform restarts on the next one.
		g.ended = true
		g.selected = -1
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionLedger) {
		g.showLedger = !g.showLedger
	}
	if g.showLedger {
		if in.Has(core.ActionBack) {
			g.showLedger = false
		}
	} else {
		cues = append(cues, g.handleInput(in)...)
	}

	cues = append(cues, g.advance()...)
	g.tickTimers()

	return core.StepResult{State: g.State(), Cues: cues}
}

// handleInput applies cursor movement and player actions.
func (g *Game) handleInput(in core.InputFrame) []core.Cue {
	n := g.eng.Size()
	p := engine.Coord{X: g.cursor % n, Y: g.cursor / n}
	switch {
	case in.Has(core.ActionUp):
		p.Y--
	case in.Has(core.ActionDown):
		p.Y++
	case in.Has(core.ActionLeft):
		p.X--
	case in.Has(core.ActionRight):
		p.X++
	}
	p.X = core.Clamp(p.X, 0, n-1)
	p.Y = core.Clamp(p.Y, 0, n-1)
	g.cursor = p.Y*n + p.X

	if in.Has(core.ActionBack) {
		g.selected = -1
	}

	// Moves during resolution are dropped without feedback.
	if g.eng.Busy() {
		return nil
	}

	switch {
	case in.Has(core.ActionConfirm):
		return g.confirm()
	case in.Has(core.ActionDiscard):
		return g.discard()
	case in.Has(core.ActionShuffle):
		return g.shuffle()
	case in.Has(core.ActionHint):
		return g.showHint()
	}
	return nil
}

func (g *Game) confirm() []core.Cue {
	switch {
	case g.selected < 0:
		g.selected = g.cursor
		return nil
	case g.selected == g.cursor:
		g.selected = -1
		return nil
	}

	grid := g.eng.Grid()
	if !grid.Adjacent(g.selected, g.cursor) {
		g.selected = g.cursor
		return nil
	}

	from := g.selected
	g.selected = -1
	if !g.eng.Swap(from, g.cursor) {
		return []core.Cue{core.CueInvalid}
	}
	g.accepted(0)
	return []core.Cue{core.CueMove}
}

func (g *Game) discard() []core.Cue {
	if !g.eng.Discard(g.cursor) {
		g.flash("Only edge runes can be cast into the void")
		return []core.Cue{core.CueInvalid}
	}
	g.selected = -1
	g.accepted(g.cfg.Pacing.DiscardMS)
	return []core.Cue{core.CueDiscard}
}

func (g *Game) shuffle() []core.Cue {
	if !g.eng.Reshuffle() {
		return []core.Cue{core.CueInvalid}
	}
	g.selected = -1
	g.accepted(g.cfg.Pacing.ShuffleMS)
	return []core.Cue{core.CueMove}
}

func (g *Game) showHint() []core.Cue {
	moves := g.eng.Hints()
	if len(moves) == 0 {
		g.flash("No swaps left: press F to reshuffle")
		return []core.Cue{core.CueInvalid}
	}
	g.hint = moves[g.hintIndex%len(moves)]
	g.hintIndex++
	g.hintTicks = g.rt.TicksFor(hintMS)
	return nil
}

// accepted schedules the first resolution step after delayMS.
func (g *Game) accepted(delayMS int) {
	g.wait = g.rt.TicksFor(delayMS)
	g.hintTicks = 0
	g.stuck = false
}

// advance runs at most one engine phase per tick once the pacing delay
// has elapsed.
func (g *Game) advance() []core.Cue {
	if !g.eng.Busy() {
		return nil
	}
	if g.wait > 0 {
		g.wait--
		return nil
	}

	rep, ok := g.eng.Step()
	if !ok {
		return nil
	}
	g.last = rep

	var cues []core.Cue
	switch rep.Phase {
	case engine.PhaseGravity:
		g.wait = g.rt.TicksFor(g.cfg.Pacing.GravityMS)
	case engine.PhaseMatched:
		g.wait = g.rt.TicksFor(g.cfg.Pacing.MatchMS)
		cues = append(cues, core.CueMatch)
	case engine.PhaseMerged:
		g.wait = g.rt.TicksFor(g.cfg.Pacing.MergeMS)
		if rep.HighTier {
			cues = append(cues, core.CueLevelUp)
		} else {
			cues = append(cues, core.CueMerge)
		}
	case engine.PhaseSettled:
		g.wait = 0
		g.hintIndex = 0
		g.stuck = len(g.eng.Hints()) == 0
	}
	return cues
}

func (g *Game) tickTimers() {
	if g.hintTicks > 0 {
		g.hintTicks--
	}
	if g.msgTicks > 0 {
		g.msgTicks--
		if g.msgTicks == 0 {
			g.message = ""
		}
	}
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.msgTicks = g.rt.TicksFor(hintMS)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{GameOver: g.failure != ""}
	}
	return core.GameState{
		Score:    g.eng.Score(),
		Moves:    g.eng.Moves(),
		GameOver: g.ended,
		Paused:   g.paused || g.tooSmall || g.showLedger,
		Busy:     g.eng.Busy(),
	}
}
