package runic

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/runic/internal/config"
	"github.com/vovakirdan/runic/internal/core"
	"github.com/vovakirdan/runic/internal/games/runic/engine"
	"github.com/vovakirdan/runic/internal/games/runic/presets"
	"github.com/vovakirdan/runic/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: seed}
}

// newPresetGame starts a standard game on a builtin preset.
func newPresetGame(t *testing.T, id string) *Game {
	t.Helper()
	p, err := presets.Resolve(id)
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", id, err)
	}
	SetPreset(&p)
	t.Cleanup(func() { SetPreset(nil) })

	g := New()
	g.Reset(testRuntime(1))
	if g.Engine() == nil {
		t.Fatalf("Reset() failed: %s", g.failure)
	}
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

// settle ticks until the engine is idle, collecting every cue.
func settle(t *testing.T, g *Game) []core.Cue {
	t.Helper()
	var cues []core.Cue
	for i := 0; g.Engine().Busy(); i++ {
		if i > 10000 {
			t.Fatal("board did not settle")
		}
		cues = append(cues, step(g).Cues...)
	}
	return cues
}

func TestRegisteredVariants(t *testing.T) {
	for _, id := range []string{IDStandard, IDLarge} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}

	g, err := registry.Create(IDLarge)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Runic Synthesis (8x8)" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestResetBuildsIdleBoard(t *testing.T) {
	tests := []struct {
		game *Game
		size int
	}{
		{New(), config.DefaultRunicConfig().Board.Size},
		{NewLarge(), LargeSize},
	}

	for _, tt := range tests {
		t.Run(tt.game.ID(), func(t *testing.T) {
			tt.game.Reset(testRuntime(7))
			eng := tt.game.Engine()
			if eng.Size() != tt.size {
				t.Errorf("Size() = %d, want %d", eng.Size(), tt.size)
			}
			if eng.Busy() {
				t.Error("fresh board should be idle")
			}
			if clusters := engine.Detect(eng.Grid()); len(clusters) != 0 {
				t.Errorf("fresh board has matches: %v", clusters)
			}
			if got := tt.game.State(); got != (core.GameState{}) {
				t.Errorf("State() = %+v, want zero", got)
			}
		})
	}
}

func TestSameSeedSameBoard(t *testing.T) {
	a, b := New(), New()
	a.Reset(testRuntime(42))
	b.Reset(testRuntime(42))

	if diff := cmp.Diff(a.Snapshot().Board, b.Snapshot().Board); diff != "" {
		t.Errorf("boards differ (-a +b):\n%s", diff)
	}

	c := New()
	c.Reset(testRuntime(43))
	if a.Snapshot().Board == c.Snapshot().Board {
		t.Error("different seeds produced the same board")
	}
}

func TestSwapIsPaced(t *testing.T) {
	g := newPresetGame(t, "first-forge")

	g.cursor = 2
	if res := step(g, core.ActionConfirm); len(res.Cues) != 0 {
		t.Errorf("selecting should not cue, got %v", res.Cues)
	}
	if g.selected != 2 {
		t.Fatalf("selected = %d, want 2", g.selected)
	}

	g.cursor = 3
	res := step(g, core.ActionConfirm)
	if !slices.Contains(res.Cues, core.CueMove) || !slices.Contains(res.Cues, core.CueMatch) {
		t.Fatalf("swap tick cues = %v, want move and match", res.Cues)
	}
	if !res.State.Busy || res.State.Moves != 1 {
		t.Errorf("State() = %+v, want busy after one move", res.State)
	}

	matchDelay := g.rt.TicksFor(g.cfg.Pacing.MatchMS)
	for i := 0; i < matchDelay; i++ {
		if cues := step(g).Cues; len(cues) != 0 {
			t.Fatalf("tick %d cued %v before the match delay elapsed", i, cues)
		}
	}
	res = step(g)
	if !slices.Contains(res.Cues, core.CueMerge) {
		t.Fatalf("cues after match delay = %v, want merge", res.Cues)
	}

	settle(t, g)
	if g.State().Score < 3 {
		t.Errorf("Score = %d, want at least 3", g.State().Score)
	}
	forged := g.Engine().Forged()
	if forged.Count(engine.Fire, engine.LevelGem) < 1 {
		t.Error("a Fire Gem should have been forged")
	}
}

func TestSelectionRules(t *testing.T) {
	g := newPresetGame(t, "first-forge")

	g.cursor = 7
	step(g, core.ActionConfirm)
	step(g, core.ActionConfirm)
	if g.selected != -1 {
		t.Errorf("second confirm on the same cell should deselect, selected = %d", g.selected)
	}

	step(g, core.ActionConfirm)
	g.cursor = 21
	step(g, core.ActionConfirm)
	if g.selected != 21 {
		t.Errorf("confirm on a distant cell should move the selection, selected = %d", g.selected)
	}
	if g.Engine().Moves() != 0 {
		t.Errorf("Moves() = %d, want 0", g.Engine().Moves())
	}

	step(g, core.ActionBack)
	if g.selected != -1 {
		t.Errorf("back should clear the selection, selected = %d", g.selected)
	}
}

func TestCursorStaysOnBoard(t *testing.T) {
	g := newPresetGame(t, "first-forge")

	for range 10 {
		step(g, core.ActionUp)
		step(g, core.ActionLeft)
	}
	if g.cursor != 0 {
		t.Errorf("cursor = %d, want 0", g.cursor)
	}
	for range 10 {
		step(g, core.ActionDown)
		step(g, core.ActionRight)
	}
	if g.cursor != 35 {
		t.Errorf("cursor = %d, want 35", g.cursor)
	}
}

func TestBusyIgnoresActions(t *testing.T) {
	g := newPresetGame(t, "first-forge")

	g.cursor = 2
	step(g, core.ActionConfirm)
	g.cursor = 3
	step(g, core.ActionConfirm)

	before := g.Engine().Snapshot()
	for _, a := range []core.Action{core.ActionShuffle, core.ActionDiscard, core.ActionHint} {
		if res := step(g, a); len(res.Cues) != 0 {
			t.Errorf("%v while busy cued %v", a, res.Cues)
		}
	}
	if g.Engine().Moves() != before.Moves {
		t.Errorf("Moves() = %d, want %d", g.Engine().Moves(), before.Moves)
	}
}

func TestDiscard(t *testing.T) {
	g := newPresetGame(t, "first-forge")

	g.cursor = 21
	res := step(g, core.ActionDiscard)
	if !slices.Equal(res.Cues, []core.Cue{core.CueInvalid}) {
		t.Errorf("interior discard cues = %v, want invalid", res.Cues)
	}
	if g.message == "" {
		t.Error("interior discard should explain itself")
	}

	g.cursor = 5
	res = step(g, core.ActionDiscard)
	if !slices.Equal(res.Cues, []core.Cue{core.CueDiscard}) {
		t.Errorf("edge discard cues = %v, want discard", res.Cues)
	}
	if !res.State.Busy || res.State.Moves != 1 {
		t.Errorf("State() = %+v, want busy after one move", res.State)
	}
	if want := g.rt.TicksFor(g.cfg.Pacing.DiscardMS) - 1; g.wait != want {
		t.Errorf("wait = %d, want %d", g.wait, want)
	}

	settle(t, g)
	if g.Engine().At(5).IsZero() {
		t.Error("discarded cell should be refilled")
	}
}

func TestShuffle(t *testing.T) {
	g := newPresetGame(t, "first-forge")

	res := step(g, core.ActionShuffle)
	if !slices.Contains(res.Cues, core.CueMove) {
		t.Errorf("shuffle cues = %v, want move", res.Cues)
	}
	settle(t, g)
	if g.State().Moves != 1 {
		t.Errorf("Moves = %d, want 1", g.State().Moves)
	}
}

func TestHint(t *testing.T) {
	g := newPresetGame(t, "first-forge")

	step(g, core.ActionHint)
	if g.hintTicks == 0 {
		t.Fatal("hint should be visible")
	}
	if !slices.Contains(g.Engine().Hints(), g.hint) {
		t.Errorf("hint %v is not a valid move", g.hint)
	}
}

func TestRestartEndsRun(t *testing.T) {
	g := newPresetGame(t, "first-forge")

	res := step(g, core.ActionRestart)
	if !res.State.GameOver {
		t.Fatal("restart should end the run")
	}

	g.cursor = 5
	step(g, core.ActionDiscard)
	if g.Engine().Moves() != 0 {
		t.Error("moves after the run ended should be ignored")
	}
}

func TestPauseHoldsResolution(t *testing.T) {
	g := newPresetGame(t, "first-forge")

	g.cursor = 2
	step(g, core.ActionConfirm)
	g.cursor = 3
	step(g, core.ActionConfirm)

	step(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	wait := g.wait
	for range 100 {
		step(g)
	}
	if g.wait != wait || !g.Engine().Busy() {
		t.Error("resolution should not advance while paused")
	}

	step(g, core.ActionPause)
	settle(t, g)
}

func TestLedgerOverlay(t *testing.T) {
	g := newPresetGame(t, "first-forge")

	step(g, core.ActionLedger)
	if !g.State().Paused {
		t.Error("ledger overlay should report paused")
	}

	g.cursor = 5
	step(g, core.ActionDiscard)
	if g.Engine().Moves() != 0 {
		t.Error("moves should be ignored while the ledger is open")
	}

	step(g, core.ActionBack)
	if g.showLedger {
		t.Error("back should close the ledger")
	}
}

func TestLedgerLines(t *testing.T) {
	g := newPresetGame(t, "first-forge")
	g.cursor = 2
	step(g, core.ActionConfirm)
	g.cursor = 3
	step(g, core.ActionConfirm)
	settle(t, g)

	lines := ledgerLines(g.Engine().Snapshot())
	var fire string
	for _, l := range lines {
		if strings.HasPrefix(l, "Fire ") {
			fire = l
			break
		}
	}
	fields := strings.Fields(fire)
	if len(fields) != 5 || fields[1] == "0" {
		t.Errorf("Fire forged row = %q, want a non-zero L2 count", fire)
	}

	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "F2") {
		t.Error("collection should show the unlocked Fire Gem")
	}
	if !strings.Contains(joined, "??") {
		t.Error("collection should hide locked values")
	}
}

func TestRender(t *testing.T) {
	g := newPresetGame(t, "first-forge")
	screen := core.NewScreen(80, 30)

	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"RUNIC SYNTHESIS", "Score: 0", "Moves: 0", "[L1]", "░"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	// Corner cursor lights two void slots.
	g.cursor = 0
	g.Render(screen)
	if got := strings.Count(screen.String(), "▓"); got != 4+2*2 {
		t.Errorf("lit void cells = %d, want 8", got)
	}
}

func TestTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})
	if !g.State().Paused {
		t.Error("a tiny window should pause the game")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("render should ask for a larger window")
	}

	g.Resize(80, 30)
	if g.State().Paused {
		t.Error("resizing up should resume")
	}
}

func TestApplyConfigChangesPacing(t *testing.T) {
	g := newPresetGame(t, "first-forge")

	cfg := config.DefaultRunicConfig()
	cfg.Pacing.MatchMS = 0
	g.ApplyConfig(cfg)

	g.cursor = 2
	step(g, core.ActionConfirm)
	g.cursor = 3
	step(g, core.ActionConfirm)

	if res := step(g); !slices.Contains(res.Cues, core.CueMerge) {
		t.Errorf("with no match delay the merge should follow at once, cues = %v", res.Cues)
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := config.DefaultRunicConfig()
	cfg.Scoring.LevelPoints = []int{2, 4, 6, 8, 10}
	cfg.Scoring.HighTierLevel = 4
	cfg.Resolution.MaxCycles = 50

	opts := EngineOptions(cfg, 7, 99)
	want := engine.Options{
		Size: 7,
		Scoring: engine.Scoring{
			Points:       [engine.MaxLevel + 1]int{0, 2, 4, 6, 8, 10},
			BlastBonus:   cfg.Scoring.BlastBonus,
			DiscardBonus: cfg.Scoring.DiscardBonus,
			HighTier:     engine.LevelGrimoire,
		},
		MaxCycles: 50,
		Seed:      99,
	}
	if diff := cmp.Diff(want, opts); diff != "" {
		t.Errorf("EngineOptions mismatch (-want +got):\n%s", diff)
	}
}
