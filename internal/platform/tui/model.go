package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/runic/internal/config"
	"github.com/vovakirdan/runic/internal/core"
	"github.com/vovakirdan/runic/internal/platform/sound"
	"github.com/vovakirdan/runic/internal/registry"
	"github.com/vovakirdan/runic/internal/storage"
)

// configurable is implemented by games that accept live config changes.
type configurable interface {
	ApplyConfig(cfg config.RunicConfig)
}

// resizable is implemented by games that can follow a terminal resize
// without restarting.
type resizable interface {
	Resize(w, h int)
}

// configMsg carries a reloaded configuration from the watcher.
type configMsg struct {
	cfg config.RunicConfig
}

// waitForConfig blocks on the next watcher update.
func waitForConfig(updates <-chan config.RunicConfig) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-updates
		if !ok {
			return nil
		}
		return configMsg{cfg: cfg}
	}
}

// Options wires the optional collaborators of a Model.
type Options struct {
	Store *storage.Store
	// Sound plays step cues. Silent when nil.
	Sound sound.Player
	// Updates delivers reloaded configuration while playing.
	Updates <-chan config.RunicConfig
	// Embedded models hand control back to a menu instead of quitting
	// when the player leaves a finished run.
	Embedded bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current run
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Sound == nil {
		opts.Sound = sound.Silent{}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), waitForConfig(m.opts.Updates))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case configMsg:
		if c, ok := m.game.(configurable); ok {
			c.ApplyConfig(msg.cfg)
		}
		m.opts.Sound.SetEnabled(msg.cfg.Sound.Enabled)
		return m, waitForConfig(m.opts.Updates)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.opts.Embedded && m.gameState.GameOver {
		if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack {
			m.backToMenu = true
			return m, nil
		}
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.opts.Sound.Close()
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, cue := range result.Cues {
		m.opts.Sound.Play(cue)
	}

	// Save the run once when it ends
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.opts.Store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.opts.Store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Moves)
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".runic", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
