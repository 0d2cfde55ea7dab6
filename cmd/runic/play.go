package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/runic/internal/config"
	"github.com/vovakirdan/runic/internal/core"
	"github.com/vovakirdan/runic/internal/games/runic"
	"github.com/vovakirdan/runic/internal/games/runic/presets"
	"github.com/vovakirdan/runic/internal/platform/sound"
	"github.com/vovakirdan/runic/internal/platform/tui"
	"github.com/vovakirdan/runic/internal/registry"
	"github.com/vovakirdan/runic/internal/storage"
)

var (
	flagBoard string
	flagWatch bool
	flagMute  bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a run",
	Long: `Start a run of the given variant (default: runic).

Controls:
  Arrows/WASD/HJKL - Move cursor
  Enter/Space      - Select a rune, then a neighbour to swap
  X/Delete         - Push the selected edge rune into the void
  F                - Shuffle the board
  ?                - Show a hint
  Tab              - Forge ledger
  P/Esc            - Pause
  R                - End the run / start a new one
  Q/Ctrl+C         - Quit

Examples:
  runic play
  runic play runic_large
  runic play --board cascade
  runic play --board ./boards/mine.yaml
  runic play --config ./runic.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBoard, "board", "", "Preset board ID or YAML file to start from")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

// loadSettings loads the config file, applies environment overrides and
// hands the result to the game package.
func loadSettings() (config.RunicConfig, error) {
	cfg, err := config.LoadRunic(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	runic.SetConfig(cfg)
	return cfg, nil
}

// selectBoard installs the preset named by ref, or clears it when ref is empty.
func selectBoard(ref string) error {
	if ref == "" {
		runic.SetPreset(nil)
		return nil
	}
	p, err := presets.Resolve(ref)
	if err != nil {
		return err
	}
	runic.SetPreset(&p)
	logger.Debug("using preset board", "id", p.ID, "size", p.Size())
	return nil
}

// runtimeConfig reads the terminal size and the global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database, returning nil when it cannot.
func openStore(path string) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open scores database", "path", path, "err", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := runic.IDStandard
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'runic list' to see available variants.")
		os.Exit(1)
	}

	gameCfg, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	board := flagBoard
	if board == "" {
		board = gameCfg.Board.Preset
	}
	if err := selectBoard(board); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts := tui.Options{
		Store: openStore(gameCfg.Storage.Path),
	}

	soundOpts := sound.Options{
		Enabled: gameCfg.Sound.Enabled && !flagMute,
		Volume:  gameCfg.Sound.Volume,
	}
	player := sound.Open(soundOpts, logger)
	opts.Sound = player

	ctx, cancel := context.WithCancel(context.Background())
	var watcher *config.Watcher
	if flagWatch {
		if flagConfig == "" {
			logger.Warn("--watch needs --config, ignoring")
		} else if watcher, err = config.NewWatcher(flagConfig, logger); err != nil {
			logger.Warn("config watch disabled", "err", err)
		} else if err := watcher.Start(ctx); err != nil {
			logger.Warn("config watch disabled", "err", err)
		} else {
			opts.Updates = watcher.Updates()
		}
	}

	runErr := tui.Run(game, runtimeConfig(), opts)

	cancel()
	if watcher != nil {
		if err := watcher.Stop(); err != nil {
			logger.Debug("stopping config watcher", "err", err)
		}
	}
	player.Close()
	if opts.Store != nil {
		opts.Store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
