// runic is a match-3 and merge rune puzzle that runs in the terminal.
//
// Usage:
//
//	runic list              - List available board variants
//	runic play [variant]    - Play a run
//	runic menu              - Start menu to pick a variant interactively
//	runic serve             - Start SSH server for remote play
//	runic scores [variant]  - Show high scores
//	runic boards [dir]      - List preset boards
//
// Global flags:
//
//	--config <path> - Game config YAML (default: ~/.runic/configs/runic.yaml)
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: from config)
//	--debug         - Verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/runic/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/runic/internal/games/runic"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagDebug  bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "runic",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runic",
	Short: "Runic Synthesis - match and merge runes in your terminal",
	Long: `Runic Synthesis is a single-player rune puzzle. Swap neighbouring
runes to line up three of a kind, merge them into stronger runes,
and push finished runes into the void around the board.

Available commands:
  list     - Show the board variants
  play     - Start a run directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  boards   - List preset starting boards

Examples:
  runic play
  runic play runic_large --seed 42
  runic play --board soulblade
  runic serve --ssh :2222
  runic scores`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
		return config.LoadEnv()
	},
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardsCmd)
}
