// Package config provides YAML-based configuration loading for Runic
// Synthesis: board and scoring rules, resolution pacing, sound, and the
// scores database location.
package config

// RunicConfig contains all configuration for the game.
type RunicConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Resolution ResolutionConfig `yaml:"resolution"`
	Pacing     PacingConfig     `yaml:"pacing"`
	Sound      SoundConfig      `yaml:"sound"`
	Storage    StorageConfig    `yaml:"storage"`
}

// BoardConfig defines the board.
type BoardConfig struct {
	Size   int    `yaml:"size"`   // N for an N×N board
	Preset string `yaml:"preset"` // Optional preset ID or file to start from
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	LevelPoints   []int `yaml:"level_points"` // Per-rune merge value for levels 1..5
	BlastBonus    int   `yaml:"blast_bonus"`
	DiscardBonus  int   `yaml:"discard_bonus"`
	HighTierLevel int   `yaml:"high_tier_level"`
}

// ResolutionConfig bounds the cascade loop.
type ResolutionConfig struct {
	MaxCycles int `yaml:"max_cycles"`
}

// PacingConfig holds the delay before each visible phase, in milliseconds.
type PacingConfig struct {
	GravityMS int `yaml:"gravity_ms"`
	MatchMS   int `yaml:"match_ms"`
	MergeMS   int `yaml:"merge_ms"`
	DiscardMS int `yaml:"discard_ms"`
	ShuffleMS int `yaml:"shuffle_ms"`
}

// SoundConfig controls audio cues.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// StorageConfig locates the scores database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// Board size bounds accepted by Validate.
const (
	MinBoardSize = 3
	MaxBoardSize = 16
)

// Validate clamps out-of-range values to usable ones and fills missing
// fields from the defaults.
func (c *RunicConfig) Validate() {
	def := DefaultRunicConfig()

	if c.Board.Size == 0 {
		c.Board.Size = def.Board.Size
	}
	c.Board.Size = clamp(c.Board.Size, MinBoardSize, MaxBoardSize)

	if len(c.Scoring.LevelPoints) != len(def.Scoring.LevelPoints) {
		c.Scoring.LevelPoints = append([]int(nil), def.Scoring.LevelPoints...)
	}
	for i, p := range c.Scoring.LevelPoints {
		if p < 0 {
			c.Scoring.LevelPoints[i] = 0
		}
	}
	if c.Scoring.BlastBonus < 0 {
		c.Scoring.BlastBonus = 0
	}
	if c.Scoring.DiscardBonus < 0 {
		c.Scoring.DiscardBonus = 0
	}
	if c.Scoring.HighTierLevel == 0 {
		c.Scoring.HighTierLevel = def.Scoring.HighTierLevel
	}
	c.Scoring.HighTierLevel = clamp(c.Scoring.HighTierLevel, 2, 5)

	if c.Resolution.MaxCycles <= 0 {
		c.Resolution.MaxCycles = def.Resolution.MaxCycles
	}

	for _, ms := range []*int{
		&c.Pacing.GravityMS, &c.Pacing.MatchMS, &c.Pacing.MergeMS,
		&c.Pacing.DiscardMS, &c.Pacing.ShuffleMS,
	} {
		*ms = clamp(*ms, 0, 5000)
	}

	if c.Sound.Volume < 0 {
		c.Sound.Volume = 0
	}
	if c.Sound.Volume > 1 {
		c.Sound.Volume = 1
	}

	if c.Storage.Path == "" {
		c.Storage.Path = def.Storage.Path
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
