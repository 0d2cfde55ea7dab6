package config

import (
	_ "embed"
)

//go:embed defaults/runic.yaml
var defaultRunicYAML []byte

// DefaultRunicConfig returns the built-in configuration.
func DefaultRunicConfig() RunicConfig {
	return RunicConfig{
		Board: BoardConfig{
			Size: 6,
		},
		Scoring: ScoringConfig{
			LevelPoints:   []int{1, 2, 3, 4, 5},
			BlastBonus:    10,
			DiscardBonus:  10,
			HighTierLevel: 3,
		},
		Resolution: ResolutionConfig{
			MaxCycles: 1000,
		},
		Pacing: PacingConfig{
			GravityMS: 200,
			MatchMS:   250,
			MergeMS:   300,
			DiscardMS: 300,
			ShuffleMS: 400,
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  0.1,
		},
		Storage: StorageConfig{
			Path: "~/.runic/scores.db",
		},
	}
}
