package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg RunicConfig
	require.NoError(t, yaml.Unmarshal(defaultRunicYAML, &cfg))
	cfg.Validate()
	assert.Equal(t, DefaultRunicConfig(), cfg)
}

func TestLoadRunicCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runic.yaml")
	doc := `
board:
  size: 8
scoring:
  level_points: [2, 4, 6, 8, 10]
  blast_bonus: 20
pacing:
  gravity_ms: 50
sound:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := LoadRunic(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Board.Size)
	assert.Equal(t, []int{2, 4, 6, 8, 10}, cfg.Scoring.LevelPoints)
	assert.Equal(t, 20, cfg.Scoring.BlastBonus)
	assert.Equal(t, 50, cfg.Pacing.GravityMS)
	assert.False(t, cfg.Sound.Enabled)
	// Missing values are filled by Validate.
	assert.Equal(t, 3, cfg.Scoring.HighTierLevel)
	assert.Equal(t, 1000, cfg.Resolution.MaxCycles)
	assert.Equal(t, "~/.runic/scores.db", cfg.Storage.Path)
}

func TestLoadRunicErrors(t *testing.T) {
	_, err := LoadRunic(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("board: [1, 2"), 0o600))
	_, err = LoadRunic(bad)
	assert.Error(t, err)
}

func TestLoadRunicFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadRunic("")
	require.NoError(t, err)
	assert.Equal(t, DefaultRunicConfig(), cfg)
}

func TestValidateClamps(t *testing.T) {
	cfg := RunicConfig{
		Board:   BoardConfig{Size: 40},
		Scoring: ScoringConfig{LevelPoints: []int{1, -2}, BlastBonus: -1, HighTierLevel: 9},
		Pacing:  PacingConfig{GravityMS: -5, MergeMS: 90000},
		Sound:   SoundConfig{Volume: 3},
	}
	cfg.Validate()

	assert.Equal(t, MaxBoardSize, cfg.Board.Size)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, cfg.Scoring.LevelPoints)
	assert.Equal(t, 0, cfg.Scoring.BlastBonus)
	assert.Equal(t, 5, cfg.Scoring.HighTierLevel)
	assert.Equal(t, 0, cfg.Pacing.GravityMS)
	assert.Equal(t, 5000, cfg.Pacing.MergeMS)
	assert.Equal(t, 1.0, cfg.Sound.Volume)

	small := RunicConfig{Board: BoardConfig{Size: 2}}
	small.Validate()
	assert.Equal(t, MinBoardSize, small.Board.Size)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvBoardSize, "7")
	t.Setenv(EnvSound, "false")
	t.Setenv(EnvDB, "/tmp/runic-test.db")
	t.Setenv(EnvPreset, "soulblade")

	cfg := DefaultRunicConfig()
	require.NoError(t, ApplyEnv(&cfg))

	assert.Equal(t, 7, cfg.Board.Size)
	assert.False(t, cfg.Sound.Enabled)
	assert.Equal(t, "/tmp/runic-test.db", cfg.Storage.Path)
	assert.Equal(t, "soulblade", cfg.Board.Preset)
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	t.Setenv(EnvBoardSize, "huge")
	cfg := DefaultRunicConfig()
	assert.Error(t, ApplyEnv(&cfg))

	t.Setenv(EnvBoardSize, "")
	t.Setenv(EnvSound, "loud")
	assert.Error(t, ApplyEnv(&cfg))
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("RUNIC_BOARD_SIZE=9\n"), 0o600))

	// t.Setenv registers cleanup; unset so godotenv may fill it.
	t.Setenv(EnvBoardSize, "")
	require.NoError(t, os.Unsetenv(EnvBoardSize))

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "9", os.Getenv(EnvBoardSize))

	assert.Error(t, LoadEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestLoadEnvDefaultsIgnoreMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	assert.NoError(t, LoadEnv())
}
