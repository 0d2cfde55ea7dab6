package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvBoardSize = "RUNIC_BOARD_SIZE"
	EnvSound     = "RUNIC_SOUND"
	EnvDB        = "RUNIC_DB"
	EnvPreset    = "RUNIC_PRESET"
)

// LoadRunic loads the game configuration.
// Search order: customPath -> ~/.runic/configs/runic.yaml -> ./configs/runic.yaml -> embedded default.
// The result is validated; environment overrides are not applied.
func LoadRunic(customPath string) (RunicConfig, error) {
	cfg, err := loadRunic(customPath)
	if err != nil {
		return cfg, err
	}
	cfg.Validate()
	return cfg, nil
}

func loadRunic(customPath string) (RunicConfig, error) {
	var cfg RunicConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("runic.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "runic.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultRunicYAML, &cfg); err != nil {
		return DefaultRunicConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runic", "configs", filename)
}

// LoadEnv loads .env files into the process environment without overriding
// variables that are already set. With no paths it reads ./.env and
// ~/.runic/.env when present.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = append(paths, ".env")
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, ".runic", ".env"))
		}
		for _, p := range paths {
			if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("config: cannot load %s: %w", p, err)
			}
		}
		return nil
	}

	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("config: cannot load env files: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg from RUNIC_* environment variables and
// re-validates it.
func ApplyEnv(cfg *RunicConfig) error {
	if v, ok := os.LookupEnv(EnvBoardSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q is not a number: %w", EnvBoardSize, v, err)
		}
		cfg.Board.Size = n
	}
	if v, ok := os.LookupEnv(EnvSound); ok && v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q is not a boolean: %w", EnvSound, v, err)
		}
		cfg.Sound.Enabled = on
	}
	if v, ok := os.LookupEnv(EnvDB); ok && v != "" {
		cfg.Storage.Path = v
	}
	if v, ok := os.LookupEnv(EnvPreset); ok && v != "" {
		cfg.Board.Preset = v
	}
	cfg.Validate()
	return nil
}
