// Package presets loads fixed starting boards for Runic Synthesis from YAML.
// The engine package knows nothing about presets; a preset only turns into
// an engine grid.
package presets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/runic/internal/games/runic/engine"
)

// yamlPreset is the on-disk layout of a preset file.
type yamlPreset struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Rows        []string          `yaml:"rows"`
	Metadata    map[string]string `yaml:"metadata,omitempty"`
}

// Preset is a named starting board.
type Preset struct {
	ID          string
	Name        string
	Description string
	Rows        []string
	Metadata    map[string]string
	FilePath    string
}

// Size returns the board dimension.
func (p Preset) Size() int {
	return len(p.Rows)
}

// Grid parses the rows into an engine grid.
func (p Preset) Grid() (*engine.Grid, error) {
	g, err := engine.ParseGrid(p.Rows)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", p.ID, err)
	}
	return g, nil
}

// Parse decodes and validates a YAML preset.
func Parse(data []byte) (Preset, error) {
	var yp yamlPreset
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Preset{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if strings.TrimSpace(yp.ID) == "" {
		return Preset{}, fmt.Errorf("preset is missing an id")
	}

	p := Preset{
		ID:          yp.ID,
		Name:        yp.Name,
		Description: yp.Description,
		Rows:        yp.Rows,
		Metadata:    yp.Metadata,
	}
	if p.Name == "" {
		p.Name = p.ID
	}
	if _, err := p.Grid(); err != nil {
		return Preset{}, err
	}
	return p, nil
}

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the presets shipped with the game, sorted by ID.
func Builtin() ([]Preset, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("reading builtin presets: %w", err)
	}

	var out []Preset
	for _, entry := range entries {
		name := path.Join("builtin", entry.Name())
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		p, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		p.FilePath = name
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}
