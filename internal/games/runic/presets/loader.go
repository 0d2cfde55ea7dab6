package presets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader reads preset files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at root.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll walks Root and loads every .yaml/.yml file, sorted by ID.
// Files that fail to parse are returned in skipped rather than aborting.
func (l *Loader) LoadAll() (presets []Preset, skipped map[string]error, err error) {
	skipped = make(map[string]error)

	err = filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		p, loadErr := LoadFile(path)
		if loadErr != nil {
			skipped[path] = loadErr
			return nil
		}
		presets = append(presets, p)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(presets, func(i, j int) bool {
		return presets[i].ID < presets[j].ID
	})
	return presets, skipped, nil
}

// LoadByID returns the preset with the given ID.
func (l *Loader) LoadByID(id string) (Preset, error) {
	all, _, err := l.LoadAll()
	if err != nil {
		return Preset{}, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("preset not found: %s", id)
}

// LoadFile reads a single preset file.
func LoadFile(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return Preset{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	p.FilePath = path
	return p, nil
}

// Resolve finds a preset by file path or by builtin ID.
func Resolve(ref string) (Preset, error) {
	if _, err := os.Stat(ref); err == nil {
		return LoadFile(ref)
	}
	builtin, err := Builtin()
	if err != nil {
		return Preset{}, err
	}
	for _, p := range builtin {
		if p.ID == ref {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("preset not found: %s", ref)
}
