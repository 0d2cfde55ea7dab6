package presets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/runic/internal/games/runic/engine"
)

const sampleYAML = `
id: tiny
name: Tiny
rows:
  - F1 W1 T1
  - E1 L1 F1
  - W1 T1 E5
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "tiny", p.ID)
	assert.Equal(t, "Tiny", p.Name)
	assert.Equal(t, 3, p.Size())

	g, err := p.Grid()
	require.NoError(t, err)
	assert.Equal(t, engine.Rune{ID: "r8", Element: engine.Earth, Level: 5}, g.At(8))
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"missing id":  "name: x\nrows: [\"F1 W1 T1\", \"E1 L1 F1\", \"W1 T1 E1\"]\n",
		"ragged rows": "id: x\nrows: [\"F1 W1 T1\", \"E1 L1\", \"W1 T1 E1\"]\n",
		"bad rune":    "id: x\nrows: [\"F1 W1 T1\", \"E1 L1 Z1\", \"W1 T1 E1\"]\n",
		"too small":   "id: x\nrows: [\"F1 W1\", \"E1 L1\"]\n",
		"broken yaml": "id: [unterminated\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParseDefaultsNameToID(t *testing.T) {
	p, err := Parse([]byte("id: plain\nrows: [\"F1 W1 T1\", \"E1 L1 F1\", \"W1 T1 E1\"]\n"))
	require.NoError(t, err)
	assert.Equal(t, "plain", p.Name)
}

func TestBuiltinPresetsStartIdle(t *testing.T) {
	all, err := Builtin()
	require.NoError(t, err)
	require.NotEmpty(t, all)

	ids := make([]string, len(all))
	for i, p := range all {
		ids[i] = p.ID
		g, err := p.Grid()
		require.NoError(t, err, p.ID)
		assert.Empty(t, engine.Detect(g), "preset %s should not start with matches", p.ID)
		assert.NotEmpty(t, engine.FindMoves(g), "preset %s should offer a move", p.ID)
	}
	assert.IsIncreasing(t, ids)
}

func TestSoulbladePresetDetonates(t *testing.T) {
	p, err := Resolve("soulblade")
	require.NoError(t, err)
	g, err := p.Grid()
	require.NoError(t, err)

	e, err := engine.NewFromGrid(engine.Options{Seed: 1, Generator: engine.Sequence(engine.Fire, engine.Water, engine.Wood, engine.Earth, engine.Lightning)}, g)
	require.NoError(t, err)
	require.True(t, e.Swap(25, 31))

	blasted := 0
	for rep := range e.Phases() {
		blasted += rep.Count(engine.EventBlasted)
	}
	assert.GreaterOrEqual(t, blasted, 6)
	assert.GreaterOrEqual(t, e.Score(), 16)
	assert.False(t, e.Busy())
}

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(sampleYAML), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "a.yml"),
		[]byte("id: alpha\nrows: [\"F1 W1 T1\", \"E1 L1 F1\", \"W1 T1 E1\"]\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("id: broken\nrows: [x]\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	l := NewLoader(dir)
	all, skipped, err := l.LoadAll()
	require.NoError(t, err)

	require.Len(t, all, 2)
	assert.Equal(t, "alpha", all[0].ID)
	assert.Equal(t, "tiny", all[1].ID)
	assert.Len(t, skipped, 1)
	assert.Contains(t, skipped, filepath.Join(dir, "broken.yaml"))

	p, err := l.LoadByID("tiny")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "b.yaml"), p.FilePath)

	_, err = l.LoadByID("missing")
	assert.Error(t, err)

	p, err = Resolve(filepath.Join(dir, "b.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "tiny", p.ID)
}
