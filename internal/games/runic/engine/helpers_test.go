package engine

import (
	"fmt"
	"strings"
	"testing"
)

// quietRows returns an n×n board at level 1 with element (x+2y) mod 5.
// Horizontal neighbours differ by one and vertical neighbours by two, so no
// single replaced cell can ever complete a run.
func quietRows(n int) []string {
	rows := make([]string, n)
	for y := 0; y < n; y++ {
		fields := make([]string, n)
		for x := 0; x < n; x++ {
			fields[x] = Rune{Element: Element((x + 2*y) % ElementCount), Level: 1}.String()
		}
		rows[y] = strings.Join(fields, " ")
	}
	return rows
}

// quietGrid builds a quiet board and applies overrides by index.
func quietGrid(t *testing.T, n int, overrides map[int]string) *Grid {
	t.Helper()
	g, err := ParseGrid(quietRows(n))
	if err != nil {
		t.Fatalf("ParseGrid() failed: %v", err)
	}
	for idx, s := range overrides {
		r, err := ParseRune(s)
		if err != nil {
			t.Fatalf("ParseRune(%q) failed: %v", s, err)
		}
		r.ID = fmt.Sprintf("o%d", idx)
		g.Set(idx, r)
	}
	return g
}

// cycleGen refills with Fire, Water, Wood, Earth, Lightning in turn.
func cycleGen() Generator {
	return Sequence(Fire, Water, Wood, Earth, Lightning)
}

func newTestEngine(t *testing.T, g *Grid, opts Options) *Engine {
	t.Helper()
	if opts.Generator == nil {
		opts.Generator = cycleGen()
	}
	if opts.Seed == 0 {
		opts.Seed = 1
	}
	e, err := NewFromGrid(opts, g)
	if err != nil {
		t.Fatalf("NewFromGrid() failed: %v", err)
	}
	return e
}

func mustRune(t *testing.T, s string) Rune {
	t.Helper()
	r, err := ParseRune(s)
	if err != nil {
		t.Fatalf("ParseRune(%q) failed: %v", s, err)
	}
	return r
}
