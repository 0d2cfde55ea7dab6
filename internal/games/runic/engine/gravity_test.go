package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApplyGravityColumn(t *testing.T) {
	g := quietGrid(t, 4, nil)
	// Column 1 top to bottom: F2, empty, W3, empty.
	g.Set(g.Index(1, 0), Rune{ID: "a", Element: Fire, Level: 2})
	g.Set(g.Index(1, 1), Rune{})
	g.Set(g.Index(1, 2), Rune{ID: "b", Element: Water, Level: 3})
	g.Set(g.Index(1, 3), Rune{})

	events := applyGravity(g, Sequence(Earth))

	want := []string{"E1", "E1", "F2", "W3"}
	for y, w := range want {
		if got := g.AtXY(1, y).String(); got != w {
			t.Errorf("column 1 row %d = %s, want %s", y, got, w)
		}
	}
	if g.AtXY(1, 2).ID != "a" || g.AtXY(1, 3).ID != "b" {
		t.Errorf("surviving runes should keep identity and order, got %q %q", g.AtXY(1, 2).ID, g.AtXY(1, 3).ID)
	}
	if !g.Full() {
		t.Error("grid should be full after gravity")
	}

	var kinds []EventKind
	for _, ev := range events {
		kinds = append(kinds, ev.Kind)
	}
	wantKinds := []EventKind{EventFell, EventFell, EventSpawned, EventSpawned}
	if diff := cmp.Diff(wantKinds, kinds); diff != "" {
		t.Errorf("event kinds mismatch (-want +got):\n%s", diff)
	}
	if events[0].Other != g.Index(1, 2) || events[0].Index != g.Index(1, 3) {
		t.Errorf("first fall = %+v, want from 9 to 13", events[0])
	}
}

func TestApplyGravityFullColumnUntouched(t *testing.T) {
	g := quietGrid(t, 5, nil)
	before := g.Clone()

	if events := applyGravity(g, Sequence(Fire)); len(events) != 0 {
		t.Errorf("applyGravity on a full grid emitted %d events, want 0", len(events))
	}
	if diff := cmp.Diff(before.Runes(), g.Runes()); diff != "" {
		t.Errorf("full grid changed (-want +got):\n%s", diff)
	}
}

func TestApplyGravityEmptyColumnRefillsTopDown(t *testing.T) {
	g := quietGrid(t, 3, nil)
	for y := 0; y < 3; y++ {
		g.Clear(g.Index(2, y))
	}

	applyGravity(g, Sequence(Fire, Water, Wood))

	for y, want := range []string{"F1", "W1", "T1"} {
		if got := g.AtXY(2, y).String(); got != want {
			t.Errorf("column 2 row %d = %s, want %s", y, got, want)
		}
	}
}

func TestApplyGravityKeepsColumnOrder(t *testing.T) {
	g := quietGrid(t, 6, nil)
	// Column 0 top to bottom: A, empty, B, empty, C, empty.
	survivors := []Rune{
		{ID: "a", Element: Fire, Level: 2},
		{ID: "b", Element: Water, Level: 3},
		{ID: "c", Element: Earth, Level: 4},
	}
	for y := range 6 {
		if y%2 == 0 {
			g.Set(g.Index(0, y), survivors[y/2])
		} else {
			g.Clear(g.Index(0, y))
		}
	}

	events := applyGravity(g, Sequence(Lightning))

	var got []Rune
	for y := 3; y < 6; y++ {
		got = append(got, g.AtXY(0, y))
	}
	if diff := cmp.Diff(survivors, got); diff != "" {
		t.Errorf("bottom of column 0 mismatch (-want +got):\n%s", diff)
	}
	for y := range 3 {
		r := g.AtXY(0, y)
		if r.Level != 1 || r.Element != Lightning {
			t.Errorf("column 0 row %d = %s, want a fresh L1", y, r)
		}
		for _, s := range survivors {
			if r.ID == s.ID {
				t.Errorf("column 0 row %d reuses identity %q", y, r.ID)
			}
		}
	}

	spawned := 0
	for _, ev := range events {
		if ev.Kind == EventSpawned {
			spawned++
		}
	}
	if spawned != 3 {
		t.Errorf("spawned %d runes, want 3", spawned)
	}
}
