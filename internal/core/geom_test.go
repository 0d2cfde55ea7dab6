package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestCenteredIn(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		w, h          int
		expected      Rect
	}{
		{"fits", 80, 24, 20, 10, NewRect(30, 7, 20, 10)},
		{"exact", 20, 10, 20, 10, NewRect(0, 0, 20, 10)},
		{"too small clamps", 10, 5, 20, 10, NewRect(0, 0, 20, 10)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CenteredIn(tc.width, tc.height, tc.w, tc.h)
			if got != tc.expected {
				t.Errorf("CenteredIn() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs should drop the sign")
	}
}

func TestTicksFor(t *testing.T) {
	tests := []struct {
		name     string
		rate, ms int
		expected int
	}{
		{"zero duration", 60, 0, 0},
		{"gravity at 60fps", 60, 200, 12},
		{"merge at 30fps", 30, 300, 9},
		{"short rounds up to one", 60, 5, 1},
		{"unset rate uses 60", 0, 250, 15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := RuntimeConfig{TickRate: tc.rate}
			if got := cfg.TicksFor(tc.ms); got != tc.expected {
				t.Errorf("TicksFor(%d) = %d, expected %d", tc.ms, got, tc.expected)
			}
		})
	}
}

func TestCueString(t *testing.T) {
	names := map[Cue]string{
		CueNone:    "none",
		CueMove:    "move",
		CueMatch:   "match",
		CueMerge:   "merge",
		CueDiscard: "discard",
		CueInvalid: "invalid",
		CueLevelUp: "levelup",
	}
	for cue, want := range names {
		if got := cue.String(); got != want {
			t.Errorf("Cue(%d).String() = %q, expected %q", cue, got, want)
		}
	}
}
