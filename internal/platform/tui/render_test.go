package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/runic/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(0, 1, "F1", core.ColorBrightRed)
	s.DrawTextColored(3, 1, "W2", core.ColorBrightBlue)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() lines = %d, want 2", len(lines))
	}
	if lines[0] != "plain     " {
		t.Errorf("default row = %q, want unstyled text", lines[0])
	}
	if got := lipgloss.Width(lines[1]); got != 10 {
		t.Errorf("styled row width = %d, want 10", got)
	}
	for _, want := range []string{"F1", "W2"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("styled row missing %q", want)
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	got := styleFor(core.Color(250)).Render("x")
	if got != "x" {
		t.Errorf("unknown colour render = %q, want plain", got)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abcdef", 4, "abcdef"},
		{"ab", 2, "ab"},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
