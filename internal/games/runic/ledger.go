package runic

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/runic/internal/core"
	"github.com/vovakirdan/runic/internal/games/runic/engine"
)

// ledgerLines formats the session and collection ledgers as table rows.
// Forged shows upgrade counts for levels 2-5; the collection marks every
// unlocked value with its code and hides the rest.
func ledgerLines(snap engine.Snapshot) []string {
	var lines []string

	lines = append(lines, "FORGED THIS RUN")
	header := fmt.Sprintf("%-10s", "")
	for _, lv := range engine.Levels[1:] {
		header += fmt.Sprintf(" %4s", fmt.Sprintf("L%d", lv))
	}
	lines = append(lines, header)
	for _, e := range engine.Elements {
		row := fmt.Sprintf("%-10s", e)
		for _, lv := range engine.Levels[1:] {
			row += fmt.Sprintf(" %4d", snap.Forged.Count(e, lv))
		}
		lines = append(lines, row)
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("COLLECTION %d/%d", snap.Collection.UnlockedCount(), engine.ElementCount*int(engine.MaxLevel)))
	for _, e := range engine.Elements {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%-10s", e)
		for _, lv := range engine.Levels {
			if snap.Collection.Unlocked(e, lv) {
				fmt.Fprintf(&sb, " %c%d", e.Code(), lv)
			} else {
				sb.WriteString(" ??")
			}
		}
		lines = append(lines, sb.String())
	}
	lines = append(lines, "")
	lines = append(lines, "Tab or Esc to close")
	return lines
}

func (g *Game) renderLedger(dst *core.Screen, snap engine.Snapshot) {
	lines := ledgerLines(snap)

	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}
	box := core.CenteredIn(g.rt.ScreenW, g.rt.ScreenH, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorMagenta)

	for i, line := range lines {
		color := core.ColorDefault
		for _, e := range engine.Elements {
			if strings.HasPrefix(line, e.String()+" ") {
				color = ElementColor(e)
			}
		}
		if strings.HasPrefix(line, "FORGED") || strings.HasPrefix(line, "COLLECTION") {
			color = core.ColorBrightMagenta
		}
		dst.DrawTextColored(box.X+2, box.Y+1+i, line, color)
	}
}
