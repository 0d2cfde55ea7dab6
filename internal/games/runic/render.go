package runic

import (
	"fmt"

	"github.com/vovakirdan/runic/internal/core"
	"github.com/vovakirdan/runic/internal/games/runic/engine"
)

const (
	cellWidth = 4 // marker, element code, level digit, marker
	ringWidth = 2 // void ring columns on each side
	hudHeight = 3
	footer    = 2
)

var elementColors = [engine.ElementCount]core.Color{
	engine.Fire:      core.ColorBrightRed,
	engine.Water:     core.ColorBrightBlue,
	engine.Wood:      core.ColorBrightGreen,
	engine.Earth:     core.ColorOrange,
	engine.Lightning: core.ColorBrightYellow,
}

// ElementColor returns the display colour of an element.
func ElementColor(e engine.Element) core.Color {
	if int(e) < engine.ElementCount {
		return elementColors[e]
	}
	return core.ColorDefault
}

// boardLayout places the board on screen.
type boardLayout struct {
	n      int
	x0, y0 int // top-left character of cell 0
	cellH  int
}

func (l boardLayout) cellPos(index int) (int, int) {
	return l.x0 + (index%l.n)*cellWidth, l.y0 + (index/l.n)*l.cellH
}

func (l boardLayout) width() int  { return l.n * cellWidth }
func (l boardLayout) height() int { return l.n * l.cellH }

// layout centres the board with its void ring. Rows are doubled when the
// terminal is tall enough. ok is false when even single rows do not fit.
func (g *Game) layout() (boardLayout, bool) {
	n := g.eng.Size()
	w := n*cellWidth + 2*ringWidth
	if g.rt.ScreenW < w {
		return boardLayout{}, false
	}

	for _, cellH := range []int{2, 1} {
		h := hudHeight + n*cellH + 2 + footer
		if g.rt.ScreenH >= h {
			l := boardLayout{n: n, cellH: cellH}
			l.x0 = (g.rt.ScreenW-w)/2 + ringWidth
			l.y0 = hudHeight + 1
			return l, true
		}
	}
	return boardLayout{}, false
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.eng == nil {
		dst.DrawTextCenteredColored(g.rt.ScreenH/2, "Cannot start board", core.ColorRed)
		dst.DrawTextCentered(g.rt.ScreenH/2+1, g.failure)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l, _ := g.layout()
	snap := g.eng.Snapshot()

	g.renderHUD(dst, l, snap)
	g.renderRing(dst, l)
	g.renderCells(dst, l, snap)
	g.renderFooter(dst, l)

	switch {
	case g.showLedger:
		g.renderLedger(dst, snap)
	case g.paused:
		drawOverlay(dst, g.rt.ScreenW/2, l.y0+l.height()/2, "PAUSED", "Press P to resume")
	case g.ended:
		drawOverlay(dst, g.rt.ScreenW/2, l.y0+l.height()/2,
			"RUN COMPLETE",
			fmt.Sprintf("Score: %d in %d moves", snap.Score, snap.Moves),
			fmt.Sprintf("Runes forged: %d", snap.Forged.Total()),
			"Press R to start a new run")
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.rt.ScreenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen, l boardLayout, snap engine.Snapshot) {
	left := l.x0 - ringWidth
	right := l.x0 + l.width() + ringWidth

	dst.DrawTextCenteredColored(0, "RUNIC SYNTHESIS", core.ColorBrightMagenta)

	dst.DrawText(left, 1, fmt.Sprintf("Score: %d", snap.Score))
	moves := fmt.Sprintf("Moves: %d", snap.Moves)
	dst.DrawText(core.Max(left, right-len(moves)), 1, moves)

	status, color := "Ready", core.ColorGreen
	switch {
	case snap.Busy:
		status, color = "Resolving...", core.ColorYellow
	case g.stuck:
		status, color = "No swaps: F to reshuffle", core.ColorRed
	}
	dst.DrawTextColored(left+(right-left-len(status))/2, 2, status, color)
}

// renderRing draws the void ring and lights the slots the cursor rune
// could be discarded into.
func (g *Game) renderRing(dst *core.Screen, l boardLayout) {
	const voidRune = '░'
	top, bottom := l.y0-1, l.y0+l.height()
	left, right := l.x0-ringWidth, l.x0+l.width()

	for x := left; x < right+ringWidth; x++ {
		dst.SetColored(x, top, voidRune, core.ColorGray)
		dst.SetColored(x, bottom, voidRune, core.ColorGray)
	}
	for y := top; y <= bottom; y++ {
		for i := range ringWidth {
			dst.SetColored(left+i, y, voidRune, core.ColorGray)
			dst.SetColored(right+i, y, voidRune, core.ColorGray)
		}
	}

	if !g.eng.CanDiscard(g.cursor) {
		return
	}
	grid := g.eng.Grid()
	for _, slot := range grid.VoidSlots(g.cursor) {
		cx, cy := l.cellPos(grid.SlotCell(slot))
		switch slot.Side {
		case engine.SideTop:
			dst.DrawTextColored(cx, top, "▓▓▓▓", core.ColorMagenta)
		case engine.SideBottom:
			dst.DrawTextColored(cx, bottom, "▓▓▓▓", core.ColorMagenta)
		case engine.SideLeft:
			for dy := range l.cellH {
				dst.DrawTextColored(left, cy+dy, "▓▓", core.ColorMagenta)
			}
		case engine.SideRight:
			for dy := range l.cellH {
				dst.DrawTextColored(right, cy+dy, "▓▓", core.ColorMagenta)
			}
		}
	}
}

func (g *Game) renderCells(dst *core.Screen, l boardLayout, snap engine.Snapshot) {
	hinted := func(i int) bool {
		return g.hintTicks > 0 && (i == g.hint.From || i == g.hint.To)
	}

	for _, cell := range snap.Cells {
		x, y := l.cellPos(cell.Index)
		flags := snap.Flag(cell.Index)

		if cell.Empty() {
			dst.DrawTextColored(x+1, y, "..", core.ColorGray)
		} else {
			color := ElementColor(cell.Rune.Element)
			if flags.Has(engine.FlagDoomed) {
				color = core.ColorGray
			}
			code := rune(cell.Rune.Element.Code())
			if cell.Rune.Level == engine.MaxLevel {
				color = core.ColorBrightWhite
			}
			dst.SetColored(x+1, y, code, color)
			dst.SetColored(x+2, y, rune('0'+cell.Rune.Level), color)
		}

		open, closeCh, markColor := ' ', ' ', core.ColorDefault
		switch {
		case cell.Index == g.cursor && cell.Index == g.selected:
			open, closeCh, markColor = '«', '»', core.ColorBrightCyan
		case cell.Index == g.cursor:
			open, closeCh, markColor = '[', ']', core.ColorBrightWhite
		case cell.Index == g.selected:
			open, closeCh, markColor = '<', '>', core.ColorCyan
		case hinted(cell.Index):
			open, closeCh, markColor = '?', '?', core.ColorCyan
		case flags.Has(engine.FlagMerged):
			open, closeCh, markColor = '+', '+', core.ColorBrightYellow
		case flags.Has(engine.FlagSpawned):
			open, closeCh, markColor = '\'', '\'', core.ColorGray
		case flags.Has(engine.FlagDoomed):
			open, closeCh, markColor = 'x', 'x', core.ColorRed
		}
		dst.SetColored(x, y, open, markColor)
		dst.SetColored(x+3, y, closeCh, markColor)
	}
}

func (g *Game) renderFooter(dst *core.Screen, l boardLayout) {
	y := l.y0 + l.height() + 1
	switch {
	case g.message != "":
		dst.DrawTextCenteredColored(y, g.message, core.ColorYellow)
	case g.last.ScoreDelta > 0 && g.eng.Busy():
		dst.DrawTextCenteredColored(y, fmt.Sprintf("+%d", g.last.ScoreDelta), core.ColorBrightGreen)
	}
	dst.DrawTextCenteredColored(y+1, g.Controls(), core.ColorGray)
}

// drawOverlay draws a boxed block of centred lines.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawText(centerX-len([]rune(line))/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Enter: swap | X: discard | F: shuffle | ?: hint | Tab: ledger | R: end"
}
