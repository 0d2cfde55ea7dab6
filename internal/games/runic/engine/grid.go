package engine

import (
	"fmt"
	"strings"
)

// Board size bounds.
const (
	MinSize     = 3
	MaxSize     = 16
	DefaultSize = 6
)

// Coord is a cell position: X is the column, Y is the row (0 at the top).
type Coord struct {
	X, Y int
}

// Manhattan returns the Manhattan distance between two coordinates.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Cell is a slot of the grid. Index is row-major and never changes.
type Cell struct {
	Index int
	Rune  Rune
}

// Empty reports whether the cell holds no rune.
func (c Cell) Empty() bool {
	return c.Rune.IsZero()
}

// Grid is an N×N row-major board of cells.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid creates an empty grid of the given size.
func NewGrid(size int) *Grid {
	g := &Grid{size: size, cells: make([]Cell, size*size)}
	for i := range g.cells {
		g.cells[i].Index = i
	}
	return g
}

// Size returns N.
func (g *Grid) Size() int {
	return g.size
}

// Len returns N².
func (g *Grid) Len() int {
	return len(g.cells)
}

// Index converts (x, y) to a cell index.
func (g *Grid) Index(x, y int) int {
	return y*g.size + x
}

// Coord converts a cell index to (x, y).
func (g *Grid) Coord(index int) Coord {
	return Coord{X: index % g.size, Y: index / g.size}
}

// InBounds reports whether index addresses a cell.
func (g *Grid) InBounds(index int) bool {
	return index >= 0 && index < len(g.cells)
}

// At returns the rune at index, or the zero rune when out of bounds.
func (g *Grid) At(index int) Rune {
	if !g.InBounds(index) {
		return Rune{}
	}
	return g.cells[index].Rune
}

// AtXY returns the rune at (x, y), or the zero rune when out of bounds.
func (g *Grid) AtXY(x, y int) Rune {
	if x < 0 || y < 0 || x >= g.size || y >= g.size {
		return Rune{}
	}
	return g.cells[g.Index(x, y)].Rune
}

// Set places r at index. Setting the zero rune empties the cell.
func (g *Grid) Set(index int, r Rune) {
	if g.InBounds(index) {
		g.cells[index].Rune = r
	}
}

// Clear empties the cell at index.
func (g *Grid) Clear(index int) {
	g.Set(index, Rune{})
}

// Swap exchanges the runes at a and b.
func (g *Grid) Swap(a, b int) {
	g.cells[a].Rune, g.cells[b].Rune = g.cells[b].Rune, g.cells[a].Rune
}

// Adjacent reports whether a and b are orthogonal neighbours.
func (g *Grid) Adjacent(a, b int) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	return g.Coord(a).Manhattan(g.Coord(b)) == 1
}

// IsBoundary reports whether index lies on the outer ring.
func (g *Grid) IsBoundary(index int) bool {
	if !g.InBounds(index) {
		return false
	}
	c := g.Coord(index)
	last := g.size - 1
	return c.X == 0 || c.Y == 0 || c.X == last || c.Y == last
}

// Full reports whether every cell holds a rune.
func (g *Grid) Full() bool {
	for _, c := range g.cells {
		if c.Empty() {
			return false
		}
	}
	return true
}

// Cells returns a copy of all cells in index order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Runes returns the runes in index order.
func (g *Grid) Runes() []Rune {
	out := make([]Rune, len(g.cells))
	for i, c := range g.cells {
		out[i] = c.Rune
	}
	return out
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	return &Grid{size: g.size, cells: g.Cells()}
}

// SameValues reports whether both grids hold the same element and level in
// every cell, ignoring identities.
func (g *Grid) SameValues(o *Grid) bool {
	if g.size != o.size {
		return false
	}
	for i := range g.cells {
		a, b := g.cells[i].Rune, o.cells[i].Rune
		if a.Element != b.Element || a.Level != b.Level {
			return false
		}
	}
	return true
}

// String renders the grid in board notation, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.size; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(g.AtXY(x, y).String())
		}
	}
	return sb.String()
}

// ParseGrid builds a grid from board notation rows such as
// "F1 F1 W1 F1 F1 E1". Runes receive sequential IDs "r0", "r1", ...
// so fixtures stay readable in failures.
func ParseGrid(rows []string) (*Grid, error) {
	size := len(rows)
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("engine: grid must have %d..%d rows, got %d", MinSize, MaxSize, size)
	}
	g := NewGrid(size)
	for y, row := range rows {
		fields := strings.Fields(row)
		if len(fields) != size {
			return nil, fmt.Errorf("engine: row %d has %d runes, want %d", y, len(fields), size)
		}
		for x, f := range fields {
			r, err := ParseRune(f)
			if err != nil {
				return nil, fmt.Errorf("engine: row %d col %d: %w", y, x, err)
			}
			idx := g.Index(x, y)
			r.ID = fmt.Sprintf("r%d", idx)
			g.Set(idx, r)
		}
	}
	return g, nil
}
