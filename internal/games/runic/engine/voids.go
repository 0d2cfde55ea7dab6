package engine

import "fmt"

// Side is an edge of the board.
type Side uint8

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// VoidSlot is one of the external slots ringing the board. Offset is the
// column for top and bottom slots and the row for left and right ones.
type VoidSlot struct {
	Side   Side
	Offset int
}

// String returns a slot label such as "top-2".
func (v VoidSlot) String() string {
	return fmt.Sprintf("%s-%d", v.Side, v.Offset)
}

// VoidSlots returns the void slots a cell touches in its outward normal
// directions. Interior cells touch none; corners touch two.
func (g *Grid) VoidSlots(index int) []VoidSlot {
	if !g.InBounds(index) {
		return nil
	}
	p := g.Coord(index)
	last := g.size - 1

	var slots []VoidSlot
	if p.Y == 0 {
		slots = append(slots, VoidSlot{Side: SideTop, Offset: p.X})
	}
	if p.Y == last {
		slots = append(slots, VoidSlot{Side: SideBottom, Offset: p.X})
	}
	if p.X == 0 {
		slots = append(slots, VoidSlot{Side: SideLeft, Offset: p.Y})
	}
	if p.X == last {
		slots = append(slots, VoidSlot{Side: SideRight, Offset: p.Y})
	}
	return slots
}

// SlotCell returns the cell index adjacent to a void slot, or -1 when the
// slot is outside the board.
func (g *Grid) SlotCell(v VoidSlot) int {
	if v.Offset < 0 || v.Offset >= g.size {
		return -1
	}
	last := g.size - 1
	switch v.Side {
	case SideTop:
		return g.Index(v.Offset, 0)
	case SideBottom:
		return g.Index(v.Offset, last)
	case SideLeft:
		return g.Index(0, v.Offset)
	case SideRight:
		return g.Index(last, v.Offset)
	default:
		return -1
	}
}
