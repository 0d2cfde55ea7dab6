package engine

// applyGravity compacts every column downward, preserving the relative
// order of surviving runes, and fills the vacated top cells with fresh
// runes from gen. It returns the fall and spawn events in column order.
func applyGravity(g *Grid, gen Generator) []Event {
	n := g.Size()
	var events []Event

	for x := 0; x < n; x++ {
		// Walk from the bottom, writing survivors into the lowest free slot.
		write := n - 1
		for y := n - 1; y >= 0; y-- {
			idx := g.Index(x, y)
			r := g.At(idx)
			if r.IsZero() {
				continue
			}
			if y != write {
				dst := g.Index(x, write)
				g.Set(dst, r)
				g.Clear(idx)
				events = append(events, Event{Kind: EventFell, Index: dst, Other: idx, Rune: r})
			}
			write--
		}

		for y := 0; y <= write; y++ {
			idx := g.Index(x, y)
			r := gen.Generate()
			g.Set(idx, r)
			events = append(events, Event{Kind: EventSpawned, Index: idx, Other: idx, Rune: r})
		}
	}
	return events
}
