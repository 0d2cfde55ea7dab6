package engine

// resolveCluster applies one cluster to the grid and records the result in
// rep. Every cluster of a pass is applied in full; before is the grid as it
// was when the pass was detected, and mutations of earlier clusters in the
// same pass are overwritten where they overlap.
func (e *Engine) resolveCluster(c Cluster, before *Grid, rep *Report) {
	if c.Level >= MaxLevel {
		e.blast(c, rep)
		return
	}
	e.merge(c, before, rep)
}

// merge consumes the first and last runes of the cluster (by index) and
// upgrades every rune in between to the next level with a fresh identity.
func (e *Engine) merge(c Cluster, before *Grid, rep *Report) {
	last := len(c.Indices) - 1
	next := c.Level + 1

	for i, idx := range c.Indices {
		old := before.At(idx)
		if i == 0 || i == last {
			e.grid.Clear(idx)
			rep.Events = append(rep.Events, Event{Kind: EventRemoved, Index: idx, Other: idx, Rune: old})
			continue
		}
		up := Rune{ID: e.newID(), Element: c.Element, Level: next}
		e.grid.Set(idx, up)
		e.flags[idx] |= FlagMerged
		e.forged.Add(up.Key())
		e.collection.Add(up.Key())
		rep.Events = append(rep.Events, Event{Kind: EventUpgraded, Index: idx, Other: idx, Rune: up})
	}

	rep.ScoreDelta += e.opts.Scoring.Base(c.Level) * c.Len()
	if next >= e.opts.Scoring.HighTier {
		rep.HighTier = true
	}
}

// blast detonates a top-level cluster. A cluster confined to one row clears
// that row, one confined to a column clears that column, and anything else
// clears every row and column it touches. Each cell of the blast set scores
// one point, including cells an earlier cluster of the pass already emptied.
func (e *Engine) blast(c Cluster, rep *Report) {
	rows := make(map[int]bool)
	cols := make(map[int]bool)
	for _, idx := range c.Indices {
		p := e.grid.Coord(idx)
		rows[p.Y] = true
		cols[p.X] = true
	}
	switch {
	case len(rows) == 1:
		cols = nil
	case len(cols) == 1:
		rows = nil
	}

	cells := 0
	for idx := 0; idx < e.grid.Len(); idx++ {
		p := e.grid.Coord(idx)
		if !rows[p.Y] && !cols[p.X] {
			continue
		}
		cells++
		old := e.grid.At(idx)
		if old.IsZero() {
			continue
		}
		e.grid.Clear(idx)
		e.flags[idx] &^= FlagMerged
		rep.Events = append(rep.Events, Event{Kind: EventBlasted, Index: idx, Other: idx, Rune: old})
	}

	rep.ScoreDelta += e.opts.Scoring.BlastBonus + cells
	rep.HighTier = true
}
