package engine

// Scoring holds the point values of the engine.
type Scoring struct {
	// Points is the base value per rune for a merge at each level.
	// Index 0 is unused.
	Points [MaxLevel + 1]int
	// BlastBonus is added to every top-level detonation on top of one point
	// per blasted cell.
	BlastBonus int
	// DiscardBonus is awarded for discarding a top-level rune.
	DiscardBonus int
	// HighTier is the lowest merge result level flagged as high tier.
	HighTier Level
}

// DefaultScoring returns the standard point table.
func DefaultScoring() Scoring {
	return Scoring{
		Points:       [MaxLevel + 1]int{0, 1, 2, 3, 4, 5},
		BlastBonus:   10,
		DiscardBonus: 10,
		HighTier:     LevelCrystal,
	}
}

// Base returns the per-rune merge value at level l.
func (s Scoring) Base(l Level) int {
	if !l.Valid() {
		return 0
	}
	return s.Points[l]
}

func (s Scoring) isZero() bool {
	return s == Scoring{}
}
