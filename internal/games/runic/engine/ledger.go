package engine

// Key identifies a rune value in the ledgers.
type Key struct {
	Element Element
	Level   Level
}

// Ledger counts runes per element and level.
//
// The engine keeps two: Forged counts upgrades produced by merges during
// the current session, and Collection counts every rune ever produced
// (spawned level-1 runes and upgrades alike), so a non-zero entry means the
// value has been unlocked.
type Ledger [ElementCount][MaxLevel + 1]int

// Add increments the count for k.
func (l *Ledger) Add(k Key) {
	if int(k.Element) < ElementCount && k.Level.Valid() {
		l[k.Element][k.Level]++
	}
}

// Count returns the count for element e at level lv.
func (l *Ledger) Count(e Element, lv Level) int {
	if int(e) >= ElementCount || !lv.Valid() {
		return 0
	}
	return l[e][lv]
}

// Unlocked reports whether e at lv has been produced at least once.
func (l *Ledger) Unlocked(e Element, lv Level) bool {
	return l.Count(e, lv) > 0
}

// LevelTotal sums the counts of all elements at lv.
func (l *Ledger) LevelTotal(lv Level) int {
	total := 0
	for _, e := range Elements {
		total += l.Count(e, lv)
	}
	return total
}

// Total sums all counts.
func (l *Ledger) Total() int {
	total := 0
	for _, lv := range Levels {
		total += l.LevelTotal(lv)
	}
	return total
}

// UnlockedCount returns how many of the element×level values are unlocked.
func (l *Ledger) UnlockedCount() int {
	n := 0
	for _, e := range Elements {
		for _, lv := range Levels {
			if l.Unlocked(e, lv) {
				n++
			}
		}
	}
	return n
}
