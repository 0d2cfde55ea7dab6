// Package engine implements the Runic Synthesis board: a square grid of
// elemental runes that are swapped, matched in runs of three or more,
// merged into higher levels, detonated at the top level, and refilled from
// above until the board settles.
//
// The engine has no notion of time. Each resolution phase is a discrete
// step the caller can drive at its own pace, or run to completion at once.
package engine

import (
	"fmt"
	"strings"
)

// Element is the elemental type of a rune.
type Element uint8

const (
	Fire Element = iota
	Water
	Wood
	Earth
	Lightning
)

// ElementCount is the number of distinct elements.
const ElementCount = 5

// Elements lists all elements in display order.
var Elements = [ElementCount]Element{Fire, Water, Wood, Earth, Lightning}

var elementNames = [ElementCount]string{"Fire", "Water", "Wood", "Earth", "Lightning"}

// Element codes used in board notation: F1, W3, T2 (wood, "tree"), E1, L5.
var elementCodes = [ElementCount]byte{'F', 'W', 'T', 'E', 'L'}

// String returns the element name.
func (e Element) String() string {
	if int(e) < ElementCount {
		return elementNames[e]
	}
	return fmt.Sprintf("Element(%d)", e)
}

// Code returns the single-letter board notation for the element.
func (e Element) Code() byte {
	if int(e) < ElementCount {
		return elementCodes[e]
	}
	return '?'
}

// ParseElement accepts an element name or its one-letter code.
func ParseElement(s string) (Element, error) {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		for i, c := range elementCodes {
			if strings.EqualFold(s, string(c)) {
				return Element(i), nil
			}
		}
	}
	for i, name := range elementNames {
		if strings.EqualFold(s, name) {
			return Element(i), nil
		}
	}
	return 0, fmt.Errorf("engine: unknown element %q", s)
}

// Level is a rune tier, 1 (lowest) through MaxLevel.
type Level uint8

const (
	LevelEssence   Level = 1
	LevelGem       Level = 2
	LevelCrystal   Level = 3
	LevelGrimoire  Level = 4
	LevelSoulblade Level = 5
)

// MaxLevel is the highest tier. Matches at this tier detonate.
const MaxLevel = LevelSoulblade

// Levels lists all levels in ascending order.
var Levels = [MaxLevel]Level{LevelEssence, LevelGem, LevelCrystal, LevelGrimoire, LevelSoulblade}

var levelNames = [MaxLevel + 1]string{"", "Essence", "Gem", "Crystal", "Grimoire", "Soulblade"}

// Valid reports whether l is within 1..MaxLevel.
func (l Level) Valid() bool {
	return l >= LevelEssence && l <= MaxLevel
}

// String returns the tier name.
func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", l)
}

// Rune is one game piece. Identity (ID) is distinct from value
// (Element, Level): an upgraded rune is a new rune with a fresh ID.
// The zero Rune marks an empty cell.
type Rune struct {
	ID      string
	Element Element
	Level   Level
}

// IsZero reports whether r is the empty rune.
func (r Rune) IsZero() bool {
	return r.Level == 0
}

// SameValue reports whether two runes share element and level.
func (r Rune) SameValue(o Rune) bool {
	return !r.IsZero() && r.Element == o.Element && r.Level == o.Level
}

// Key returns the (element, level) pair used by the ledgers.
func (r Rune) Key() Key {
	return Key{Element: r.Element, Level: r.Level}
}

// String returns board notation such as "F1" or ".." for empty.
func (r Rune) String() string {
	if r.IsZero() {
		return ".."
	}
	return fmt.Sprintf("%c%d", r.Element.Code(), r.Level)
}

// ParseRune parses board notation like "F1" or "L5". The returned rune has
// no ID.
func ParseRune(s string) (Rune, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Rune{}, fmt.Errorf("engine: bad rune notation %q", s)
	}
	e, err := ParseElement(s[:1])
	if err != nil {
		return Rune{}, err
	}
	l := Level(s[1] - '0')
	if !l.Valid() {
		return Rune{}, fmt.Errorf("engine: bad rune level in %q", s)
	}
	return Rune{Element: e, Level: l}, nil
}
