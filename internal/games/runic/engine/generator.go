package engine

import (
	"math/rand"
	"strconv"

	"github.com/google/uuid"
)

// Generator produces new level-1 runes for initial fill and refill.
type Generator interface {
	Generate() Rune
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func() Rune

// Generate calls f.
func (f GeneratorFunc) Generate() Rune {
	return f()
}

// RandomGenerator draws a uniformly random element at level 1 and gives
// each rune a UUID. With a seeded source the whole sequence, IDs included,
// is reproducible.
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator creates a generator backed by rng.
func NewRandomGenerator(rng *rand.Rand) *RandomGenerator {
	return &RandomGenerator{rng: rng}
}

// Generate returns a fresh level-1 rune.
func (g *RandomGenerator) Generate() Rune {
	e := Elements[g.rng.Intn(ElementCount)]
	return Rune{ID: g.newID(), Element: e, Level: LevelEssence}
}

func (g *RandomGenerator) newID() string {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Sequence returns a Generator that cycles through the given elements at
// level 1 with IDs "g0", "g1", ...
func Sequence(elements ...Element) Generator {
	n := 0
	return GeneratorFunc(func() Rune {
		e := elements[n%len(elements)]
		r := Rune{ID: "g" + strconv.Itoa(n), Element: e, Level: LevelEssence}
		n++
		return r
	})
}

