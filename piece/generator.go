package piece

import (
	"fmt"
	"math/rand"
)

// Generator deals pieces from the catalog. The source of randomness is
// supplied by the caller so a fixed seed replays the same pieces.
type Generator struct {
	r *rand.Rand
}

// NewGenerator returns a generator drawing from src.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{r: rand.New(src)}
}

// NewSeededGenerator returns a generator drawing from a source seeded with seed.
func NewSeededGenerator(seed int64) *Generator {
	return NewGenerator(rand.NewSource(seed))
}

// Next deals one piece. Shape and color are drawn independently and uniformly.
func (g *Generator) Next() Piece {
	shape := Catalog[g.r.Intn(len(Catalog))]
	color := Palette[g.r.Intn(len(Palette))]
	return Piece{Shape: shape, Color: color}
}

// Hand deals n pieces. Duplicates are allowed.
func (g *Generator) Hand(n int) []Piece {
	if n < 0 {
		panic(fmt.Sprintf("piece: invalid hand size %d", n))
	}
	hand := make([]Piece, n)
	for i := range hand {
		hand[i] = g.Next()
	}
	return hand
}
