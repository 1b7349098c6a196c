package piece

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	require.Len(t, Catalog, 10)
	require.Len(t, Palette, 10)

	seen := make(map[string]bool)
	for _, s := range Catalog {
		assert.False(t, seen[s.String()], "duplicate shape %s", s)
		seen[s.String()] = true

		for _, p := range s {
			assert.GreaterOrEqual(t, p.X, 0, "shape %s", s)
			assert.GreaterOrEqual(t, p.Y, 0, "shape %s", s)
		}
	}

	for _, c := range Palette {
		assert.NotEqual(t, ColorNone, c)
	}
}

func TestShapeSize(t *testing.T) {
	tests := []struct {
		shape Shape
		w, h  int
	}{
		{Catalog[0], 1, 1},
		{Catalog[2], 3, 1},
		{Catalog[4], 1, 3},
		{Catalog[5], 2, 2},
		{Catalog[8], 3, 2},
		{Catalog[9], 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			w, h := tt.shape.Size()
			assert.Equal(t, tt.w, w)
			assert.Equal(t, tt.h, h)
		})
	}
}

func TestShapeEqual(t *testing.T) {
	a := Shape{{0, 0}, {1, 0}, {0, 1}}
	b := Shape{{0, 1}, {0, 0}, {1, 0}}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(Catalog[5]))
	assert.False(t, a.Equal(Catalog[2]))
}

func TestShapeRender(t *testing.T) {
	assert.Equal(t, "XXX\n X", Catalog[7].Render())
	assert.Equal(t, " X\nXX\nX", Catalog[9].Render())
}

func TestPieceCells(t *testing.T) {
	p := Piece{Shape: Catalog[6], Color: ColorRed}
	assert.Equal(t, []Point{{3, 4}, {4, 4}, {3, 5}}, p.Cells(Point{3, 4}))
}

func TestColorString(t *testing.T) {
	names := []string{"red", "green", "blue", "yellow", "purple", "orange", "cyan", "magenta", "lime", "pink"}
	for i, c := range Palette {
		assert.Equal(t, names[i], c.String())
	}
	assert.Equal(t, "none", ColorNone.String())
	assert.Equal(t, "unknown", Color(42).String())
}

func TestGeneratorDeterministic(t *testing.T) {
	a := NewSeededGenerator(7).Hand(30)
	b := NewSeededGenerator(7).Hand(30)
	assert.Equal(t, a, b)
}

func TestGeneratorHand(t *testing.T) {
	g := NewGenerator(rand.NewSource(1))

	hand := g.Hand(3)
	require.Len(t, hand, 3)
	assert.Empty(t, g.Hand(0))

	assert.Panics(t, func() { g.Hand(-1) })
}

func TestGeneratorCoversCatalog(t *testing.T) {
	g := NewSeededGenerator(42)

	shapes := make(map[string]int)
	colors := make(map[Color]int)
	for i := 0; i < 2000; i++ {
		p := g.Next()
		shapes[p.Shape.String()]++
		colors[p.Color]++
	}

	assert.Len(t, shapes, len(Catalog), fmt.Sprintf("shapes drawn: %v", shapes))
	assert.Len(t, colors, len(Palette), fmt.Sprintf("colors drawn: %v", colors))
	assert.Zero(t, colors[ColorNone])
}
