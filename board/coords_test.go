package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blockblast/piece"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		p    piece.Point
		want string
	}{
		{piece.Point{X: 0, Y: 0}, "A1"},
		{piece.Point{X: 7, Y: 7}, "H8"},
		{piece.Point{X: 2, Y: 3}, "C4"},
		{piece.Point{X: 8, Y: 0}, "?"},
		{piece.Point{X: -1, Y: -1}, "?"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.p))
		})
	}
}

func TestParseLabelRoundTrip(t *testing.T) {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			p := piece.Point{X: x, Y: y}
			got, err := ParseLabel(Label(p))
			require.NoError(t, err)
			assert.Equal(t, p, got)
		}
	}

	got, err := ParseLabel(" c4 ")
	require.NoError(t, err)
	assert.Equal(t, piece.Point{X: 2, Y: 3}, got)
}

func TestParseLabelInvalid(t *testing.T) {
	for _, label := range []string{"", "A", "I1", "A0", "A9", "1A", "Ax"} {
		_, err := ParseLabel(label)
		assert.Error(t, err, label)
	}
}
