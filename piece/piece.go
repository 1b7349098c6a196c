// Package piece defines the polyomino shapes, colors and hands used by blockblast.
package piece

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Point is a grid coordinate. X is the column and Y is the row, origin top-left.
type Point struct {
	X, Y int
}

// Add returns p shifted by o.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

func (p Point) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(p.X))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(p.Y))
	b.WriteRune(')')
	return b.String()
}

// Shape is a set of offsets relative to an anchor cell. Shapes from the
// catalog are never modified.
type Shape []Point

// Len returns the number of cells the shape covers.
func (s Shape) Len() int { return len(s) }

// Size returns the width and height of the shape's bounding box.
func (s Shape) Size() (int, int) {
	var x, y int
	for _, p := range s {
		if p.X > x {
			x = p.X
		}
		if p.Y > y {
			y = p.Y
		}
	}
	return x + 1, y + 1
}

// HasPoint reports whether the shape covers offset p.
func (s Shape) HasPoint(p Point) bool {
	return slices.Contains(s, p)
}

// Equal reports whether both shapes cover the same offsets.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for _, p := range other {
		if !s.HasPoint(p) {
			return false
		}
	}
	return true
}

func (s Shape) String() string {
	var b strings.Builder
	for i, p := range s {
		if i > 0 {
			b.WriteRune(',')
		}
		b.WriteString(p.String())
	}
	return b.String()
}

// Render draws the shape top row first, X for covered cells.
func (s Shape) Render() string {
	var b strings.Builder
	w, h := s.Size()
	for y := 0; y < h; y++ {
		line := make([]rune, w)
		for x := 0; x < w; x++ {
			line[x] = ' '
			if s.HasPoint(Point{x, y}) {
				line[x] = 'X'
			}
		}
		b.WriteString(strings.TrimRight(string(line), " "))
		if y < h-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

// Piece is a shape paired with the color it paints onto the board.
type Piece struct {
	Shape Shape
	Color Color
}

// Cells returns the board cells the piece covers when anchored at anchor.
func (p Piece) Cells(anchor Point) []Point {
	cells := make([]Point, len(p.Shape))
	for i, o := range p.Shape {
		cells[i] = anchor.Add(o)
	}
	return cells
}

func (p Piece) String() string {
	return p.Color.String() + " " + p.Shape.String()
}
