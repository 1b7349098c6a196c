package piece

// Catalog holds every shape a hand can be dealt.
var Catalog = []Shape{
	{{0, 0}},
	{{0, 0}, {1, 0}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 0}, {0, 1}},
	{{0, 0}, {0, 1}, {0, 2}},
	{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	{{0, 0}, {1, 0}, {0, 1}},
	{{0, 0}, {1, 0}, {2, 0}, {1, 1}},
	{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
}

// Color identifies the paint of an occupied cell. ColorNone marks an empty cell.
type Color int

const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple
	ColorOrange
	ColorCyan
	ColorMagenta
	ColorLime
	ColorPink
)

// Palette holds every color a piece can be dealt with.
var Palette = []Color{
	ColorRed,
	ColorGreen,
	ColorBlue,
	ColorYellow,
	ColorPurple,
	ColorOrange,
	ColorCyan,
	ColorMagenta,
	ColorLime,
	ColorPink,
}

func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorOrange:
		return "orange"
	case ColorCyan:
		return "cyan"
	case ColorMagenta:
		return "magenta"
	case ColorLime:
		return "lime"
	case ColorPink:
		return "pink"
	default:
		return "unknown"
	}
}
