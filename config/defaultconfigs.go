package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlacedBackground: false,
		Colors: ConfigColors{
			EmptyColor:    236,
			EmptyColorAlt: 237,
			LineColor:     240,
			CursorColorBG: 4,
			PreviewOK:     2,
			PreviewBad:    1,
			LastPlacedBG:  238,
		},
		Symbols: ConfigSymbols{
			Block:   '█',
			Empty:   '·',
			Preview: '▒',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameConfig{
			Seed:          0,
			HighScorePath: "",
			SaveHighScore: true,
		},
	}
}
