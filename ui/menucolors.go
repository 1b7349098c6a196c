package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the palette for the setup and color screens.
var MenuColors = struct {
	Border      tcell.Color // Muted blue-gray for borders
	Title       tcell.Color // Bright white for titles
	TitleAccent tcell.Color // Blue accent for the preview title
	Label       tcell.Color // Light gray for labels and list text
	Hint        tcell.Color // Dim gray for hints
	Selected    tcell.Color // Bright blue for the selected list item
	ButtonBG    tcell.Color // Button background
	ButtonText  tcell.Color // Button text
}{
	Border:      tcell.PaletteColor(60),
	Title:       tcell.PaletteColor(255),
	TitleAccent: tcell.PaletteColor(109),
	Label:       tcell.PaletteColor(250),
	Hint:        tcell.PaletteColor(245),
	Selected:    tcell.PaletteColor(109),
	ButtonBG:    tcell.PaletteColor(60),
	ButtonText:  tcell.PaletteColor(255),
}
