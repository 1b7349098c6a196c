package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"blockblast/config"
	"blockblast/piece"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	// Current selection
	selectedEmptyColor int
	selectedLineColor  int
	editingLine        bool // true = editing line color, false = editing empty cell color
}

type paletteEntry struct {
	code int
	name string
}

// Empty cell colors (dark tones so pieces stand out)
var emptyColors = []paletteEntry{
	{232, "Black"},
	{233, "Near Black"},
	{234, "Charcoal"},
	{235, "Coal"},
	{236, "Dark Gray"},
	{237, "Slate"},
	{238, "Iron"},
	{17, "Navy Blue"},
	{18, "Deep Blue"},
	{22, "Dark Green"},
	{23, "Teal"},
	{52, "Dark Maroon"},
	{53, "Plum"},
	{54, "Purple"},
	{58, "Olive"},
	{94, "Saddle Brown"},
}

// Line colors for the grid text and coordinates
var lineColors = []paletteEntry{
	{240, "Gray"},
	{244, "Medium Gray"},
	{248, "Light Gray"},
	{252, "Silver"},
	{255, "White"},
	{109, "Steel Blue"},
	{110, "Sky"},
	{108, "Sage"},
	{144, "Khaki"},
	{180, "Tan"},
	{174, "Rose"},
	{60, "Muted Blue"},
}

// previewBlocks is the sample position drawn in the preview.
var previewBlocks = map[piece.Point]piece.Color{
	{X: 0, Y: 4}: piece.ColorRed,
	{X: 1, Y: 4}: piece.ColorRed,
	{X: 2, Y: 4}: piece.ColorRed,
	{X: 1, Y: 3}: piece.ColorRed,
	{X: 4, Y: 1}: piece.ColorCyan,
	{X: 4, Y: 2}: piece.ColorCyan,
	{X: 4, Y: 3}: piece.ColorCyan,
	{X: 4, Y: 4}: piece.ColorCyan,
	{X: 2, Y: 0}: piece.ColorLime,
	{X: 3, Y: 0}: piece.ColorLime,
	{X: 2, Y: 1}: piece.ColorLime,
	{X: 3, Y: 1}: piece.ColorLime,
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:                cfg,
		onDone:             onDone,
		selectedEmptyColor: cfg.Theme.Colors.EmptyColor,
		selectedLineColor:  cfg.Theme.Colors.LineColor,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.SetBorderColor(MenuColors.Border)
	cc.colorList.SetTitleColor(MenuColors.Title)
	cc.colorList.SetSelectedBackgroundColor(MenuColors.Selected)
	cc.colorList.SetMainTextColor(MenuColors.Label)
	cc.colorList.ShowSecondaryText(false)

	cc.populateColorList()

	// Moving through the list previews the color
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.preselect(index)
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.Apply(index)
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetBorderColor(MenuColors.Border)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetTitleColor(MenuColors.TitleAccent)
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 34, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) entries() []paletteEntry {
	if cc.editingLine {
		return lineColors
	}
	return emptyColors
}

func (cc *ColorConfigUI) preselect(index int) {
	entries := cc.entries()
	if index < 0 || index >= len(entries) {
		return
	}
	if cc.editingLine {
		cc.selectedLineColor = entries[index].code
	} else {
		cc.selectedEmptyColor = entries[index].code
	}
}

// Apply stores the color at index in the config. Picking a line color switches
// back to the empty color list; picking an empty color finishes the screen.
func (cc *ColorConfigUI) Apply(index int) {
	entries := cc.entries()
	if index < 0 || index >= len(entries) {
		return
	}
	cc.preselect(index)

	if cc.editingLine {
		cc.cfg.Theme.Colors.LineColor = cc.selectedLineColor
		cc.save()
		cc.editingLine = false
		cc.populateColorList()
		return
	}

	cc.cfg.Theme.Colors.EmptyColor = cc.selectedEmptyColor
	cc.cfg.Theme.Colors.EmptyColorAlt = altShade(cc.selectedEmptyColor)
	cc.save()
	if cc.onDone != nil {
		cc.onDone()
	}
}

func (cc *ColorConfigUI) save() {
	if err := cc.cfg.Save(); err != nil {
		debugLog.Printf("save config: %s", err)
	}
}

// altShade returns the checkerboard partner of a palette color. Grayscale
// colors get the next lighter step, everything else is used as-is.
func altShade(code int) int {
	if code >= 232 && code < 255 {
		return code + 1
	}
	return code
}

// populateColorList fills the list with appropriate colors based on editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	current := cc.selectedEmptyColor
	if cc.editingLine {
		cc.colorList.SetTitle(" Select Line Color (Tab: switch to cells) ")
		current = cc.selectedLineColor
	} else {
		cc.colorList.SetTitle(" Select Cell Color (Tab: switch to line) ")
	}

	for i, c := range cc.entries() {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range cc.entries() {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	const size = 6

	if width < 20 || height < 10 {
		return x, y, width, height
	}

	empty := tcell.PaletteColor(cc.selectedEmptyColor)
	emptyAlt := tcell.PaletteColor(altShade(cc.selectedEmptyColor))
	line := tcell.PaletteColor(cc.selectedLineColor)
	symbols := cc.cfg.Theme.Symbols

	startX := x + 4
	startY := y + 1

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			bg := empty
			if (col%2 + row%2) == 1 {
				bg = emptyAlt
			}
			style := tcell.StyleDefault.Background(bg).Foreground(line)
			r, fill := symbols.Empty, ' '
			if c, ok := previewBlocks[piece.Point{X: col, Y: row}]; ok {
				style = style.Foreground(PieceColor(c))
				r, fill = symbols.Block, symbols.Block
			}
			drawCell(screen, style, r, fill, col, row, startX, startY)
		}
		screen.SetContent(startX-2, startY+row, rune('1'+row), nil, tcell.StyleDefault.Foreground(line))
	}
	for col := 0; col < size; col++ {
		screen.SetContent(startX+col*2, startY+size+1, rune('A'+col), nil, tcell.StyleDefault.Foreground(line))
	}

	info := fmt.Sprintf("Cells: %d  Line: %d", cc.selectedEmptyColor, cc.selectedLineColor)
	if cc.editingLine {
		info = fmt.Sprintf("Line: %d  Cells: %d", cc.selectedLineColor, cc.selectedEmptyColor)
	}
	infoStyle := tcell.StyleDefault.Foreground(MenuColors.Hint)
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+3, ch, nil, infoStyle)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between empty cell color and line color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingLine = !cc.editingLine
	cc.populateColorList()
}
