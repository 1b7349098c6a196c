// Package ui specifies custom controls for tview to play blockblast in the terminal.
package ui

import (
	"fmt"
	"io"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"blockblast/board"
	"blockblast/config"
	"blockblast/engine"
	"blockblast/piece"
	"blockblast/types"
)

var debugLog = log.New(io.Discard, "", log.Ltime|log.Lmicroseconds)

// SetDebugLog sends UI debug output to w.
func SetDebugLog(w io.Writer) {
	debugLog.SetOutput(w)
}

type BoardUI struct {
	Box       *tview.Box
	State     *types.GameState
	hint      *tview.TextView
	cfg       *config.Config
	selX      int
	selY      int
	selected  int
	status    string
	app       *tview.Application
	session   *engine.Session
	styles    []tcell.Color
	infoPanel *GameInfoPanel
	focusMode bool
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *BoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *BoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *BoardUI) IsFocusMode() bool {
	return g.focusMode
}

func (g *BoardUI) SelectedTile() *types.BoardPos {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &types.BoardPos{X: g.selX, Y: g.selY}
}

// SelectedPiece returns the hand index of the piece being placed.
func (g *BoardUI) SelectedPiece() int {
	return g.selected
}

func (g *BoardUI) MoveSelection(h, v int) {
	if g.State.Finished() {
		g.ResetSelection()
		return
	}
	prevTile := g.SelectedTile()
	if prevTile == nil {
		g.selX = g.State.LastMove.X
		g.selY = g.State.LastMove.Y
		if g.SelectedTile() == nil {
			// No piece placed yet, start in the top-left corner
			g.selX, g.selY = 0, 0
		}
		return
	}
	if g.selX+h < 0 || g.selX+h >= g.State.Width() {
		return
	}
	if g.selY+v < 0 || g.selY+v >= g.State.Height() {
		return
	}
	g.selX += h
	g.selY += v
}

func (g *BoardUI) ResetSelection() {
	g.selX = -1
	g.selY = -1
}

// SelectPiece picks hand[index] for placement. Out of range indexes are ignored.
func (g *BoardUI) SelectPiece(index int) {
	if index < 0 || index >= len(g.State.Hand) {
		return
	}
	g.selected = index
	g.status = ""
	g.refreshHint()
}

// CyclePiece selects the next piece in the hand, wrapping around.
func (g *BoardUI) CyclePiece() {
	if len(g.State.Hand) == 0 {
		return
	}
	g.SelectPiece((g.selected + 1) % len(g.State.Hand))
}

func NewBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *BoardUI {
	b := &BoardUI{
		Box:   tview.NewBox(),
		State: types.NewGameState(),
		hint:  hint,
		app:   app,
		selX:  -1,
		selY:  -1,
	}
	b.SetConfig(c)
	b.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		// 2 characters per cell for square appearance
		boardW, boardH := b.State.Width()*2, b.State.Height()
		preview := b.previewCells()
		fits := b.previewFits()

		for boardY := 0; boardY < b.State.Height(); boardY++ {
			for boardX := 0; boardX < b.State.Width(); boardX++ {
				cell := b.State.Grid[boardY][boardX]
				p := piece.Point{X: boardX, Y: boardY}

				bg := b.styles[0]
				if (boardX%2 + boardY%2) == 1 {
					bg = b.styles[1]
				}
				if boardX == b.State.LastMove.X && boardY == b.State.LastMove.Y && b.cfg.Theme.DrawLastPlacedBackground {
					bg = b.styles[6]
				}
				if boardX == b.selX && boardY == b.selY && b.cfg.Theme.DrawCursorBackground {
					bg = b.styles[3]
				}

				style := tcell.StyleDefault.Background(bg).Foreground(b.styles[2])
				drawRune := b.cfg.Theme.Symbols.Empty
				fill := ' '

				if cell != piece.ColorNone {
					style = style.Foreground(PieceColor(cell))
					drawRune = b.cfg.Theme.Symbols.Block
					fill = drawRune
				}

				if preview[p] {
					if fits {
						style = style.Foreground(b.styles[4])
					} else {
						style = style.Foreground(b.styles[5])
					}
					drawRune = b.cfg.Theme.Symbols.Preview
					fill = drawRune
				}

				drawCell(screen, style, drawRune, fill, boardX, boardY, x+4, y)
			}
		}
		drawCoordinates(screen, x, y, b)
		// Add offset for coordinate display
		return x, y, boardW + 4, boardH + 2
	})
	return b
}

// previewCells returns the cells the selected piece would cover at the cursor.
func (g *BoardUI) previewCells() map[piece.Point]bool {
	cells := make(map[piece.Point]bool)
	if g.State.Finished() || g.SelectedTile() == nil || g.selected >= len(g.State.Hand) {
		return cells
	}
	for _, c := range g.State.Hand[g.selected].Cells(piece.Point{X: g.selX, Y: g.selY}) {
		if board.InBounds(c) {
			cells[c] = true
		}
	}
	return cells
}

func (g *BoardUI) previewFits() bool {
	if g.session == nil || g.SelectedTile() == nil {
		return false
	}
	return g.session.CanPlace(g.selected, piece.Point{X: g.selX, Y: g.selY})
}

// ConnectSession attaches the board to a game session.
func (g *BoardUI) ConnectSession(s *engine.Session) {
	g.session = s
	g.selected = 0
	g.status = ""

	s.OnScore(func(score int) {
		debugLog.Printf("score: %d", score)
	})

	s.OnGameOver(func(score, highScore int, newRecord bool) {
		debugLog.Printf("game over: score=%d high=%d record=%v", score, highScore, newRecord)
		g.ResetSelection()
	})

	g.sync()
}

// sync copies the session state into the widget and redraws.
func (g *BoardUI) sync() {
	g.State = g.session.State()
	if g.selected >= len(g.State.Hand) {
		g.selected = 0
	}
	g.refreshHint()
	if g.app == nil {
		return
	}
	// Spawn goroutine to avoid deadlock when called from main thread
	go func() {
		g.app.QueueUpdateDraw(func() {})
	}()
}

// PlacePiece places the selected piece with its anchor at the cursor.
func (g *BoardUI) PlacePiece() {
	if g.session == nil || g.session.GameOver() {
		return
	}
	tile := g.SelectedTile()
	if tile == nil {
		return
	}

	label := board.Label(tile.Point())
	out, err := g.session.AttemptPlacement(g.selected, tile.Point())
	debugLog.Printf("place hand[%d] at %s: %s", g.selected, label, out)

	switch {
	case err != nil:
		g.status = fmt.Sprintf("High score not saved: %s", err)
	case out == engine.Rejected:
		g.status = fmt.Sprintf("Does not fit at %s", label)
	default:
		g.status = ""
		if rows, cols := g.session.LastClear(); rows+cols > 0 {
			g.status = fmt.Sprintf("Cleared %d line(s) +%d", rows+cols, (rows+cols)*engine.LineBonus)
		}
		g.selected = 0
	}
	g.sync()
}

// Restart starts a new game on the connected session.
func (g *BoardUI) Restart() {
	if g.session == nil {
		return
	}
	g.session.Restart()
	debugLog.Printf("restart")
	g.selected = 0
	g.status = ""
	g.ResetSelection()
	g.sync()
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.EmptyColor),    // 0
		tcell.PaletteColor(c.Theme.Colors.EmptyColorAlt), // 1
		tcell.PaletteColor(c.Theme.Colors.LineColor),     // 2
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG), // 3
		tcell.PaletteColor(c.Theme.Colors.PreviewOK),     // 4
		tcell.PaletteColor(c.Theme.Colors.PreviewBad),    // 5
		tcell.PaletteColor(c.Theme.Colors.LastPlacedBG),  // 6
	}
	g.cfg = c
}

func (g *BoardUI) refreshHint() {
	// Update info panel if available
	if g.infoPanel != nil {
		g.infoPanel.SetState(g.State, g.selected)
	}

	// Focus mode shows minimal hint
	if g.focusMode {
		g.hint.SetText(fmt.Sprintf("  Score %d   f to toggle", g.State.Score))
		return
	}

	var statusLine, controlsLine string

	if g.State.Finished() {
		statusLine = fmt.Sprintf("  ■ Game over · score %d · best %d", g.State.Score, g.State.HighScore)
		if g.State.NewRecord {
			statusLine += " · new record!"
		}
		controlsLine = "\n  r/⏎ restart   q quit"
	} else {
		statusLine = fmt.Sprintf("  Score %d · best %d", g.State.Score, g.State.HighScore)
		if g.status != "" {
			statusLine += "   " + g.status
		}
		controlsLine = "\n  hjkl/↑↓←→ move  1-3/tab piece  ⏎ place  r restart  f focus  q quit"
	}

	g.hint.SetText(statusLine + controlsLine)
}

// IsFinished returns true if the game is over.
func (g *BoardUI) IsFinished() bool {
	return g.State.Finished()
}

// PieceColor maps a piece color to the terminal color it is drawn with.
func PieceColor(c piece.Color) tcell.Color {
	switch c {
	case piece.ColorRed:
		return tcell.ColorRed
	case piece.ColorGreen:
		return tcell.ColorGreen
	case piece.ColorBlue:
		return tcell.ColorBlue
	case piece.ColorYellow:
		return tcell.ColorYellow
	case piece.ColorPurple:
		return tcell.ColorPurple
	case piece.ColorOrange:
		return tcell.ColorOrange
	case piece.ColorCyan:
		return tcell.ColorAqua
	case piece.ColorMagenta:
		return tcell.ColorFuchsia
	case piece.ColorLime:
		return tcell.ColorLime
	case piece.ColorPink:
		return tcell.ColorPink
	default:
		return tcell.ColorDefault
	}
}

// drawCell draws a board cell (2 characters wide)
func drawCell(s tcell.Screen, c tcell.Style, r, fill rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, fill, nil, c)
}

func drawCoordinates(s tcell.Screen, x, y int, ui *BoardUI) {
	w, h := ui.State.Width(), ui.State.Height()

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[3])

	for ix := 0; ix < w; ix++ {
		_style := style
		if ix == ui.selX {
			_style = highlight
		}
		// 2-char cells
		s.SetContent(x+4+(ix*2), y+h+1, rune('A'+ix), nil, _style)
		s.SetContent(x+4+(ix*2)+1, y+h+1, ' ', nil, _style)
	}

	for iy := 0; iy < h; iy++ {
		_style := style
		if iy == ui.selY {
			_style = highlight
		}
		s.SetContent(x+2, y+iy, rune('1'+iy), nil, _style)
	}
}
