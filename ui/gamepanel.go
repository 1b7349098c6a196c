package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"blockblast/board"
	"blockblast/piece"
	"blockblast/types"
)

// GameInfoPanel displays the score and the pieces in hand alongside the board.
type GameInfoPanel struct {
	box      *tview.TextView
	state    *types.GameState
	selected int
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetState updates the panel with the current game state and selected piece.
func (p *GameInfoPanel) SetState(state *types.GameState, selected int) {
	p.state = state
	p.selected = selected
	p.box.SetText(p.text())
}

func (p *GameInfoPanel) text() string {
	if p.state == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("[white::b]Score[-:-:-]\n")
	b.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	fmt.Fprintf(&b, "[white]Score:[-:-:-] %d\n", p.state.Score)
	fmt.Fprintf(&b, "[white]Best:[-:-:-]  %d\n", p.state.HighScore)
	if p.state.LastMove.X >= 0 {
		last := board.Label(piece.Point{X: p.state.LastMove.X, Y: p.state.LastMove.Y})
		fmt.Fprintf(&b, "[white]Last:[-:-:-]  %s", last)
		if n := p.state.Cleared(); n > 0 {
			fmt.Fprintf(&b, " [yellow]%d line(s)[-]", n)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n[white::b]Pieces[-:-:-]\n")
	b.WriteString("[dimgray]──────────────────────[-:-:-]\n")

	for i, pc := range p.state.Hand {
		marker := " "
		if i == p.selected && !p.state.Finished() {
			marker = "[yellow]>[-]"
		}
		playable := i < len(p.state.Playable) && p.state.Playable[i]

		label := fmt.Sprintf("[dimgray]%d.[-]", i+1)
		if !playable {
			label += " [dimgray](no room)[-]"
		}
		fmt.Fprintf(&b, "%s%s\n", marker, label)
		b.WriteString(renderPiece(pc, playable))
		b.WriteString("\n")
	}

	if p.state.Finished() {
		b.WriteString("\n[red::b]GAME OVER[-:-:-]\n")
		if p.state.NewRecord {
			b.WriteString("[yellow]New high score![-]\n")
		}
	}

	return b.String()
}

// renderPiece draws a piece as colored blocks, two columns per cell.
func renderPiece(pc piece.Piece, playable bool) string {
	color := fmt.Sprintf("#%06x", PieceColor(pc.Color).Hex())
	if !playable {
		color = "dimgray"
	}

	var b strings.Builder
	w, h := pc.Shape.Size()
	for y := 0; y < h; y++ {
		b.WriteString("  ")
		for x := 0; x < w; x++ {
			if pc.Shape.HasPoint(piece.Point{X: x, Y: y}) {
				fmt.Fprintf(&b, "[%s]██[-]", color)
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, board, hint)
	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	// Create the info panel
	infoPanel := NewGameInfoPanel()

	// Store panel reference in board for updates
	board.infoPanel = infoPanel
	infoPanel.SetState(board.State, board.selected)

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)         // Board (flexible, takes remaining space)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false) // Info panel (fixed width)

	// Main vertical flex: board area on top, compact status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 2, 0, false) // Compact: just 2 rows
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardUI) {
	gameFrame.Clear()

	boardWidth := board.State.Width()*2 + 4  // 2 chars per cell + coordinates
	boardHeight := board.State.Height() + 2 // + coordinates

	// Center board with flex spacers
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)               // left spacer
	centerRow.AddItem(board.Box, boardWidth, 0, true) // board (fixed width)
	centerRow.AddItem(nil, 0, 1, false)               // right spacer

	gameFrame.AddItem(centerRow, boardHeight, 0, true) // center row (fixed height)
	gameFrame.AddItem(nil, 0, 1, false)                // bottom spacer
}
