// blockblast is a terminal block puzzle: place pieces on an 8x8 board and
// clear full rows and columns.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/term"

	"blockblast/config"
	"blockblast/engine"
	"blockblast/highscore"
	"blockblast/piece"
	"blockblast/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagSeed           = flag.Int64("seed", -1, "Random seed for the piece generator (0 for time-based)")
	flagHighScore      = flag.String("highscore", "", "Path of the high score file")
	flagNoSave         = flag.Bool("no-save", false, "Keep the high score in memory only")
	flagQuickStart     = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus          = flag.Bool("focus", false, "Start in focus mode (board only)")
	flagLog            = flag.String("log", "", "Write a debug log to this file")
	flagVersion        = flag.Bool("version", false, "Print version and exit")
	flagPrintHighScore = flag.Bool("print-highscore", false, "Print the stored high score and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config

var debugLog = log.New(io.Discard, "", log.Ltime|log.Lmicroseconds)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("blockblast %s\n", color.CyanString(Version))
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fatal(err)
	}
	applyFlags(&cfg.Game)

	if *flagPrintHighScore {
		store, err := openStore(cfg.Game)
		if err != nil {
			fatal(err)
		}
		high, err := store.Load()
		if err != nil {
			fatal(err)
		}
		fmt.Printf("High score: %s\n", color.YellowString("%d", high))
		return
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fatal(errors.New("blockblast needs an interactive terminal"))
	}

	if *flagLog != "" {
		f, err := os.OpenFile(*flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fatal(fmt.Errorf("open log: %w", err))
		}
		defer f.Close()
		debugLog.SetOutput(f)
		ui.SetDebugLog(f)
	}

	quickStart := *flagQuickStart || *flagFocus || *flagSeed >= 0

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ▦ blockblast ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoard(app, cfg, gameHint)

	// Create game layout with board and side panel
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.Box.SetInputCapture(handleGameKey)

	// Game setup screen
	setupUI := ui.NewGameSetup(cfg.Game,
		func(gameCfg config.GameConfig) {
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	// Color configuration screen
	colorConfig := ui.NewColorConfig(cfg, func() {
		// Refresh the game board with new colors
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			gameBoard.SetConfig(cfg)
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	// Add pages - start on setup by default, or gameview if quick start
	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(cfg.Game)
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		fatal(err)
	}
}

// handleGameKey is the input capture of the board while a game runs.
func handleGameKey(event *tcell.EventKey) *tcell.EventKey {
	if gameBoard.IsFinished() {
		switch {
		case event.Key() == tcell.KeyEnter, event.Key() == tcell.KeyRune && event.Rune() == 'r':
			rootPage.HidePage("gameover")
			gameBoard.Restart()
		case event.Key() == tcell.KeyRune && event.Rune() == 'q':
			rootPage.SwitchToPage("setup")
		}
		return nil
	}

	if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
		if gameBoard.SelectedTile() != nil {
			gameBoard.ResetSelection()
		} else {
			rootPage.SwitchToPage("setup")
		}
		return nil
	}

	switch event.Key() {
	case tcell.KeyUp:
		gameBoard.MoveSelection(0, -1)
	case tcell.KeyDown:
		gameBoard.MoveSelection(0, 1)
	case tcell.KeyLeft:
		gameBoard.MoveSelection(-1, 0)
	case tcell.KeyRight:
		gameBoard.MoveSelection(1, 0)
	case tcell.KeyTab:
		gameBoard.CyclePiece()
	case tcell.KeyEnter:
		placePiece()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h':
			gameBoard.MoveSelection(-1, 0)
		case 'j':
			gameBoard.MoveSelection(0, 1)
		case 'k':
			gameBoard.MoveSelection(0, -1)
		case 'l':
			gameBoard.MoveSelection(1, 0)
		case ' ':
			placePiece()
		case '1', '2', '3':
			gameBoard.SelectPiece(int(event.Rune() - '1'))
		case 'r':
			gameBoard.Restart()
		case 'f':
			if gameBoard.ToggleFocusMode() {
				ui.BuildFocusLayout(gameFrame, gameBoard)
			} else {
				ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
			}
		}
	}
	return event
}

func placePiece() {
	gameBoard.PlacePiece()
	if !gameBoard.IsFinished() {
		return
	}

	text := fmt.Sprintf("Game over\n\nScore: %d\nBest: %d", gameBoard.State.Score, gameBoard.State.HighScore)
	if gameBoard.State.NewRecord {
		text += "\n\nNew high score!"
	}
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"Play again", "Menu"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.HidePage("gameover")
			if buttonIndex == 0 {
				gameBoard.Restart()
				app.SetFocus(gameBoard.Box)
				return
			}
			rootPage.SwitchToPage("setup")
		})
	rootPage.AddPage("gameover", modal, true, true)
}

// startGame starts a fresh session with the given settings.
func startGame(gameCfg config.GameConfig) {
	store, err := openStore(gameCfg)
	if err != nil {
		// Show error modal
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.HidePage("error")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}

	seed := gameCfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	debugLog.Printf("new game: seed=%d", seed)

	session := engine.NewSession(piece.NewSeededGenerator(seed), store)
	gameBoard.ConnectSession(session)
	gameBoard.ResetSelection()
	rootPage.SwitchToPage("gameview")
}

// openStore returns the high score store the settings ask for.
func openStore(gameCfg config.GameConfig) (engine.HighScoreStore, error) {
	if !gameCfg.SaveHighScore {
		return &highscore.Memory{}, nil
	}
	store, err := highscore.NewFileStore(gameCfg.HighScorePath)
	if err != nil {
		return nil, fmt.Errorf("high score file: %w", err)
	}
	return store, nil
}

// applyFlags lets command-line flags override the configured game settings.
func applyFlags(gameCfg *config.GameConfig) {
	if *flagSeed >= 0 {
		gameCfg.Seed = *flagSeed
	}
	if *flagHighScore != "" {
		gameCfg.HighScorePath = *flagHighScore
	}
	if *flagNoSave {
		gameCfg.SaveHighScore = false
	}
}

func fatal(err error) {
	var invalid *config.InvalidConfig
	if errors.As(err, &invalid) {
		fmt.Fprintln(os.Stderr, color.RedString("%s", err))
		fmt.Fprintln(os.Stderr, "Fix or remove your blockblast/config.json")
		os.Exit(2)
	}
	fmt.Fprintln(os.Stderr, color.RedString("error: %s", err))
	os.Exit(1)
}
