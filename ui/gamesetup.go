package ui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"blockblast/config"
)

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(config.GameConfig)
	onCancel func()
	onColors func()

	game config.GameConfig
}

// NewGameSetup creates a new game setup form prefilled from defaults.
func NewGameSetup(defaults config.GameConfig, onStart func(config.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		onColors: onColors,
		game:     defaults,
	}

	seedText := ""
	if defaults.Seed > 0 {
		seedText = strconv.FormatInt(defaults.Seed, 10)
	}

	form := tview.NewForm()

	form.AddInputField("Seed (empty: random)", seedText, 20, func(text string, lastChar rune) bool {
		return lastChar >= '0' && lastChar <= '9'
	}, func(text string) {
		setup.SetSeed(text)
	})

	form.AddCheckbox("Save high score", defaults.SaveHighScore, func(checked bool) {
		setup.game.SaveHighScore = checked
	})

	form.AddButton("Start Game", func() {
		onStart(setup.game)
	})

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetBorderColor(MenuColors.Border)
	form.SetTitle(" New Game ")
	form.SetTitleColor(MenuColors.Title)
	form.SetTitleAlign(tview.AlignCenter)
	form.SetLabelColor(MenuColors.Label)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Space: toggle  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// SetSeed parses a seed typed into the form. Empty or unparsable text means a
// time-based seed.
func (s *GameSetupUI) SetSeed(text string) {
	s.game.Seed = 0
	if val, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64); err == nil && val > 0 {
		s.game.Seed = val
	}
}

// GameConfig returns the settings the next game will start with.
func (s *GameSetupUI) GameConfig() config.GameConfig {
	return s.game
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
