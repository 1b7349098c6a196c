package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "blockblast/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	EmptyColor    int `json:"empty"`
	EmptyColorAlt int `json:"empty_alt"`
	LineColor     int `json:"line"`
	CursorColorBG int `json:"cursor_bg"`
	PreviewOK     int `json:"preview_ok"`
	PreviewBad    int `json:"preview_bad"`
	LastPlacedBG  int `json:"last_placed_bg"`
}

type ConfigSymbols struct {
	Block   rune `json:"block"`
	Empty   rune `json:"empty"`
	Preview rune `json:"preview"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlacedBackground bool          `json:"draw_last_placed_bg"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// GameConfig holds settings for new sessions.
type GameConfig struct {
	Seed          int64  `json:"seed"`           // 0 picks a time-based seed
	HighScorePath string `json:"highscore_path"` // empty uses the XDG data dir
	SaveHighScore bool   `json:"save_highscore"`
}

type Config struct {
	Theme Theme      `json:"theme"`
	Game  GameConfig `json:"game"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Block, c.Theme.Symbols.Empty, c.Theme.Symbols.Preview} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	colors := []int{
		c.Theme.Colors.EmptyColor, c.Theme.Colors.EmptyColorAlt, c.Theme.Colors.LineColor,
		c.Theme.Colors.CursorColorBG, c.Theme.Colors.PreviewOK, c.Theme.Colors.PreviewBad,
		c.Theme.Colors.LastPlacedBG,
	}
	for _, col := range colors {
		if col < 0 || col > 255 {
			return &InvalidConfig{fmt.Sprintf("palette color %d out of range 0-255", col)}
		}
	}
	if c.Game.Seed < 0 {
		return &InvalidConfig{"seed must not be negative"}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
