package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	c := DefaultConfig
	require.NoError(t, c.Validate())
	assert.True(t, c.Game.SaveHighScore)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"control symbol", func(c *Config) { c.Theme.Symbols.Block = '\t' }},
		{"c1 symbol", func(c *Config) { c.Theme.Symbols.Empty = 130 }},
		{"color out of range", func(c *Config) { c.Theme.Colors.CursorColorBG = 300 }},
		{"negative color", func(c *Config) { c.Theme.Colors.EmptyColor = -1 }},
		{"negative seed", func(c *Config) { c.Game.Seed = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig
			tt.mutate(&c)

			var invalid *InvalidConfig
			assert.True(t, errors.As(c.Validate(), &invalid))
		})
	}
}

func TestSaveAndReadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	c := DefaultConfig
	c.Game.Seed = 1234
	c.Theme.Symbols.Block = '#'
	require.NoError(t, saveCfgFile(path, &c, 0664))

	got := DefaultConfig
	require.NoError(t, readCfgFile(path, &got))
	assert.Equal(t, c, got)
}

func TestReadPartialConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"game": {"seed": 9}}`), 0664))

	got := DefaultConfig
	require.NoError(t, readCfgFile(path, &got))
	assert.Equal(t, int64(9), got.Game.Seed)
	assert.Equal(t, DefaultTheme, got.Theme)
	assert.True(t, got.Game.SaveHighScore)
}

func TestReadBrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"game": `), 0664))

	got := DefaultConfig
	var invalid *InvalidConfig
	assert.True(t, errors.As(readCfgFile(path, &got), &invalid))
}
