// Package config provides YAML-based configuration loading for the Simon
// terminal front end: key bindings and board layout.
package config

import (
	"fmt"
	"unicode/utf8"
)

// Keys the terminal front end handles itself. They cannot be rebound.
const (
	HelpKey       = "?"
	ScreenshotKey = "ctrl+s"
)

// SimonConfig contains all user-tunable settings.
type SimonConfig struct {
	Keys  KeyBindings `yaml:"keys"`
	Board BoardLayout `yaml:"board"`
}

// KeyBindings maps actions to key names as reported by Bubble Tea.
type KeyBindings struct {
	Green  []string `yaml:"green"`
	Red    []string `yaml:"red"`
	Yellow []string `yaml:"yellow"`
	Blue   []string `yaml:"blue"`
	Start  []string `yaml:"start"`
	Pause  []string `yaml:"pause"`
	Back   []string `yaml:"back"`
	Quit   []string `yaml:"quit"`
}

// Pads returns the pad bindings in pad order (green, red, yellow, blue).
func (k KeyBindings) Pads() [4][]string {
	return [4][]string{k.Green, k.Red, k.Yellow, k.Blue}
}

// BoardLayout defines pad geometry and glyphs.
type BoardLayout struct {
	PadWidth  int    `yaml:"pad_width"`
	PadHeight int    `yaml:"pad_height"`
	Gap       int    `yaml:"gap"`
	LitGlyph  string `yaml:"lit_glyph"`
	DimGlyph  string `yaml:"dim_glyph"`
}

// Minimum pad size that still fits a border and a label.
const (
	MinPadWidth  = 5
	MinPadHeight = 3
)

// LitRune returns the fill rune for an active pad.
func (b BoardLayout) LitRune() rune {
	return firstRune(b.LitGlyph, '█')
}

// DimRune returns the fill rune for an inactive pad.
func (b BoardLayout) DimRune() rune {
	return firstRune(b.DimGlyph, '░')
}

func firstRune(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}

// Validate checks that every action has a key, that no key is bound
// twice, and that the board is large enough to draw.
func (c SimonConfig) Validate() error {
	bindings := []struct {
		name string
		keys []string
	}{
		{"green", c.Keys.Green},
		{"red", c.Keys.Red},
		{"yellow", c.Keys.Yellow},
		{"blue", c.Keys.Blue},
		{"start", c.Keys.Start},
		{"pause", c.Keys.Pause},
		{"back", c.Keys.Back},
		{"quit", c.Keys.Quit},
	}

	owner := map[string]string{
		HelpKey:       "help",
		ScreenshotKey: "screenshot",
	}
	for _, b := range bindings {
		if len(b.keys) == 0 {
			return fmt.Errorf("config: no key bound to %q", b.name)
		}
		for _, k := range b.keys {
			if k == "" {
				return fmt.Errorf("config: empty key bound to %q", b.name)
			}
			if prev, ok := owner[k]; ok {
				return fmt.Errorf("config: key %q bound to both %q and %q", k, prev, b.name)
			}
			owner[k] = b.name
		}
	}

	if c.Board.PadWidth < MinPadWidth || c.Board.PadHeight < MinPadHeight {
		return fmt.Errorf("config: pad size %dx%d is below the minimum %dx%d",
			c.Board.PadWidth, c.Board.PadHeight, MinPadWidth, MinPadHeight)
	}
	if c.Board.Gap < 0 {
		return fmt.Errorf("config: negative board gap %d", c.Board.Gap)
	}

	return nil
}
