package config

import (
	_ "embed"
)

//go:embed defaults/simon.yaml
var defaultSimonYAML []byte

// DefaultSimonConfig returns the built-in configuration.
// It mirrors defaults/simon.yaml and is used if the embedded file fails to parse.
func DefaultSimonConfig() SimonConfig {
	return SimonConfig{
		Keys: KeyBindings{
			Green:  []string{"1", "g"},
			Red:    []string{"2", "r"},
			Yellow: []string{"3", "y"},
			Blue:   []string{"4", "b"},
			Start:  []string{"enter", "s"},
			Pause:  []string{"p"},
			Back:   []string{"esc"},
			Quit:   []string{"q", "ctrl+c"},
		},
		Board: BoardLayout{
			PadWidth:  16,
			PadHeight: 5,
			Gap:       2,
			LitGlyph:  "█",
			DimGlyph:  "░",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSimonYAML
}
