package config

import (
	_ "embed"
)

//go:embed defaults/mines.yaml
var defaultMinesYAML []byte

// DefaultConfig returns the hardcoded configuration, used when the embedded
// YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Preset: PresetBeginner,
			Presets: []Preset{
				{Name: PresetBeginner, Width: 9, Height: 9, Mines: 10},
				{Name: PresetIntermediate, Width: 16, Height: 16, Mines: 40},
				{Name: PresetExpert, Width: 30, Height: 16, Mines: 99},
			},
		},
		Tile: TileConfig{
			Width:  4,
			Height: 2,
			Font:   "mono-bold",
		},
		Fade: FadeConfig{
			MaxAlpha:        96,
			HoverStartAlpha: 50,
			Speed:           300,
		},
		Theme: ThemeConfig{
			Background:  "#202124",
			Text:        "#e8eaed",
			Hover:       "#ffffff",
			Press:       "#000000",
			NumberScale: 0.75,
			Numbers: []string{
				"#1e88e5", "#43a047", "#e53935", "#3949ab",
				"#8e24aa", "#00897b", "#424242", "#9e9e9e",
			},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMinesYAML
}
