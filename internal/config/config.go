// Package config provides YAML-based configuration loading and board
// presets for the minesweeper.
package config

// Config is the complete game configuration.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Tile  TileConfig  `yaml:"tile"`
	Fade  FadeConfig  `yaml:"fade"`
	Theme ThemeConfig `yaml:"theme"`
	Audio AudioConfig `yaml:"audio"`
}

// BoardConfig selects the board size and mine count.
type BoardConfig struct {
	Preset  string   `yaml:"preset"` // Name of the preset to play
	Presets []Preset `yaml:"presets"`
}

// TileConfig controls how a cell is drawn on the terminal.
type TileConfig struct {
	Width  int    `yaml:"width"`  // Cells per tile horizontally
	Height int    `yaml:"height"` // Cells per tile vertically
	Font   string `yaml:"font"`   // Label font; empty disables numbers
	Sheet  string `yaml:"sheet"`  // Optional PNG tile sheet
}

// FadeConfig defines the hover/press overlay animation.
type FadeConfig struct {
	MaxAlpha        float64 `yaml:"max_alpha"`         // 0..255
	HoverStartAlpha float64 `yaml:"hover_start_alpha"` // Alpha on hover-enter
	Speed           float64 `yaml:"speed"`             // Alpha units per second
}

// ThemeConfig holds colors as #rrggbb strings.
type ThemeConfig struct {
	Background  string   `yaml:"background"`
	Text        string   `yaml:"text"`
	Hover       string   `yaml:"hover"`
	Press       string   `yaml:"press"`
	NumberScale float64  `yaml:"number_scale"`
	Numbers     []string `yaml:"numbers"` // Colors for 1..8 adjacent mines
}

// AudioConfig controls sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}
