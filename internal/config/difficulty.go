package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Built-in preset names.
const (
	PresetBeginner     = "beginner"
	PresetIntermediate = "intermediate"
	PresetExpert       = "expert"
)

// Preset is a named board size and mine count.
type Preset struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Mines  int    `yaml:"mines"`
}

// String formats the preset as "name (WxH, M mines)".
func (p Preset) String() string {
	return fmt.Sprintf("%s (%dx%d, %d mines)", p.Name, p.Width, p.Height, p.Mines)
}

// Validate checks that the preset describes a playable board.
// At least one cell must stay free of mines for the first click.
func (p Preset) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("preset %q: invalid size %dx%d", p.Name, p.Width, p.Height)
	}
	if p.Mines < 0 || p.Mines >= p.Width*p.Height {
		return fmt.Errorf("preset %q: mines must be in [0, %d), got %d",
			p.Name, p.Width*p.Height, p.Mines)
	}
	return nil
}

// ParsePreset parses a custom board spec of the form "WxH/M", e.g. "20x12/45".
func ParsePreset(spec string) (Preset, error) {
	size, mines, ok := strings.Cut(spec, "/")
	if !ok {
		return Preset{}, fmt.Errorf("invalid board %q: expected WxH/M", spec)
	}
	ws, hs, ok := strings.Cut(size, "x")
	if !ok {
		return Preset{}, fmt.Errorf("invalid board %q: expected WxH/M", spec)
	}

	var p Preset
	var err error
	if p.Width, err = strconv.Atoi(ws); err != nil {
		return Preset{}, fmt.Errorf("invalid board width %q: %w", ws, err)
	}
	if p.Height, err = strconv.Atoi(hs); err != nil {
		return Preset{}, fmt.Errorf("invalid board height %q: %w", hs, err)
	}
	if p.Mines, err = strconv.Atoi(mines); err != nil {
		return Preset{}, fmt.Errorf("invalid mine count %q: %w", mines, err)
	}
	p.Name = "custom-" + spec
	return p, p.Validate()
}

// Lookup returns the preset named name from the configuration.
func (c Config) Lookup(name string) (Preset, bool) {
	for _, p := range c.Board.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// PresetNames returns the configured preset names in file order.
func (c Config) PresetNames() []string {
	names := make([]string, 0, len(c.Board.Presets))
	for _, p := range c.Board.Presets {
		names = append(names, p.Name)
	}
	return names
}

// ApplyPreset resolves name (a preset name or a "WxH/M" spec) and makes it
// the active preset.
func (c *Config) ApplyPreset(name string) (Preset, error) {
	if p, ok := c.Lookup(name); ok {
		if err := p.Validate(); err != nil {
			return Preset{}, err
		}
		c.Board.Preset = p.Name
		return p, nil
	}
	if strings.Contains(name, "/") {
		p, err := ParsePreset(name)
		if err != nil {
			return Preset{}, err
		}
		c.Board.Presets = append(c.Board.Presets, p)
		c.Board.Preset = p.Name
		return p, nil
	}
	return Preset{}, fmt.Errorf("unknown difficulty %q (available: %s)",
		name, strings.Join(c.PresetNames(), ", "))
}

// Active returns the currently selected preset.
func (c Config) Active() (Preset, error) {
	p, ok := c.Lookup(c.Board.Preset)
	if !ok {
		return Preset{}, fmt.Errorf("unknown difficulty %q", c.Board.Preset)
	}
	return p, p.Validate()
}
