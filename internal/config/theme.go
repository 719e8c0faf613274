package config

import (
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/tile"
)

// TileTheme converts the theme and fade settings into a tile.Theme.
func (c Config) TileTheme() (tile.Theme, error) {
	t := tile.DefaultTheme()

	var err error
	if t.HoverColor, err = core.ParseHex(c.Theme.Hover); err != nil {
		return t, fmt.Errorf("theme.hover: %w", err)
	}
	if t.PressColor, err = core.ParseHex(c.Theme.Press); err != nil {
		return t, fmt.Errorf("theme.press: %w", err)
	}
	if len(c.Theme.Numbers) > len(t.NumberColors)-1 {
		return t, fmt.Errorf("theme.numbers: at most %d colors, got %d", len(t.NumberColors)-1, len(c.Theme.Numbers))
	}
	for i, hex := range c.Theme.Numbers {
		if t.NumberColors[i+1], err = core.ParseHex(hex); err != nil {
			return t, fmt.Errorf("theme.numbers[%d]: %w", i, err)
		}
	}
	if c.Theme.NumberScale > 0 {
		t.NumberScale = c.Theme.NumberScale
	}

	if c.Fade.MaxAlpha < 0 || c.Fade.MaxAlpha > 255 {
		return t, fmt.Errorf("fade.max_alpha must be in [0, 255], got %v", c.Fade.MaxAlpha)
	}
	if c.Fade.Speed < 0 {
		return t, fmt.Errorf("fade.speed must not be negative, got %v", c.Fade.Speed)
	}
	t.MaxAlpha = c.Fade.MaxAlpha
	t.HoverStartAlpha = core.ClampF(c.Fade.HoverStartAlpha, 0, c.Fade.MaxAlpha)
	t.FadeSpeed = c.Fade.Speed
	return t, nil
}

// Colors returns the parsed background and text colors.
func (c Config) Colors() (bg, text core.RGBA, err error) {
	if bg, err = core.ParseHex(c.Theme.Background); err != nil {
		return bg, text, fmt.Errorf("theme.background: %w", err)
	}
	if text, err = core.ParseHex(c.Theme.Text); err != nil {
		return bg, text, fmt.Errorf("theme.text: %w", err)
	}
	return bg, text, nil
}
