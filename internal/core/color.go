package core

import "fmt"

// RGBA is an 8-bit straight-alpha color. A = 255 is opaque.
type RGBA struct {
	R, G, B, A uint8
}

// Opaque builds a fully opaque color.
func Opaque(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// WithAlpha returns the same color with a different alpha.
func (c RGBA) WithAlpha(a uint8) RGBA {
	c.A = a
	return c
}

// Hex renders the color as #rrggbb, ignoring alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses #rgb or #rrggbb into an opaque color.
func ParseHex(s string) (RGBA, error) {
	var r, g, b uint8
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return RGBA{}, fmt.Errorf("core: invalid color %q: %w", s, err)
		}
	case 4:
		if _, err := fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b); err != nil {
			return RGBA{}, fmt.Errorf("core: invalid color %q: %w", s, err)
		}
		r, g, b = r*17, g*17, b*17
	default:
		return RGBA{}, fmt.Errorf("core: invalid color %q", s)
	}
	return Opaque(r, g, b), nil
}

// Common palette entries.
var (
	Black = Opaque(0, 0, 0)
	White = Opaque(255, 255, 255)
)
