package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// Fonts is the terminal font provider. The terminal has one face; names
// only distinguish regular from bold.
type Fonts struct {
	current *core.Font
	text    core.RGBA
}

// Known font names.
const (
	FontMono     = "mono"
	FontMonoBold = "mono-bold"
)

// NewFonts creates a provider whose current font is name. An unknown or
// empty name leaves no current font, which disables text labels.
func NewFonts(name string, text core.RGBA) *Fonts {
	f := &Fonts{text: text}
	f.current = f.Font(name, 1)
	return f
}

// CurrentFont returns the active font, or nil.
func (f *Fonts) CurrentFont() *core.Font { return f.current }

// Font returns the named font at size, or nil if the name is unknown.
func (f *Fonts) Font(name string, size float64) *core.Font {
	switch name {
	case FontMono:
		return &core.Font{Name: name, Size: size}
	case FontMonoBold:
		return &core.Font{Name: name, Size: size, Bold: true}
	default:
		return nil
	}
}

// Measure returns the display width of text in cells and a height of one row.
func (f *Fonts) Measure(font *core.Font, text string) (int, int) {
	return runewidth.StringWidth(text), 1
}

// TextColor returns the default text color.
func (f *Fonts) TextColor() core.RGBA { return f.text }
