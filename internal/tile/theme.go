package tile

import (
	"github.com/vovakirdan/tui-mines/internal/board"
	"github.com/vovakirdan/tui-mines/internal/core"
)

// Sprite regions on the tile sheet, 32x32 texels each.
var (
	SrcHidden   = core.NewRect(0, 0, 32, 32)
	SrcRevealed = core.NewRect(32, 0, 32, 32)
	SrcMarked   = core.NewRect(64, 0, 32, 32)
	SrcQuestion = core.NewRect(96, 0, 32, 32)
	SrcMine     = core.NewRect(128, 0, 32, 32)
)

// SpriteFor returns the sheet region that depicts c.
func SpriteFor(c board.Cell) core.Rect {
	switch c.Status {
	case board.Revealed:
		if c.HasMine {
			return SrcMine
		}
		return SrcRevealed
	case board.Marked:
		return SrcMarked
	case board.QuestionMarked:
		return SrcQuestion
	default:
		return SrcHidden
	}
}

// Theme holds the visual parameters shared by every controller.
type Theme struct {
	HoverColor core.RGBA // fade color while hovering
	PressColor core.RGBA // fade color while pressed

	MaxAlpha        float64 // fade ceiling, 0..255
	HoverStartAlpha float64 // alpha on hover-enter
	FadeSpeed       float64 // alpha units per second

	// NumberScale is the label font size relative to the tile height.
	NumberScale float64
	// NumberColors[n] colors the label for n adjacent mines; index 0 unused.
	NumberColors [9]core.RGBA
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		HoverColor:      core.White,
		PressColor:      core.Black,
		MaxAlpha:        96,
		HoverStartAlpha: 50,
		FadeSpeed:       300,
		NumberScale:     0.75,
		NumberColors: [9]core.RGBA{
			{},
			core.Opaque(0x1e, 0x88, 0xe5),
			core.Opaque(0x43, 0xa0, 0x47),
			core.Opaque(0xe5, 0x39, 0x35),
			core.Opaque(0x39, 0x49, 0xab),
			core.Opaque(0x8e, 0x24, 0xaa),
			core.Opaque(0x00, 0x89, 0x7b),
			core.Opaque(0x42, 0x42, 0x42),
			core.Opaque(0x9e, 0x9e, 0x9e),
		},
	}
}

// NumberColor returns the label color for n adjacent mines.
func (t Theme) NumberColor(n int) core.RGBA {
	if n < 1 || n >= len(t.NumberColors) {
		return core.White
	}
	return t.NumberColors[n]
}
