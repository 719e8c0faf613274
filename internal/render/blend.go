package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// Blend mixes over into base by t in [0, 1] and returns an opaque color.
func Blend(base, over core.RGBA, t float64) core.RGBA {
	t = core.ClampF(t, 0, 1)
	r, g, b := toColorful(base).BlendRgb(toColorful(over), t).Clamped().RGB255()
	return core.Opaque(r, g, b)
}

func toColorful(c core.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
