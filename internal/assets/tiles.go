package assets

import "github.com/vovakirdan/tui-mines/internal/core"

// TilesName is the registry name of the tile sheet.
const TilesName = "tiles"

// Tile sheet layout: five 32x32 regions side by side.
const (
	TileSize   = 32
	sheetTiles = 5
)

var (
	faceColor    = core.Opaque(0xbd, 0xbd, 0xbd)
	lightEdge    = core.Opaque(0xf5, 0xf5, 0xf5)
	darkEdge     = core.Opaque(0x7b, 0x7b, 0x7b)
	revealedFace = core.Opaque(0xe0, 0xe0, 0xe0)
	gridLine     = core.Opaque(0x9e, 0x9e, 0x9e)
	flagRed      = core.Opaque(0xd3, 0x2f, 0x2f)
	mineFace     = core.Opaque(0xef, 0x53, 0x50)
)

func init() {
	Register(TilesName, func() (core.Texture, error) {
		return BuildTileSheet(), nil
	})
}

// BuildTileSheet draws the built-in tile sheet: hidden, revealed, marked,
// question-marked and mine, in that order. Glyphs sit on each region's
// center texel.
func BuildTileSheet() *Sheet {
	s := NewSheet(TilesName, TileSize*sheetTiles, TileSize)

	region := func(i int) core.Rect { return core.NewRect(i*TileSize, 0, TileSize, TileSize) }

	bevel(s, region(0))
	flat(s, region(1), revealedFace)
	bevel(s, region(2))
	glyph(s, region(2), '⚑', flagRed)
	bevel(s, region(3))
	glyph(s, region(3), '?', core.Black)
	flat(s, region(4), mineFace)
	glyph(s, region(4), '✹', core.Black)

	return s
}

// bevel draws a raised button: light top/left, dark bottom/right.
func bevel(s *Sheet, r core.Rect) {
	const edge = 4
	s.Fill(r, core.Texel{Ch: ' ', Bg: faceColor})
	for i := 0; i < edge; i++ {
		s.Fill(core.NewRect(r.X, r.Y+i, r.W-i, 1), core.Texel{Ch: ' ', Bg: lightEdge})
		s.Fill(core.NewRect(r.X+i, r.Y, 1, r.H-i), core.Texel{Ch: ' ', Bg: lightEdge})
		s.Fill(core.NewRect(r.X+i+1, r.Bottom()-1-i, r.W-i-1, 1), core.Texel{Ch: ' ', Bg: darkEdge})
		s.Fill(core.NewRect(r.Right()-1-i, r.Y+i+1, 1, r.H-i-1), core.Texel{Ch: ' ', Bg: darkEdge})
	}
}

// flat draws a sunken face with a one-texel grid line on the top/left.
func flat(s *Sheet, r core.Rect, face core.RGBA) {
	s.Fill(r, core.Texel{Ch: ' ', Bg: face})
	s.Fill(core.NewRect(r.X, r.Y, r.W, 1), core.Texel{Ch: ' ', Bg: gridLine})
	s.Fill(core.NewRect(r.X, r.Y, 1, r.H), core.Texel{Ch: ' ', Bg: gridLine})
}

func glyph(s *Sheet, r core.Rect, ch rune, fg core.RGBA) {
	cx, cy := r.Center()
	t := s.At(cx, cy)
	t.Ch = ch
	t.Fg = fg
	s.Set(cx, cy, t)
}
