package assets

import "github.com/vovakirdan/tui-mines/internal/core"

// Sheet is an in-memory texture stored row-major.
type Sheet struct {
	name   string
	w, h   int
	texels []core.Texel
}

// NewSheet creates a sheet filled with blank texels.
func NewSheet(name string, w, h int) *Sheet {
	s := &Sheet{name: name, w: w, h: h, texels: make([]core.Texel, w*h)}
	for i := range s.texels {
		s.texels[i] = core.Texel{Ch: ' '}
	}
	return s
}

// Name returns the registry name of the sheet.
func (s *Sheet) Name() string { return s.name }

// Bounds returns the sheet rectangle, anchored at the origin.
func (s *Sheet) Bounds() core.Rect { return core.NewRect(0, 0, s.w, s.h) }

// At returns the texel at (x, y), clamped to the sheet edges.
func (s *Sheet) At(x, y int) core.Texel {
	x = core.Clamp(x, 0, s.w-1)
	y = core.Clamp(y, 0, s.h-1)
	return s.texels[y*s.w+x]
}

// Set writes a texel. Out-of-bounds coordinates are silently ignored.
func (s *Sheet) Set(x, y int, t core.Texel) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.texels[y*s.w+x] = t
}

// Fill paints every texel of r with t.
func (s *Sheet) Fill(r core.Rect, t core.Texel) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, t)
		}
	}
}

// CopyGlyphs copies every non-blank glyph of src onto s, keeping colors.
// Used to put mark glyphs on an image-only sheet of the same layout.
func (s *Sheet) CopyGlyphs(src *Sheet) {
	for y := 0; y < core.Clamp(src.h, 0, s.h); y++ {
		for x := 0; x < core.Clamp(src.w, 0, s.w); x++ {
			g := src.At(x, y)
			if g.Ch == ' ' || g.Ch == 0 {
				continue
			}
			t := s.At(x, y)
			t.Ch = g.Ch
			t.Fg = g.Fg
			s.Set(x, y, t)
		}
	}
}
