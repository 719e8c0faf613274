package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// LoadPNG decodes a PNG file into a sheet, one texel per pixel.
// The result has no glyphs; use CopyGlyphs to add them.
func LoadPNG(name, path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return FromImage(name, img), nil
}

// FromImage converts an image into a sheet. Transparent pixels become black.
func FromImage(name string, img image.Image) *Sheet {
	b := img.Bounds()
	s := NewSheet(name, b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			bg := core.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
			if c.A == 0 {
				bg = core.Black
			}
			s.Set(x-b.Min.X, y-b.Min.Y, core.Texel{Ch: ' ', Bg: bg})
		}
	}
	return s
}

// LoadTileSheet replaces the built-in tile sheet with an image of the same
// layout, keeping the built-in mark glyphs.
func LoadTileSheet(path string) error {
	s, err := LoadPNG(TilesName, path)
	if err != nil {
		return err
	}
	if s.w < TileSize*sheetTiles || s.h < TileSize {
		return fmt.Errorf("assets: %s is %dx%d, need at least %dx%d",
			path, s.w, s.h, TileSize*sheetTiles, TileSize)
	}
	s.CopyGlyphs(BuildTileSheet())
	Override(TilesName, s)
	return nil
}
