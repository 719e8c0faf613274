package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-mines/internal/core"
)

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-test", func() (core.Texture, error) { return NewSheet("dup-test", 1, 1), nil })
	defer func() {
		if recover() == nil {
			t.Error("second Register with same name should panic")
		}
	}()
	Register("dup-test", func() (core.Texture, error) { return nil, nil })
}

func TestGetBuildsOnce(t *testing.T) {
	calls := 0
	Register("once-test", func() (core.Texture, error) {
		calls++
		return NewSheet("once-test", 2, 2), nil
	})

	a, err := Get("once-test")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	b, err := Get("once-test")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if a != b {
		t.Error("Get() should return the cached texture")
	}
	if calls != 1 {
		t.Errorf("factory called %d times, expected 1", calls)
	}
}

func TestGetErrors(t *testing.T) {
	if _, err := Get("no-such-texture"); err == nil {
		t.Error("Get() of unknown texture should fail")
	}
	if Lookup("no-such-texture") != nil {
		t.Error("Lookup() of unknown texture should be nil")
	}

	boom := errors.New("boom")
	Register("broken-test", func() (core.Texture, error) { return nil, boom })
	if _, err := Get("broken-test"); !errors.Is(err, boom) {
		t.Errorf("Get() error = %v, expected wrapped boom", err)
	}
}

func TestListSortedAndExists(t *testing.T) {
	names := List()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("List() not sorted: %v", names)
		}
	}
	if !Exists(TilesName) {
		t.Errorf("built-in %q texture should be registered", TilesName)
	}
}

func TestTileSheetLayout(t *testing.T) {
	s := BuildTileSheet()

	b := s.Bounds()
	if b.W != TileSize*5 || b.H != TileSize {
		t.Fatalf("Bounds() = %+v, expected %dx%d", b, TileSize*5, TileSize)
	}

	tests := []struct {
		region int
		glyph  rune
	}{
		{0, ' '},
		{1, ' '},
		{2, '⚑'},
		{3, '?'},
		{4, '✹'},
	}
	for _, tc := range tests {
		cx, cy := core.NewRect(tc.region*TileSize, 0, TileSize, TileSize).Center()
		if got := s.At(cx, cy).Ch; got != tc.glyph {
			t.Errorf("region %d center glyph = %q, expected %q", tc.region, got, tc.glyph)
		}
	}

	// Hidden tiles are raised: light top-left, dark bottom-right.
	if s.At(0, 0).Bg != lightEdge {
		t.Errorf("hidden top-left = %+v, expected light edge", s.At(0, 0).Bg)
	}
	if s.At(TileSize-1, TileSize-1).Bg != darkEdge {
		t.Errorf("hidden bottom-right = %+v, expected dark edge", s.At(TileSize-1, TileSize-1).Bg)
	}
}

func TestSheetAtClamps(t *testing.T) {
	s := NewSheet("clamp", 2, 2)
	s.Set(1, 1, core.Texel{Ch: 'x'})
	if s.At(5, 5).Ch != 'x' {
		t.Error("At() beyond bounds should clamp to the edge")
	}
	s.Set(9, 9, core.Texel{Ch: 'y'}) // Should not panic
}

func TestFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img.Set(1, 0, color.NRGBA{R: 99, G: 99, B: 99, A: 0})

	s := FromImage("img", img)
	if got := s.At(0, 0).Bg; got != core.Opaque(10, 20, 30) {
		t.Errorf("pixel (0, 0) = %+v, expected {10 20 30 255}", got)
	}
	if got := s.At(1, 0).Bg; got != core.Black {
		t.Errorf("transparent pixel = %+v, expected black", got)
	}
}

func TestLoadTileSheet(t *testing.T) {
	dir := t.TempDir()

	small := filepath.Join(dir, "small.png")
	writePNG(t, small, 8, 8)
	if err := LoadTileSheet(small); err == nil {
		t.Error("LoadTileSheet() should reject an undersized image")
	}

	if err := LoadTileSheet(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("LoadTileSheet() should fail for a missing file")
	}

	full := filepath.Join(dir, "tiles.png")
	writePNG(t, full, TileSize*5, TileSize)
	if err := LoadTileSheet(full); err != nil {
		t.Fatalf("LoadTileSheet() failed: %v", err)
	}
	defer Override(TilesName, BuildTileSheet())

	tex := Lookup(TilesName)
	if tex == nil {
		t.Fatal("Lookup() after override returned nil")
	}
	cx, cy := core.NewRect(2*TileSize, 0, TileSize, TileSize).Center()
	if tex.At(cx, cy).Ch != '⚑' {
		t.Error("loaded sheet should keep the built-in mark glyphs")
	}
	if tex.At(0, 0).Bg != core.Opaque(1, 2, 3) {
		t.Errorf("loaded sheet pixel = %+v, expected image color", tex.At(0, 0).Bg)
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
}
