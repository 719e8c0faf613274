package core

import "time"

// Texel is one sample of a texture: a glyph with its colors.
type Texel struct {
	Ch rune
	Fg RGBA
	Bg RGBA
}

// Texture is a named, immutable grid of texels.
type Texture interface {
	Name() string
	Bounds() Rect
	At(x, y int) Texel
}

// Font describes a text face. Size is the nominal height in cells.
type Font struct {
	Name string
	Size float64
	Bold bool
}

// Surface is the drawing target handed to drawables each frame.
// All coordinates are canvas cells; drawing outside the surface is clipped.
type Surface interface {
	// DrawSprite scales the src region of tex into dst.
	DrawSprite(tex Texture, src, dst Rect)
	// DrawFilledRect composites c over dst using c.A as opacity.
	DrawFilledRect(dst Rect, c RGBA)
	// DrawText writes text with its top-left corner at (x, y).
	DrawText(f *Font, c RGBA, x, y int, text string)
}

// FontProvider hands out fonts and the default text color.
type FontProvider interface {
	// CurrentFont returns the active font, or nil if none is loaded.
	CurrentFont() *Font
	// Font returns the named font at the given size, or nil if unknown.
	Font(name string, size float64) *Font
	// Measure returns the width and height text occupies in f.
	Measure(f *Font, text string) (int, int)
	TextColor() RGBA
}

// SoundPlayer plays named sound cues. Unknown names are ignored.
type SoundPlayer interface {
	Play(name string)
}

// Sound cue names.
const (
	SoundSingle = "single" // first click revealed exactly one cell
	SoundClear  = "clear"  // cells revealed
	SoundLose   = "lose"   // mine hit
	SoundMark   = "bip"    // flag cycle
	SoundHover  = "hover"  // pointer entered a hidden tile
	SoundWin    = "win"    // board cleared
)

// Drawable is the per-frame capability shared by tiles, effects and HUD
// widgets. Everything the game loop owns is kept in one []Drawable.
type Drawable interface {
	HandleInput(ev Event)
	Update(dt time.Duration)
	Draw(s Surface)
	// ShouldDelete reports that the owner may drop this drawable.
	ShouldDelete() bool
}

// Removable is embedded by drawables that can mark themselves for removal.
type Removable struct {
	deleted bool
}

// Delete marks the drawable for removal at the end of the frame.
func (r *Removable) Delete() {
	r.deleted = true
}

// ShouldDelete reports whether Delete has been called.
func (r *Removable) ShouldDelete() bool {
	return r.deleted
}
