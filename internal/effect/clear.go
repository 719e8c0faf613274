// Package effect holds short-lived visual effects that live alongside the
// tiles in the game's drawable list and delete themselves when done.
package effect

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// Clear effect tuning, in canvas cells and seconds.
const (
	ClearLifetime = 600 * time.Millisecond
	gravity       = 40.0
	launchSpeed   = 12.0
)

type fragment struct {
	src    core.Rect
	w, h   int
	x, y   float64
	vx, vy float64
}

// Clear breaks a cleared tile's sprite into four pieces that fly apart,
// fall and fade into the background.
type Clear struct {
	core.Removable
	tex       core.Texture
	frags     []fragment
	age       time.Duration
	fadeColor core.RGBA
}

// NewClear creates the effect for a tile drawn from src into dst.
// fade is the color the fragments dissolve into.
func NewClear(tex core.Texture, src, dst core.Rect, fade core.RGBA, rng *rand.Rand) *Clear {
	c := &Clear{tex: tex, fadeColor: fade}
	if tex == nil || src.Empty() || dst.Empty() {
		c.Delete()
		return c
	}

	hw, hh := max(dst.W/2, 1), max(dst.H/2, 1)
	sw, sh := src.W/2, src.H/2
	quarter := core.NewRect(src.X, src.Y, sw, sh)
	for i := 0; i < 4; i++ {
		qx, qy := i%2, i/2
		dir := float64(qx*2 - 1)
		c.frags = append(c.frags, fragment{
			src: quarter.Translate(qx*sw, qy*sh),
			w:   hw,
			h:   hh,
			x:   float64(dst.X + qx*hw),
			y:   float64(dst.Y + qy*hh),
			vx:  dir * launchSpeed * (0.5 + rng.Float64()),
			vy:  -launchSpeed * (0.5 + rng.Float64()),
		})
	}
	return c
}

// HandleInput ignores input; effects are not interactive.
func (c *Clear) HandleInput(core.Event) {}

// Update moves the fragments and deletes the effect once it has expired.
func (c *Clear) Update(dt time.Duration) {
	c.age += dt
	if c.age >= ClearLifetime {
		c.Delete()
		return
	}
	s := dt.Seconds()
	for i := range c.frags {
		f := &c.frags[i]
		f.vy += gravity * s
		f.x += f.vx * s
		f.y += f.vy * s
	}
}

// Draw renders each fragment, then dissolves it by its age.
func (c *Clear) Draw(s core.Surface) {
	if c.ShouldDelete() {
		return
	}
	a := uint8(255 * core.ClampF(c.age.Seconds()/ClearLifetime.Seconds(), 0, 1))
	for _, f := range c.frags {
		dst := core.NewRect(int(f.x), int(f.y), f.w, f.h)
		s.DrawSprite(c.tex, f.src, dst)
		if a > 0 {
			s.DrawFilledRect(dst, c.fadeColor.WithAlpha(a))
		}
	}
}
