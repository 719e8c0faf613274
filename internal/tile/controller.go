package tile

import (
	"math"
	"strconv"
	"time"

	"github.com/vovakirdan/tui-mines/internal/board"
	"github.com/vovakirdan/tui-mines/internal/core"
)

// Deps bundles the collaborators a controller needs. Sounds, Fonts and
// Texture may be nil; the matching output is then skipped.
type Deps struct {
	Session Session
	Sounds  core.SoundPlayer
	Fonts   core.FontProvider
	Texture core.Texture
	Theme   Theme
}

// Controller drives one board cell: it turns pointer events into reveals and
// mark cycles and draws the cell with its hover/press fade overlay.
//
// A click is a press and release inside the same tile. Pressing inside and
// releasing elsewhere cancels the click.
type Controller struct {
	board  *board.Board
	bx, by int
	rect   core.Rect
	deps   Deps

	fadeColor core.RGBA
	fadingIn  bool
	pressed   bool
	alpha     float64
}

// New creates a controller for cell (bx, by) of b drawn into rect.
func New(b *board.Board, bx, by int, rect core.Rect, deps Deps) *Controller {
	return &Controller{
		board:     b,
		bx:        bx,
		by:        by,
		rect:      rect,
		deps:      deps,
		fadeColor: deps.Theme.HoverColor,
	}
}

// Cell returns the board coordinates of this tile.
func (c *Controller) Cell() (int, int) { return c.bx, c.by }

// Rect returns the tile's screen rectangle.
func (c *Controller) Rect() core.Rect { return c.rect }

// SetRect moves the tile, e.g. after a resize. Fade state is kept.
func (c *Controller) SetRect(r core.Rect) { c.rect = r }

// Alpha returns the current fade opacity.
func (c *Controller) Alpha() float64 { return c.alpha }

// Pressed reports whether a press began in this tile and is still held.
func (c *Controller) Pressed() bool { return c.pressed }

// FadingIn reports the fade direction.
func (c *Controller) FadingIn() bool { return c.fadingIn }

// FadeColor returns the overlay color, without alpha.
func (c *Controller) FadeColor() core.RGBA { return c.fadeColor }

// ShouldDelete is always false; tiles live as long as their board.
func (c *Controller) ShouldDelete() bool { return false }

// HandleInput processes one event. Only pointer events matter to tiles.
func (c *Controller) HandleInput(ev core.Event) {
	pe, ok := ev.(core.PointerEvent)
	if !ok {
		return
	}

	inside := c.rect.Contains(pe.X, pe.Y)
	switch pe.Kind {
	case core.PointerDown:
		if inside {
			c.press()
		}
	case core.PointerUp:
		if c.pressed && inside {
			c.pressed = false
			c.fadeColor = c.deps.Theme.HoverColor
			c.click(pe.Button)
			return
		}
		c.pressed = false
	case core.PointerMotion:
		wasInside := c.rect.Contains(pe.PrevX, pe.PrevY)
		switch {
		case inside && !wasInside:
			c.enter()
		case !inside && wasInside:
			c.leave()
		}
	}
}

func (c *Controller) press() {
	c.pressed = true
	c.fadeColor = c.deps.Theme.PressColor
	c.alpha = c.deps.Theme.MaxAlpha
}

func (c *Controller) enter() {
	if c.board.At(c.bx, c.by).Status != board.Revealed {
		c.play(core.SoundHover)
	}
	c.fadingIn = true
	if c.pressed {
		c.fadeColor = c.deps.Theme.PressColor
	} else {
		c.fadeColor = c.deps.Theme.HoverColor
	}
	c.alpha = c.deps.Theme.HoverStartAlpha
}

// leave fades out from wherever the alpha currently is.
func (c *Controller) leave() {
	c.fadingIn = false
}

func (c *Controller) click(b core.PointerButton) {
	switch b {
	case core.ButtonLeft:
		c.leftClick()
	case core.ButtonRight:
		c.rightClick()
	}
}

func (c *Controller) leftClick() {
	cell := c.board.At(c.bx, c.by)
	if cell.Status.Flagged() {
		return
	}
	s := c.deps.Session

	if !c.board.Initialized() {
		// Marks placed before the mines exist are dropped with the counter.
		c.board.ClearMarks()
		c.board.Initialize(c.bx, c.by, s.MineCount())
		s.SpawnClearEffect(c.bx, c.by, c.deps.Texture, SrcHidden)
		n := c.board.RevealFrom(c.bx, c.by)
		if n == 1 {
			c.play(core.SoundSingle)
		} else {
			c.play(core.SoundClear)
		}
		s.SetFlagsUsed(0)
		s.StartTimer()
		c.checkWin(n)
		return
	}

	if cell.Status == board.Revealed {
		return
	}
	if cell.HasMine {
		c.play(core.SoundLose)
		c.board.RevealMines()
		s.PushState(OutcomeLose)
		return
	}

	s.SpawnClearEffect(c.bx, c.by, c.deps.Texture, SrcHidden)
	n := c.board.RevealFrom(c.bx, c.by)
	c.play(core.SoundClear)
	c.checkWin(n)
}

// checkWin only fires on a reveal that changed the board, so a cleared
// board signals exactly once.
func (c *Controller) checkWin(revealed int) {
	if revealed > 0 && c.board.Cleared() {
		c.deps.Session.PushState(OutcomeWin)
	}
}

func (c *Controller) rightClick() {
	s := c.deps.Session
	switch c.board.At(c.bx, c.by).Status {
	case board.Hidden:
		c.board.CycleMark(c.bx, c.by)
		s.IncrementFlagsUsed()
	case board.Marked:
		c.board.CycleMark(c.bx, c.by)
		s.DecrementFlagsUsed()
	case board.QuestionMarked:
		c.board.CycleMark(c.bx, c.by)
	default:
		return
	}
	c.play(core.SoundMark)
}

func (c *Controller) play(name string) {
	if c.deps.Sounds != nil {
		c.deps.Sounds.Play(name)
	}
}

// Update advances the fade toward MaxAlpha or 0, never overshooting.
func (c *Controller) Update(dt time.Duration) {
	step := c.deps.Theme.FadeSpeed * dt.Seconds()
	if c.fadingIn {
		c.alpha = math.Min(c.alpha+step, c.deps.Theme.MaxAlpha)
	} else {
		c.alpha = math.Max(c.alpha-step, 0)
	}
}

// Draw renders the cell sprite, then either the fade overlay (unrevealed)
// or the adjacency label (revealed, no mine, count > 0).
func (c *Controller) Draw(s core.Surface) {
	cell := c.board.At(c.bx, c.by)
	if c.deps.Texture != nil {
		s.DrawSprite(c.deps.Texture, SpriteFor(*cell), c.rect)
	}

	if cell.Status != board.Revealed {
		if a := uint8(math.Round(core.ClampF(c.alpha, 0, 255))); a > 0 {
			s.DrawFilledRect(c.rect, c.fadeColor.WithAlpha(a))
		}
		return
	}
	if cell.HasMine || cell.AdjacentMines == 0 {
		return
	}
	c.drawCount(s, cell.AdjacentMines)
}

func (c *Controller) drawCount(s core.Surface, n int) {
	fonts := c.deps.Fonts
	if fonts == nil {
		return
	}
	base := fonts.CurrentFont()
	if base == nil {
		return
	}
	f := fonts.Font(base.Name, c.deps.Theme.NumberScale*float64(c.rect.H))
	if f == nil {
		f = base
	}

	text := strconv.Itoa(n)
	w, h := fonts.Measure(f, text)
	x := c.rect.X + (c.rect.W-w)/2
	y := c.rect.Y + (c.rect.H-h)/2
	s.DrawText(f, c.deps.Theme.NumberColor(n), x, y, text)
}
