package game

import (
	"time"

	"github.com/vovakirdan/tui-mines/internal/board"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/effect"
	"github.com/vovakirdan/tui-mines/internal/tile"
)

// hudHeight is the number of canvas rows reserved above the board.
const hudHeight = 2

// Session is one board being played. It implements tile.Session for its
// controllers and State for the stack.
type Session struct {
	game  *Game
	board *board.Board
	mines int

	tiles     []*tile.Controller
	drawables []core.Drawable

	boardRect    core.Rect
	tileW, tileH int

	flagsUsed int
	elapsed   time.Duration
	started   bool
	timing    bool

	over    bool
	outcome tile.Outcome
}

var _ tile.Session = (*Session)(nil)

func newSession(g *Game, b *board.Board) *Session {
	s := &Session{
		game:  g,
		board: b,
		mines: g.opts.Mines,
		tileW: g.opts.TileW,
		tileH: g.opts.TileH,
	}
	deps := tile.Deps{
		Session: s,
		Sounds:  g.opts.Sounds,
		Fonts:   g.opts.Fonts,
		Texture: g.opts.Texture,
		Theme:   g.opts.Theme,
	}
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			t := tile.New(b, x, y, core.Rect{}, deps)
			s.tiles = append(s.tiles, t)
			s.drawables = append(s.drawables, t)
		}
	}
	s.drawables = append(s.drawables, newHUD(s))
	return s
}

// Board returns the session's board.
func (s *Session) Board() *board.Board { return s.board }

// Tile returns the controller of cell (x, y).
func (s *Session) Tile(x, y int) *tile.Controller { return s.tiles[y*s.board.Width()+x] }

// BoardRect returns the screen area covered by tiles.
func (s *Session) BoardRect() core.Rect { return s.boardRect }

// FlagsUsed returns the number of cells currently flagged as mines.
func (s *Session) FlagsUsed() int { return s.flagsUsed }

// MinesLeft is the mine count minus flags; negative when over-flagged.
func (s *Session) MinesLeft() int { return s.mines - s.flagsUsed }

// Elapsed returns the game time so far.
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// Timing reports whether the timer is running.
func (s *Session) Timing() bool { return s.timing }

// Over reports whether the session has an outcome.
func (s *Session) Over() (tile.Outcome, bool) { return s.outcome, s.over }

// Layout places the tiles for a canvas of the given size. Tiles shrink when
// the board does not fit; the board itself is untouched.
func (s *Session) Layout(width, height int) {
	bw, bh := s.board.Width(), s.board.Height()
	tw, th := s.game.opts.TileW, s.game.opts.TileH
	for tw > 1 && tw*bw > width {
		tw--
	}
	for th > 1 && th*bh > height-hudHeight {
		th--
	}
	s.tileW, s.tileH = tw, th

	x := max((width-tw*bw)/2, 0)
	y := hudHeight + max((height-hudHeight-th*bh)/2, 0)
	s.boardRect = core.NewRect(x, y, tw*bw, th*bh)

	for _, t := range s.tiles {
		bx, by := t.Cell()
		t.SetRect(s.tileRect(bx, by))
	}
}

func (s *Session) tileRect(bx, by int) core.Rect {
	return core.NewRect(s.boardRect.X+bx*s.tileW, s.boardRect.Y+by*s.tileH, s.tileW, s.tileH)
}

// HandleInput routes keys to session commands and pointer events to every
// drawable. Pointer input is ignored once the game is over.
func (s *Session) HandleInput(ev core.Event) {
	if ae, ok := ev.(core.ActionEvent); ok {
		switch ae.Action {
		case core.ActionRestart:
			s.game.Restart()
		case core.ActionQuit:
			s.game.Quit()
		}
		return
	}
	if s.over {
		return
	}

	for _, d := range s.drawables {
		d.HandleInput(ev)
	}

	// Fixed layouts are initialized up front, so the first reveal starts
	// the timer here instead.
	if !s.over && s.board.RevealedCount() > 0 {
		s.StartTimer()
	}
}

// Update advances the timer, fades and effects, dropping finished effects.
func (s *Session) Update(dt time.Duration) {
	if s.timing {
		s.elapsed += dt
	}
	for _, d := range s.drawables {
		d.Update(dt)
	}

	kept := s.drawables[:0]
	for _, d := range s.drawables {
		if !d.ShouldDelete() {
			kept = append(kept, d)
		}
	}
	for i := len(kept); i < len(s.drawables); i++ {
		s.drawables[i] = nil
	}
	s.drawables = kept
}

// Draw renders every drawable in insertion order: tiles, HUD, effects.
func (s *Session) Draw(surf core.Surface) {
	for _, d := range s.drawables {
		d.Draw(surf)
	}
}

// SpawnClearEffect starts the break-apart effect over cell (bx, by).
func (s *Session) SpawnClearEffect(bx, by int, tex core.Texture, src core.Rect) {
	s.drawables = append(s.drawables,
		effect.NewClear(tex, src, s.tileRect(bx, by), s.game.opts.Background, s.game.rng))
}

// SetFlagsUsed sets the flag counter.
func (s *Session) SetFlagsUsed(n int) { s.flagsUsed = n }

// IncrementFlagsUsed counts a new flag.
func (s *Session) IncrementFlagsUsed() { s.flagsUsed++ }

// DecrementFlagsUsed uncounts a flag.
func (s *Session) DecrementFlagsUsed() { s.flagsUsed-- }

// StartTimer starts the game timer once per session.
func (s *Session) StartTimer() {
	if s.started {
		return
	}
	s.started = true
	s.timing = true
}

// MineCount returns the number of mines for this board.
func (s *Session) MineCount() int { return s.mines }

// PushState ends the session with o: stops the timer, records the result
// and puts the outcome overlay on the stack. Later calls are ignored.
func (s *Session) PushState(o tile.Outcome) {
	if s.over {
		return
	}
	s.over = true
	s.outcome = o
	s.timing = false

	won := o == tile.OutcomeWin
	if won {
		s.game.play(core.SoundWin)
	}
	s.game.logger.Info("game over", "outcome", o, "preset", s.game.opts.Preset, "elapsed", s.elapsed.Round(time.Millisecond))
	s.game.saveResult(s, won)
	s.game.stack.Push(newOutcomeState(s.game, s, o))
}
