package game

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-mines/internal/board"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/storage"
	"github.com/vovakirdan/tui-mines/internal/tile"
)

type fakeSounds struct {
	played []string
}

func (p *fakeSounds) Play(name string) { p.played = append(p.played, name) }

func (p *fakeSounds) has(name string) bool {
	for _, s := range p.played {
		if s == name {
			return true
		}
	}
	return false
}

type fakeResults struct {
	saved []storage.Result
	err   error
}

func (r *fakeResults) SaveResult(res storage.Result) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.saved = append(r.saved, res)
	return int64(len(r.saved)), nil
}

type fakeSurface struct {
	texts []string
	fills int
}

func (s *fakeSurface) DrawSprite(tex core.Texture, src, dst core.Rect) {}
func (s *fakeSurface) DrawFilledRect(dst core.Rect, c core.RGBA)       { s.fills++ }
func (s *fakeSurface) DrawText(f *core.Font, c core.RGBA, x, y int, text string) {
	s.texts = append(s.texts, text)
}

func (s *fakeSurface) hasText(sub string) bool {
	for _, t := range s.texts {
		if strings.Contains(t, sub) {
			return true
		}
	}
	return false
}

// cornerLayout has one mine in the top-left corner; a click on the
// opposite corner clears the whole board.
var cornerLayout = []string{
	"*..",
	"...",
	"...",
}

func newTestGame(t *testing.T, opts Options) (*Game, *fakeSounds, *fakeResults) {
	t.Helper()
	sounds := &fakeSounds{}
	results := &fakeResults{}
	opts.Sounds = sounds
	opts.Results = results
	opts.Theme = tile.DefaultTheme()
	if opts.Preset == "" {
		opts.Preset = "test"
	}
	g, err := New(opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g, sounds, results
}

func click(g *Game, bx, by int, button core.PointerButton) {
	r := g.Session().Tile(bx, by).Rect()
	x, y := r.X+1, r.Y
	g.HandleInput(core.PointerEvent{Kind: core.PointerMotion, X: x, Y: y, PrevX: -1, PrevY: -1})
	g.HandleInput(core.PointerEvent{Kind: core.PointerDown, Button: button, X: x, Y: y, PrevX: x, PrevY: y})
	g.HandleInput(core.PointerEvent{Kind: core.PointerUp, Button: button, X: x, Y: y, PrevX: x, PrevY: y})
}

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"zero width", Options{Width: 0, Height: 5, Mines: 1}},
		{"negative mines", Options{Width: 5, Height: 5, Mines: -1}},
		{"too many mines", Options{Width: 3, Height: 3, Mines: 9}},
		{"bad layout", Options{Layout: []string{"*x"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewLayoutOverridesSize(t *testing.T) {
	g, _, _ := newTestGame(t, Options{Width: 30, Height: 30, Mines: 99, Layout: cornerLayout})
	b := g.Session().Board()
	if b.Width() != 3 || b.Height() != 3 || b.MineCount() != 1 {
		t.Errorf("board = %dx%d/%d, want 3x3/1", b.Width(), b.Height(), b.MineCount())
	}
	if g.Session().MineCount() != 1 {
		t.Errorf("MineCount() = %d, want 1", g.Session().MineCount())
	}
}

func TestLayoutCentersBoard(t *testing.T) {
	g, _, _ := newTestGame(t, Options{Layout: cornerLayout})
	g.Resize(80, 24)

	r := g.Session().BoardRect()
	if r.W != 12 || r.H != 6 {
		t.Fatalf("board rect = %+v, want 12x6", r)
	}
	if r.X != 34 || r.Y != 10 {
		t.Errorf("board origin = (%d,%d), want (34,10)", r.X, r.Y)
	}
	if got := g.Session().Tile(2, 1).Rect(); got != core.NewRect(42, 12, 4, 2) {
		t.Errorf("tile (2,1) rect = %+v", got)
	}
}

func TestLayoutShrinksTiles(t *testing.T) {
	g, _, _ := newTestGame(t, Options{Width: 30, Height: 16, Mines: 10})
	g.Resize(60, 20)

	r := g.Session().BoardRect()
	if r.W > 60 || r.Bottom() > 20 {
		t.Errorf("board rect %+v does not fit 60x20", r)
	}
	if r.Y < hudHeight {
		t.Errorf("board overlaps HUD: y = %d", r.Y)
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g, _, _ := newTestGame(t, Options{Width: 9, Height: 9, Mines: 10, Seed: 3})
	click(g, 4, 4, core.ButtonLeft)
	before := g.Session().Board().RevealedCount()

	g.Resize(120, 40)
	if got := g.Session().Board().RevealedCount(); got != before {
		t.Errorf("RevealedCount() after resize = %d, want %d", got, before)
	}
}

func TestFirstClickStartsGame(t *testing.T) {
	g, sounds, _ := newTestGame(t, Options{Width: 9, Height: 9, Mines: 10, Seed: 7})
	s := g.Session()

	click(g, 4, 4, core.ButtonLeft)
	if !s.Board().Initialized() {
		t.Fatal("board not initialized after first click")
	}
	if s.Board().At(4, 4).HasMine {
		t.Error("first click landed on a mine")
	}
	if !s.Timing() {
		t.Error("timer not running after first click")
	}
	if !sounds.has(core.SoundClear) && !sounds.has(core.SoundSingle) {
		t.Errorf("no reveal sound, played %v", sounds.played)
	}

	g.Update(1500 * time.Millisecond)
	if s.Elapsed() != 1500*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 1.5s", s.Elapsed())
	}
}

func TestTimerIdleBeforeFirstClick(t *testing.T) {
	g, _, _ := newTestGame(t, Options{Width: 9, Height: 9, Mines: 10})
	g.Update(time.Second)
	if g.Session().Elapsed() != 0 {
		t.Errorf("Elapsed() = %v before first click", g.Session().Elapsed())
	}
}

func TestWinSavesResultOnce(t *testing.T) {
	g, sounds, results := newTestGame(t, Options{Preset: "corner", Layout: cornerLayout})
	s := g.Session()

	// The whole safe area floods from the far corner.
	click(g, 2, 2, core.ButtonLeft)
	o, over := s.Over()
	if !over || o != tile.OutcomeWin {
		t.Fatalf("Over() = %v, %v; want win", o, over)
	}
	if !sounds.has(core.SoundWin) {
		t.Error("win sound not played")
	}
	if s.Timing() {
		t.Error("timer still running after win")
	}
	if len(results.saved) != 1 {
		t.Fatalf("saved %d results, want 1", len(results.saved))
	}
	r := results.saved[0]
	if !r.Won || r.Preset != "corner" || r.Mines != 1 {
		t.Errorf("saved result = %+v", r)
	}
	if _, ok := g.Top().(*OutcomeState); !ok {
		t.Errorf("top state = %T, want *OutcomeState", g.Top())
	}

	s.PushState(tile.OutcomeWin)
	if len(results.saved) != 1 {
		t.Error("second PushState saved again")
	}
}

func TestLoseRevealsMines(t *testing.T) {
	g, sounds, results := newTestGame(t, Options{Layout: cornerLayout})
	s := g.Session()

	click(g, 2, 2, core.ButtonRight)
	click(g, 0, 0, core.ButtonLeft)

	o, over := s.Over()
	if !over || o != tile.OutcomeLose {
		t.Fatalf("Over() = %v, %v; want lose", o, over)
	}
	if s.Board().At(0, 0).Status != board.Revealed {
		t.Error("mine not revealed")
	}
	if !sounds.has(core.SoundLose) {
		t.Error("lose sound not played")
	}
	if len(results.saved) != 1 || results.saved[0].Won {
		t.Errorf("saved = %+v, want one loss", results.saved)
	}
}

func TestFlagCounter(t *testing.T) {
	g, _, _ := newTestGame(t, Options{Layout: cornerLayout})
	s := g.Session()

	click(g, 0, 0, core.ButtonRight)
	if s.FlagsUsed() != 1 || s.MinesLeft() != 0 {
		t.Errorf("after flag: used %d left %d", s.FlagsUsed(), s.MinesLeft())
	}
	click(g, 1, 1, core.ButtonRight)
	if s.MinesLeft() != -1 {
		t.Errorf("MinesLeft() = %d, want -1", s.MinesLeft())
	}
	click(g, 1, 1, core.ButtonRight)
	if s.FlagsUsed() != 1 {
		t.Errorf("question mark: FlagsUsed() = %d, want 1", s.FlagsUsed())
	}
}

func TestPointerIgnoredWhenOver(t *testing.T) {
	g, _, _ := newTestGame(t, Options{Layout: cornerLayout})
	click(g, 0, 0, core.ButtonLeft)
	g.PopOverlay()

	s := g.Session()
	before := s.Board().RevealedCount()
	click(g, 2, 2, core.ButtonLeft)
	if s.Board().RevealedCount() != before {
		t.Error("board changed after game over")
	}
}

func TestOutcomeKeys(t *testing.T) {
	tests := []struct {
		name    string
		action  core.Action
		restart bool
		pop     bool
		quit    bool
	}{
		{"restart", core.ActionRestart, true, false, false},
		{"confirm", core.ActionConfirm, true, false, false},
		{"back", core.ActionBack, false, true, false},
		{"quit", core.ActionQuit, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _, _ := newTestGame(t, Options{Layout: cornerLayout})
			old := g.Session()
			click(g, 0, 0, core.ButtonLeft)

			g.HandleInput(core.ActionEvent{Action: tt.action})

			if got := g.Session() != old; got != tt.restart {
				t.Errorf("restarted = %v, want %v", got, tt.restart)
			}
			_, isOverlay := g.Top().(*OutcomeState)
			if tt.pop && isOverlay {
				t.Error("overlay still on top after back")
			}
			if tt.restart && isOverlay {
				t.Error("overlay survived restart")
			}
			if g.Quitting() != tt.quit {
				t.Errorf("Quitting() = %v, want %v", g.Quitting(), tt.quit)
			}
		})
	}
}

func TestSessionKeys(t *testing.T) {
	g, _, _ := newTestGame(t, Options{Width: 9, Height: 9, Mines: 10})
	old := g.Session()
	click(g, 0, 0, core.ButtonLeft)

	g.HandleInput(core.ActionEvent{Action: core.ActionRestart})
	if g.Session() == old {
		t.Fatal("restart kept the old session")
	}
	if g.Session().Board().Initialized() {
		t.Error("restarted board already initialized")
	}
	if g.Session().Elapsed() != 0 || g.Session().FlagsUsed() != 0 {
		t.Error("restart kept counters")
	}

	g.HandleInput(core.ActionEvent{Action: core.ActionQuit})
	if !g.Quitting() {
		t.Error("quit not requested")
	}
}

func TestEffectsExpire(t *testing.T) {
	g, _, _ := newTestGame(t, Options{Width: 9, Height: 9, Mines: 10, Seed: 1})
	s := g.Session()
	base := len(s.drawables)

	click(g, 4, 4, core.ButtonLeft)
	if len(s.drawables) != base+1 {
		t.Fatalf("drawables = %d, want %d", len(s.drawables), base+1)
	}
	g.Update(2 * time.Second)
	if len(s.drawables) != base {
		t.Errorf("drawables after expiry = %d, want %d", len(s.drawables), base)
	}
}

func TestSaveErrorIsLogged(t *testing.T) {
	g, _, results := newTestGame(t, Options{Layout: cornerLayout})
	results.err = errors.New("disk full")

	click(g, 2, 2, core.ButtonLeft)
	if _, over := g.Session().Over(); !over {
		t.Error("save failure blocked the outcome")
	}
}

func TestDrawShowsHUDAndOverlay(t *testing.T) {
	g, _, _ := newTestGame(t, Options{Preset: "corner", Layout: cornerLayout})
	surf := &fakeSurface{}
	g.Draw(surf)
	if !surf.hasText("Mines") || !surf.hasText("00:00") || !surf.hasText("corner") {
		t.Errorf("HUD texts = %v", surf.texts)
	}

	click(g, 2, 2, core.ButtonLeft)
	surf = &fakeSurface{}
	g.Draw(surf)
	if !surf.hasText("CLEARED!") {
		t.Errorf("overlay texts = %v", surf.texts)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{59*time.Second + 900*time.Millisecond, "00:59"},
		{61 * time.Second, "01:01"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		if got := FormatElapsed(tt.in); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLayoutTimerStartsOnFirstReveal(t *testing.T) {
	g, _, _ := newTestGame(t, Options{Layout: cornerLayout})
	s := g.Session()

	click(g, 2, 2, core.ButtonRight)
	if s.Timing() {
		t.Fatal("flagging started the timer")
	}
	click(g, 1, 1, core.ButtonLeft)
	if !s.Timing() {
		t.Fatal("timer did not start on the first reveal")
	}
	if s.Board().RevealedCount() != 1 {
		t.Errorf("RevealedCount() = %d, want 1", s.Board().RevealedCount())
	}
}
