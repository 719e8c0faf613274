package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/board"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/storage"
	"github.com/vovakirdan/tui-mines/internal/tile"
)

// ResultSaver persists finished games. *storage.Store implements it.
type ResultSaver interface {
	SaveResult(r storage.Result) (int64, error)
}

// Options configures a game. Zero collaborators are allowed: a nil Sounds,
// Fonts, Texture or Results simply disables that output.
type Options struct {
	Preset string
	Width  int
	Height int
	Mines  int
	// Layout, if set, is a fixed board of '*' and '.' rows that replaces
	// Width, Height and Mines.
	Layout []string

	TileW, TileH int
	Theme        tile.Theme
	Background   core.RGBA
	Text         core.RGBA
	Seed         int64

	Sounds  core.SoundPlayer
	Fonts   core.FontProvider
	Texture core.Texture
	Results ResultSaver
	Logger  *log.Logger
}

// Game runs successive sessions on one state stack.
type Game struct {
	opts   Options
	rng    *rand.Rand
	logger *log.Logger

	stack   Stack
	session *Session

	width, height int
	quit          bool
}

// New validates opts and starts the first session.
func New(opts Options) (*Game, error) {
	if opts.Layout != nil {
		b, err := board.NewFromLayout(opts.Layout)
		if err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
		opts.Width, opts.Height, opts.Mines = b.Width(), b.Height(), b.MineCount()
	} else if opts.Width <= 0 || opts.Height <= 0 || opts.Mines < 0 || opts.Mines >= opts.Width*opts.Height {
		return nil, fmt.Errorf("game: invalid board %dx%d with %d mines", opts.Width, opts.Height, opts.Mines)
	}
	if opts.TileW <= 0 {
		opts.TileW = 4
	}
	if opts.TileH <= 0 {
		opts.TileH = 2
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		opts:   opts,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		logger: logger,
		width:  core.DefaultConfig().ScreenW,
		height: core.DefaultConfig().ScreenH,
	}
	g.Restart()
	return g, nil
}

// Restart discards the current session and starts a fresh board.
func (g *Game) Restart() {
	var b *board.Board
	if g.opts.Layout != nil {
		// Validated in New.
		b, _ = board.NewFromLayout(g.opts.Layout)
	} else {
		b = board.New(g.opts.Width, g.opts.Height, g.rng.Int63()+1)
	}

	g.session = newSession(g, b)
	g.session.Layout(g.width, g.height)
	g.stack.Reset()
	g.stack.Push(g.session)
	g.logger.Debug("new board", "preset", g.opts.Preset, "width", b.Width(), "height", b.Height(), "mines", g.opts.Mines)
}

// Resize re-lays the board for a new canvas size without resetting it.
func (g *Game) Resize(width, height int) {
	g.width, g.height = width, height
	g.session.Layout(width, height)
}

// Quit asks the platform to end the program.
func (g *Game) Quit() { g.quit = true }

// Quitting reports whether Quit was requested.
func (g *Game) Quitting() bool { return g.quit }

// Preset returns the name results are recorded under.
func (g *Game) Preset() string { return g.opts.Preset }

// Session returns the current session.
func (g *Game) Session() *Session { return g.session }

// Top returns the state currently receiving input.
func (g *Game) Top() State { return g.stack.Top() }

// HandleInput forwards an event to the top state.
func (g *Game) HandleInput(ev core.Event) { g.stack.HandleInput(ev) }

// Update advances all states by dt.
func (g *Game) Update(dt time.Duration) { g.stack.Update(dt) }

// Draw renders all states.
func (g *Game) Draw(s core.Surface) { g.stack.Draw(s) }

// PopOverlay removes the outcome overlay so the finished board is visible.
func (g *Game) PopOverlay() {
	if g.stack.Len() > 1 {
		g.stack.Pop()
	}
}

func (g *Game) play(name string) {
	if g.opts.Sounds != nil {
		g.opts.Sounds.Play(name)
	}
}

func (g *Game) saveResult(s *Session, won bool) {
	if g.opts.Results == nil {
		return
	}
	r := storage.Result{
		Preset:   g.opts.Preset,
		Width:    s.board.Width(),
		Height:   s.board.Height(),
		Mines:    s.board.MineCount(),
		Won:      won,
		Duration: s.elapsed,
	}
	if _, err := g.opts.Results.SaveResult(r); err != nil {
		g.logger.Warn("could not save result", "err", err)
		return
	}
	g.logger.Debug("result saved", "preset", r.Preset, "won", won, "elapsed", r.Duration)
}

// textWidth measures text with the configured fonts, or by rune count.
func (g *Game) textWidth(text string) int {
	if g.opts.Fonts != nil {
		if f := g.opts.Fonts.CurrentFont(); f != nil {
			w, _ := g.opts.Fonts.Measure(f, text)
			return w
		}
	}
	return len([]rune(text))
}

func (g *Game) font() *core.Font {
	if g.opts.Fonts == nil {
		return nil
	}
	return g.opts.Fonts.CurrentFont()
}
