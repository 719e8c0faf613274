package game

import (
	"time"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/tile"
)

const (
	overlayWidth  = 34
	overlayHeight = 7
	overlayAlpha  = 230
	overlayFadeIn = 250 * time.Millisecond
)

// OutcomeState is the win/lose panel shown over a finished board.
// It takes all input: R or Enter restarts, B shows the board, Q quits.
type OutcomeState struct {
	game    *Game
	session *Session
	outcome tile.Outcome
	age     time.Duration
}

func newOutcomeState(g *Game, s *Session, o tile.Outcome) *OutcomeState {
	return &OutcomeState{game: g, session: s, outcome: o}
}

// Outcome returns the result this panel announces.
func (o *OutcomeState) Outcome() tile.Outcome { return o.outcome }

// HandleInput handles the panel's keys. Pointer input is swallowed.
func (o *OutcomeState) HandleInput(ev core.Event) {
	ae, ok := ev.(core.ActionEvent)
	if !ok {
		return
	}
	switch ae.Action {
	case core.ActionRestart, core.ActionConfirm:
		o.game.Restart()
	case core.ActionBack:
		o.game.PopOverlay()
	case core.ActionQuit:
		o.game.Quit()
	}
}

// Update ages the panel for its fade-in.
func (o *OutcomeState) Update(dt time.Duration) {
	o.age += dt
}

// Title returns the panel headline.
func (o *OutcomeState) Title() string {
	if o.outcome == tile.OutcomeWin {
		return "CLEARED!"
	}
	return "BOOM"
}

// Draw renders the panel centered on the board.
func (o *OutcomeState) Draw(s core.Surface) {
	br := o.session.boardRect
	cx, cy := br.Center()
	panel := core.NewRect(cx-overlayWidth/2, cy-overlayHeight/2, overlayWidth, overlayHeight)

	a := core.ClampF(o.age.Seconds()/overlayFadeIn.Seconds(), 0, 1) * overlayAlpha
	s.DrawFilledRect(panel, o.game.opts.Background.WithAlpha(uint8(a)))

	lines := []string{
		o.Title(),
		"",
		"Time " + FormatElapsed(o.session.elapsed),
		"",
		"R restart   B board   Q quit",
	}
	font := o.game.font()
	for i, line := range lines {
		if line == "" {
			continue
		}
		x := panel.X + (panel.W-o.game.textWidth(line))/2
		c := o.game.opts.Text
		if i == 0 {
			c = o.game.opts.Theme.NumberColor(3)
			if o.outcome == tile.OutcomeWin {
				c = o.game.opts.Theme.NumberColor(2)
			}
		}
		s.DrawText(font, c, x, panel.Y+1+i, line)
	}
}
