package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// HUD draws the status line above the board.
type HUD struct {
	session *Session
}

func newHUD(s *Session) *HUD {
	return &HUD{session: s}
}

// HandleInput ignores input.
func (h *HUD) HandleInput(core.Event) {}

// Update does nothing; the HUD reads the session when drawing.
func (h *HUD) Update(time.Duration) {}

// ShouldDelete is always false.
func (h *HUD) ShouldDelete() bool { return false }

// Draw renders mines left, elapsed time and the preset name, centered
// over the board.
func (h *HUD) Draw(surf core.Surface) {
	s := h.session
	text := h.Text()
	r := s.boardRect
	x := r.X + (r.W-s.game.textWidth(text))/2
	if x < 0 {
		x = 0
	}
	surf.DrawText(s.game.font(), s.game.opts.Text, x, 0, text)
}

// Text returns the status line.
func (h *HUD) Text() string {
	s := h.session
	return fmt.Sprintf("Mines %3d   Time %s   %s", s.MinesLeft(), FormatElapsed(s.elapsed), s.game.opts.Preset)
}

// FormatElapsed renders a duration as MM:SS, or H:MM:SS past an hour.
func FormatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	if secs >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs/60%60, secs%60)
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
