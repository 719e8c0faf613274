// Package tile implements the per-cell pointer controller: press capture,
// hover fade, left/right click semantics on the shared board, and drawing.
package tile

import "github.com/vovakirdan/tui-mines/internal/core"

// Outcome is the terminal result of a game.
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeLose
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "unknown"
	}
}

// EffectSpawner starts the visual effect shown when a cell is cleared.
type EffectSpawner interface {
	SpawnClearEffect(boardX, boardY int, tex core.Texture, src core.Rect)
}

// Counters tracks the flags-used counter and the game timer.
type Counters interface {
	SetFlagsUsed(n int)
	IncrementFlagsUsed()
	DecrementFlagsUsed()
	StartTimer()
}

// StateStack receives the terminal outcome of a game.
type StateStack interface {
	PushState(o Outcome)
}

// Session is everything a controller asks of the game that owns it.
type Session interface {
	EffectSpawner
	Counters
	StateStack
	// MineCount is the number of mines to place on first reveal.
	MineCount() int
}
