// Package game owns a minesweeper session: the board, its tile controllers,
// effects and HUD, and the state stack that puts win/lose overlays on top.
package game

import (
	"time"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// State is one layer of the state stack.
type State interface {
	HandleInput(ev core.Event)
	Update(dt time.Duration)
	Draw(s core.Surface)
}

// Stack delivers input to the top state only, and updates and draws every
// state bottom-up so overlays render above the board they cover.
type Stack struct {
	states []State
}

// Push puts s on top.
func (k *Stack) Push(s State) {
	k.states = append(k.states, s)
}

// Pop removes and returns the top state, or nil when empty.
func (k *Stack) Pop() State {
	if len(k.states) == 0 {
		return nil
	}
	top := k.states[len(k.states)-1]
	k.states = k.states[:len(k.states)-1]
	return top
}

// Top returns the top state, or nil when empty.
func (k *Stack) Top() State {
	if len(k.states) == 0 {
		return nil
	}
	return k.states[len(k.states)-1]
}

// Len returns the number of states.
func (k *Stack) Len() int { return len(k.states) }

// Reset drops every state.
func (k *Stack) Reset() { k.states = k.states[:0] }

// HandleInput forwards ev to the top state.
func (k *Stack) HandleInput(ev core.Event) {
	if top := k.Top(); top != nil {
		top.HandleInput(ev)
	}
}

// Update advances every state.
func (k *Stack) Update(dt time.Duration) {
	// Copy: a state may push or pop during its update.
	states := append([]State(nil), k.states...)
	for _, s := range states {
		s.Update(dt)
	}
}

// Draw renders every state, bottom first.
func (k *Stack) Draw(s core.Surface) {
	for _, st := range k.states {
		st.Draw(s)
	}
}
