// Package board implements the minesweeper grid: lazy mine placement around
// the first revealed cell, adjacency counts, flood-fill reveal and the mark
// cycle. It knows nothing about rendering or input.
package board

// Status is the player-visible state of a cell.
type Status int

const (
	Hidden Status = iota
	Revealed
	Marked
	QuestionMarked
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Hidden:
		return "Hidden"
	case Revealed:
		return "Revealed"
	case Marked:
		return "Marked"
	case QuestionMarked:
		return "QuestionMarked"
	default:
		return "Unknown"
	}
}

// Flagged reports whether the status is one of the two marks.
func (s Status) Flagged() bool {
	return s == Marked || s == QuestionMarked
}

// Cell is one square of the board.
// AdjacentMines is only meaningful once the board is initialized.
type Cell struct {
	Status        Status
	HasMine       bool
	AdjacentMines int
}

// neighborOffsets lists the 8-neighbourhood.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
