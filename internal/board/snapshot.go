package board

// Snapshot captures the complete board state for determinism testing.
type Snapshot struct {
	Width, Height int
	MineCount     int
	Revealed      int
	Initialized   bool
	Mines         []int // Row-major indices of mined cells
	Statuses      []Status
}

// Snapshot returns a copy of the current board state.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Width:       b.width,
		Height:      b.height,
		MineCount:   b.mineCount,
		Revealed:    b.revealed,
		Initialized: b.initialized,
		Statuses:    make([]Status, len(b.cells)),
	}
	for i, c := range b.cells {
		s.Statuses[i] = c.Status
		if c.HasMine {
			s.Mines = append(s.Mines, i)
		}
	}
	return s
}
