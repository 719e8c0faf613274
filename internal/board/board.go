package board

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Board is a width x height grid of cells stored row-major.
//
// Mines are placed lazily by Initialize so the first revealed cell is never a
// mine. The revealed counter always equals the number of Revealed cells.
type Board struct {
	width, height int
	cells         []Cell
	mineCount     int
	revealed      int
	initialized   bool
	rng           *rand.Rand
}

// New creates an uninitialized board with every cell hidden.
// A seed of 0 uses the current time.
func New(width, height int, seed int64) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("board: invalid size %dx%d", width, height))
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// NewFromLayout builds an initialized board from rows of '*' (mine) and
// '.' (safe). All rows must have the same length.
func NewFromLayout(rows []string) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("board: empty layout")
	}
	w, h := len(rows[0]), len(rows)
	b := New(w, h, 1)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("board: row %d has width %d, expected %d", y, len(row), w)
		}
		for x, ch := range row {
			switch ch {
			case '*':
				b.cells[b.index(x, y)].HasMine = true
				b.mineCount++
			case '.':
			default:
				return nil, fmt.Errorf("board: invalid cell %q at (%d, %d)", ch, x, y)
			}
		}
	}
	if b.mineCount >= w*h {
		return nil, fmt.Errorf("board: layout has no safe cell")
	}
	b.computeAdjacency()
	b.initialized = true
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// MineCount returns the number of mines (0 before initialization).
func (b *Board) MineCount() int { return b.mineCount }

// RevealedCount returns how many cells are currently revealed.
func (b *Board) RevealedCount() int { return b.revealed }

// Initialized reports whether mines have been placed.
func (b *Board) Initialized() bool { return b.initialized }

// InBounds reports whether (x, y) is a cell of the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

func (b *Board) mustInBounds(op string, x, y int) {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("board: %s(%d, %d) out of bounds %dx%d", op, x, y, b.width, b.height))
	}
}

// At returns the cell at (x, y). Mutations through the pointer are visible
// to the board; callers outside this package should only read it.
// Panics when (x, y) is out of bounds.
func (b *Board) At(x, y int) *Cell {
	b.mustInBounds("At", x, y)
	return &b.cells[b.index(x, y)]
}

// Initialize places mineCount mines uniformly at random and computes
// adjacency counts. The origin and, where the board leaves room, its
// neighbours are kept clear so the first reveal opens an area.
//
// Panics if the board is already initialized, the origin is out of bounds,
// or mineCount is not below the cell count.
func (b *Board) Initialize(originX, originY, mineCount int) {
	if b.initialized {
		panic("board: Initialize called twice")
	}
	b.mustInBounds("Initialize", originX, originY)
	total := b.width * b.height
	if mineCount < 0 || mineCount >= total {
		panic(fmt.Sprintf("board: mine count %d must be in [0, %d)", mineCount, total))
	}

	origin := b.index(originX, originY)
	var far, ring []int
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			i := b.index(x, y)
			switch {
			case i == origin:
			case abs(x-originX) <= 1 && abs(y-originY) <= 1:
				ring = append(ring, i)
			default:
				far = append(far, i)
			}
		}
	}

	b.rng.Shuffle(len(far), func(i, j int) { far[i], far[j] = far[j], far[i] })
	b.rng.Shuffle(len(ring), func(i, j int) { ring[i], ring[j] = ring[j], ring[i] })
	// Dense boards spill into the ring; the origin is never a candidate.
	pool := append(far, ring...)
	for _, i := range pool[:mineCount] {
		b.cells[i].HasMine = true
	}

	b.mineCount = mineCount
	b.computeAdjacency()
	b.initialized = true
}

func (b *Board) computeAdjacency() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			n := 0
			b.forNeighbors(x, y, func(nx, ny int) {
				if b.cells[b.index(nx, ny)].HasMine {
					n++
				}
			})
			b.cells[b.index(x, y)].AdjacentMines = n
		}
	}
}

func (b *Board) forNeighbors(x, y int, fn func(nx, ny int)) {
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if b.InBounds(nx, ny) {
			fn(nx, ny)
		}
	}
}

// RevealFrom reveals (x, y) and, when it has no adjacent mines, flood-fills
// outward through zero-count cells. Numbered cells on the frontier are
// revealed but not expanded; marked cells are never revealed.
//
// Returns the number of cells revealed by this call: 0 when the target is
// already revealed or flagged. Revealing a mine reveals just that cell.
// Panics if the board is not initialized or (x, y) is out of bounds.
func (b *Board) RevealFrom(x, y int) int {
	if !b.initialized {
		panic("board: RevealFrom before Initialize")
	}
	b.mustInBounds("RevealFrom", x, y)

	start := b.index(x, y)
	if b.cells[start].Status != Hidden {
		return 0
	}

	count := 0
	stack := []int{start}
	b.cells[start].Status = Revealed
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		c := &b.cells[i]
		if c.HasMine || c.AdjacentMines > 0 {
			continue
		}
		cx, cy := i%b.width, i/b.width
		b.forNeighbors(cx, cy, func(nx, ny int) {
			n := &b.cells[b.index(nx, ny)]
			if n.Status != Hidden || n.HasMine {
				return
			}
			// Marked before it is pushed, so each cell enters the stack once.
			n.Status = Revealed
			stack = append(stack, b.index(nx, ny))
		})
	}

	b.revealed += count
	return count
}

// CycleMark advances the mark on a cell: Hidden -> Marked ->
// QuestionMarked -> Hidden. Revealed cells are unchanged.
// Returns the new status.
func (b *Board) CycleMark(x, y int) Status {
	c := b.At(x, y)
	switch c.Status {
	case Hidden:
		c.Status = Marked
	case Marked:
		c.Status = QuestionMarked
	case QuestionMarked:
		c.Status = Hidden
	}
	return c.Status
}

// ClearMarks resets every marked or question-marked cell to Hidden.
func (b *Board) ClearMarks() {
	for i := range b.cells {
		if b.cells[i].Status.Flagged() {
			b.cells[i].Status = Hidden
		}
	}
}

// RevealMines reveals every mined cell, keeping the revealed counter in sync.
// It does not decide the outcome; callers do that.
func (b *Board) RevealMines() {
	for i := range b.cells {
		c := &b.cells[i]
		if c.HasMine && c.Status != Revealed {
			c.Status = Revealed
			b.revealed++
		}
	}
}

// Cleared reports whether every non-mine cell has been revealed.
// Only valid before RevealMines is called.
func (b *Board) Cleared() bool {
	return b.initialized && b.revealed == b.width*b.height-b.mineCount
}

// MarkedCount returns the number of cells carrying the Marked flag.
func (b *Board) MarkedCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Status == Marked {
			n++
		}
	}
	return n
}

// String renders the board as text, one row per line:
// '#' hidden, 'F' marked, '?' question, '*' revealed mine, ' ' revealed
// zero, digits for revealed counts.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			sb.WriteByte(cellGlyph(b.cells[b.index(x, y)]))
		}
	}
	return sb.String()
}

func cellGlyph(c Cell) byte {
	switch c.Status {
	case Marked:
		return 'F'
	case QuestionMarked:
		return '?'
	case Revealed:
		if c.HasMine {
			return '*'
		}
		if c.AdjacentMines == 0 {
			return ' '
		}
		return byte('0' + c.AdjacentMines)
	default:
		return '#'
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
