// Package render implements core.Surface on a styled cell buffer and turns
// it into lipgloss-styled terminal output.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// Cell is one terminal cell of the canvas.
// Ch == 0 marks the right half of a wide rune drawn in the previous cell.
type Cell struct {
	Ch   rune
	Fg   core.RGBA
	Bg   core.RGBA
	Bold bool
}

// Canvas is a 2D buffer of styled cells.
type Canvas struct {
	width  int
	height int
	bg     core.RGBA
	cells  []Cell
}

// NewCanvas creates a canvas cleared to bg.
func NewCanvas(width, height int, bg core.RGBA) *Canvas {
	c := &Canvas{width: width, height: height, bg: bg}
	c.cells = make([]Cell, width*height)
	c.Clear()
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() core.Rect { return core.NewRect(0, 0, c.width, c.height) }

// Resize changes the canvas dimensions and clears it.
func (c *Canvas) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height
	c.cells = make([]Cell, width*height)
	c.Clear()
}

// Clear fills the canvas with blank cells on the background color.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Ch: ' ', Fg: core.White, Bg: c.bg}
	}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Set writes a cell. Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, cell Cell) {
	if !c.inBounds(x, y) {
		return
	}
	c.cells[y*c.width+x] = cell
}

// Get returns the cell at (x, y), or a blank cell out of bounds.
func (c *Canvas) Get(x, y int) Cell {
	if !c.inBounds(x, y) {
		return Cell{Ch: ' ', Bg: c.bg}
	}
	return c.cells[y*c.width+x]
}

// DrawSprite samples the src region of tex into dst, nearest-neighbour on
// texel centers. The region's center glyph, if any, lands on dst's center.
func (c *Canvas) DrawSprite(tex core.Texture, src, dst core.Rect) {
	if tex == nil || src.Empty() || dst.Empty() || !dst.Intersects(c.Bounds()) {
		return
	}
	for dy := 0; dy < dst.H; dy++ {
		sy := src.Y + (2*dy+1)*src.H/(2*dst.H)
		for dx := 0; dx < dst.W; dx++ {
			sx := src.X + (2*dx+1)*src.W/(2*dst.W)
			t := tex.At(sx, sy)
			c.Set(dst.X+dx, dst.Y+dy, Cell{Ch: ' ', Fg: t.Fg, Bg: t.Bg})
		}
	}

	scx, scy := src.Center()
	g := tex.At(scx, scy)
	if g.Ch == ' ' || g.Ch == 0 {
		return
	}
	dcx, dcy := dst.Center()
	if runewidth.RuneWidth(g.Ch) > 1 && dcx+1 >= dst.Right() {
		return
	}
	c.putRune(dcx, dcy, g.Ch, g.Fg, false)
}

// DrawFilledRect composites col over dst. Both colors of each covered cell
// are blended so glyphs are tinted along with the background.
func (c *Canvas) DrawFilledRect(dst core.Rect, col core.RGBA) {
	if col.A == 0 || !dst.Intersects(c.Bounds()) {
		return
	}
	t := float64(col.A) / 255
	for y := dst.Y; y < dst.Bottom(); y++ {
		for x := dst.X; x < dst.Right(); x++ {
			if !c.inBounds(x, y) {
				continue
			}
			cell := &c.cells[y*c.width+x]
			cell.Bg = Blend(cell.Bg, col, t)
			cell.Fg = Blend(cell.Fg, col, t)
		}
	}
}

// DrawText writes text starting at (x, y) over the existing background.
// Font size is ignored: a terminal cell has exactly one text size.
func (c *Canvas) DrawText(f *core.Font, col core.RGBA, x, y int, text string) {
	bold := f != nil && f.Bold
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.putRune(x, y, r, col, bold)
		x += w
	}
}

func (c *Canvas) putRune(x, y int, r rune, fg core.RGBA, bold bool) {
	if !c.inBounds(x, y) {
		return
	}
	cell := &c.cells[y*c.width+x]
	cell.Ch, cell.Fg, cell.Bold = r, fg, bold
	if runewidth.RuneWidth(r) > 1 && c.inBounds(x+1, y) {
		next := &c.cells[y*c.width+x+1]
		next.Ch = 0
		next.Bg = cell.Bg
	}
}

// Row returns the plain text of row y without styling.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}
	var sb strings.Builder
	for x := 0; x < c.width; x++ {
		if ch := c.cells[y*c.width+x].Ch; ch != 0 {
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

// Plain returns the canvas as unstyled text, one line per row.
func (c *Canvas) Plain() string {
	rows := make([]string, c.height)
	for y := range rows {
		rows[y] = c.Row(y)
	}
	return strings.Join(rows, "\n")
}

type cellStyle struct {
	fg, bg core.RGBA
	bold   bool
}

// String renders the canvas as styled text.
// Adjacent cells with the same style are grouped to minimize escape codes.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height*2 + c.height)

	styles := make(map[cellStyle]lipgloss.Style)
	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		x := 0
		for x < c.width {
			first := c.cells[y*c.width+x]
			key := cellStyle{fg: first.Fg, bg: first.Bg, bold: first.Bold}

			var run strings.Builder
			for x < c.width {
				cell := c.cells[y*c.width+x]
				if (cellStyle{fg: cell.Fg, bg: cell.Bg, bold: cell.Bold}) != key && cell.Ch != 0 {
					break
				}
				if cell.Ch != 0 {
					run.WriteRune(cell.Ch)
				}
				x++
			}

			style, ok := styles[key]
			if !ok {
				style = lipgloss.NewStyle().
					Foreground(lipgloss.Color(key.fg.Hex())).
					Background(lipgloss.Color(key.bg.Hex())).
					Bold(key.bold)
				styles[key] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
