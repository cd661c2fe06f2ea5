package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// cellWidth measures runes the way tcell lays them out, independent of the locale
var cellWidth = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// StringWidth returns the display width of s in cells
func StringWidth(s string) int {
	return cellWidth.StringWidth(s)
}

// RenderBuffer is the frame being composed, flushed to the screen once complete
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns the buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one rune; wide runes also claim the next cell
func (b *RenderBuffer) Set(x, y int, r rune, style tcell.Style) int {
	w := cellWidth.RuneWidth(r)
	if w == 0 {
		return 0
	}
	if !b.inBounds(x, y) {
		return w
	}
	if w == 2 && x+1 >= b.width {
		// no room for the right half
		b.cells[y*b.width+x] = Cell{Rune: ' ', Style: style}
		return w
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
	if w == 2 {
		b.cells[y*b.width+x+1] = Cell{Style: style, Cont: true}
	}
	return w
}

// Get returns the cell at (x, y), blank outside the buffer
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// SetStyle restyles cells in place, keeping their runes
func (b *RenderBuffer) SetStyle(x, y, w int, style tcell.Style) {
	for i := range w {
		if b.inBounds(x+i, y) {
			b.cells[y*b.width+x+i].Style = style
		}
	}
}

// Text writes s starting at (x, y) and returns the columns consumed
func (b *RenderBuffer) Text(x, y int, s string, style tcell.Style) int {
	col := x
	for _, r := range s {
		col += b.Set(col, y, r, style)
	}
	return col - x
}

// Lines writes rows top-down from (x, y) and returns the next free row
func (b *RenderBuffer) Lines(x, y int, lines []string, style tcell.Style) int {
	for i, line := range lines {
		b.Text(x, y+i, line, style)
	}
	return y + len(lines)
}

// Center writes s centered on row y
func (b *RenderBuffer) Center(y int, s string, style tcell.Style) int {
	x := max(0, (b.width-StringWidth(s))/2)
	b.Text(x, y, s, style)
	return x
}

// Fill paints a rectangle with r
func (b *RenderBuffer) Fill(x, y, w, h int, r rune, style tcell.Style) {
	row := strings.Repeat(string(r), max(0, w))
	for dy := range h {
		b.Text(x, y+dy, row, style)
	}
}

// String returns the buffer text, rows joined by newlines, for tests and debug dumps
func (b *RenderBuffer) String() string {
	var sb strings.Builder
	for y := range b.height {
		for x := range b.width {
			c := b.cells[y*b.width+x]
			if !c.Cont {
				sb.WriteRune(c.Rune)
			}
		}
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// FlushToScreen copies the buffer to the screen; the caller shows it
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := range b.height {
		for x := range b.width {
			c := b.cells[y*b.width+x]
			if c.Cont {
				continue
			}
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
}
