// Package renderers draws the game pages into the render buffer
package renderers

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/idle-city/render"
)

// Money formats a balance with thousands separators and cents
func Money(v float64) string {
	return "$" + humanize.CommafWithDigits(v, 2)
}

// Cost formats a whole-dollar price
func Cost(v int64) string {
	return "$" + humanize.Comma(v)
}

// countLabel shows "(n/max)", or "(n)" for single purchases
func countLabel(count, maximum int) string {
	if maximum == 1 {
		return fmt.Sprintf("(%d)", count)
	}
	return fmt.Sprintf("(%d/%d)", count, maximum)
}

// keyLabel renders a purchase key the way the player types it
func keyLabel(key string) string {
	return "[" + strings.ToUpper(key) + "]"
}

// drawArt writes lines with a per-rune style, spaces are left untouched
func drawArt(buf *render.RenderBuffer, x, y int, lines []string, style func(rune) tcell.Style) {
	for dy, line := range lines {
		col := x
		for _, r := range line {
			if r == ' ' {
				col++
				continue
			}
			col += buf.Set(col, y+dy, r, style(r))
		}
	}
}

// crop returns the middle width cells of each line, for art wider than its column
func crop(lines []string, width int) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		runes := []rune(line)
		if len(runes) <= width {
			out[i] = line
			continue
		}
		start := (len(runes) - width) / 2
		out[i] = string(runes[start : start+width])
	}
	return out
}
