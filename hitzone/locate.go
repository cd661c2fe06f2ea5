package hitzone

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// cells measures display width independent of the locale so zones match what tcell draws
var cells = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Locate finds a label in art and returns its padded bounding zone in art coordinates
// Label parts must sit on consecutive rows; columns are display cells, not bytes
// The first matching row wins; padCol widens the zone on both sides, clipped at column 0
func Locate(name string, art []string, parts []string, padCol int) (Zone, bool) {
	if len(parts) == 0 {
		return Zone{}, false
	}

	for row := 0; row+len(parts) <= len(art); row++ {
		left, right := -1, -1
		found := true
		for i, part := range parts {
			col, width, ok := find(art[row+i], part)
			if !ok {
				found = false
				break
			}
			if left < 0 || col < left {
				left = col
			}
			right = max(right, col+width-1)
		}
		if !found {
			continue
		}
		return Rect(name, max(0, left-padCol), row, right+padCol, row+len(parts)-1), true
	}
	return Zone{}, false
}

// find returns the display column and width of needle in line, case-insensitive
func find(line, needle string) (col, width int, ok bool) {
	upper := strings.ToUpper(line)
	idx := strings.Index(upper, strings.ToUpper(needle))
	if idx < 0 {
		return 0, 0, false
	}
	return cells.StringWidth(upper[:idx]), cells.StringWidth(needle), true
}
