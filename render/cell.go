package render

import "github.com/gdamore/tcell/v2"

// Cell is one screen cell; Cont marks the right half of a wide rune
type Cell struct {
	Rune  rune
	Style tcell.Style
	Cont  bool
}

var emptyCell = Cell{Rune: ' ', Style: StyleDefault}
