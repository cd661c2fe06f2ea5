package asset

import (
	"fmt"
	"strings"
)

// ShaftOreRow is the first row of ore glyphs inside the shaft, used as the click target
const ShaftOreRow = 5

// MineShaft draws the shaft at depth with the current ore's glyph heaped at the bottom
func MineShaft(depth int, glyph string) []string {
	if glyph == "" {
		glyph = " "
	}
	return []string{
		"╔══════════════════════════════╗",
		fmt.Sprintf("║   MINING SHAFT - DEPTH %-2d    ║", depth),
		"╚══════════════════════════════╝",
		"       |           |",
		"      _|___________|_",
		"     /  " + strings.Repeat(glyph, 9) + "  \\",
		"    /  " + strings.Repeat(glyph, 11) + "  \\",
		"   /  " + strings.Repeat(glyph, 13) + "  \\",
		"  /___________________\\",
	}
}
