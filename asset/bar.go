package asset

import (
	"strings"

	"github.com/lixenwraith/idle-city/vmath"
)

// Bar renders "[###   ]" with width inner cells filled in proportion to value/maximum
func Bar(value, maximum, width int) string {
	if width < 0 {
		width = 0
	}
	filled := int(vmath.Ratio(float64(value), float64(maximum)) * float64(width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(" ", width-filled) + "]"
}

// Noise returns n runes drawn from charset
func Noise(rng *vmath.FastRand, charset string, n int) string {
	if n <= 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteRune(rng.Pick(charset))
	}
	return sb.String()
}
