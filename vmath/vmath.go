// Package vmath holds small numeric helpers shared by systems and art generators
package vmath

import "math"

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampF bounds v to [lo, hi]
func ClampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// AbsInt returns |x|
func AbsInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Ratio returns num/den in [0, 1], zero when den is not positive
func Ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return ClampF(num/den, 0, 1)
}
