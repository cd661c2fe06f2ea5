package vmath

import "math"

// EllipsePoint returns the cell at angle deg on an ellipse centered at (cx, cy)
// Angles grow clockwise on screen since terminal Y points down
func EllipsePoint(cx, cy, rx, ry int, deg float64) (x, y int) {
	rad := deg * math.Pi / 180
	x = cx + int(math.Round(float64(rx)*math.Cos(rad)))
	y = cy + int(math.Round(float64(ry)*math.Sin(rad)))
	return x, y
}

// AspectDist returns the distance of (dx, dy) from the origin with Y stretched
// to compensate for the 1:2 cell aspect of terminals
func AspectDist(dx, dy float64) float64 {
	return math.Hypot(dx/2, dy)
}
