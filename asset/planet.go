package asset

import (
	"fmt"

	"github.com/lixenwraith/idle-city/parameter"
	"github.com/lixenwraith/idle-city/vmath"
)

// Orbit is an ellipse around the planet center, RX is wider to suit the cell aspect
type Orbit struct {
	RX, RY int
}

// Orbits returns the rings for a planet size, more rings as it grows
func Orbits(size int) []Orbit {
	radius := parameter.PlanetBaseRadius + size
	count := max(1, min(parameter.PlanetMaxOrbits, 1+size/2))
	orbits := make([]Orbit, count)
	for j := range orbits {
		orbits[j] = Orbit{
			RX: int(float64(radius) * (3.2 + float64(j))),
			RY: max(1, int(float64(radius)*(0.7+float64(j)*0.25))),
		}
	}
	return orbits
}

// ShipsPerOrbit spreads ships over orbits by circumference weight, remainder round-robin
func ShipsPerOrbit(orbits []Orbit, ships int) []int {
	per := make([]int, len(orbits))
	if ships <= 0 || len(orbits) == 0 {
		return per
	}
	total := 0
	for _, o := range orbits {
		total += o.RX + o.RY
	}
	total = max(1, total)
	assigned := 0
	for j, o := range orbits {
		per[j] = ships * (o.RX + o.RY) / total
		assigned += per[j]
	}
	for j := 0; assigned < ships; j++ {
		per[j%len(per)]++
		assigned++
	}
	return per
}

// Planet draws a planet of the given size with dotted orbits and ships, sized to fit the outer orbit
// phase rotates ships in degrees so the renderer can animate them
func Planet(size, ships int, phase float64) []string {
	radius := parameter.PlanetBaseRadius + size
	orbits := Orbits(size)
	outer := orbits[len(orbits)-1]
	height := max(radius, outer.RY)*2 + 1
	width := max(radius*2, outer.RX)*2 + 1
	cx, cy := width/2, height/2

	canvas := make([][]rune, height)
	for y := range canvas {
		canvas[y] = make([]rune, width)
		for x := range canvas[y] {
			d := vmath.AspectDist(float64(x-cx), float64(y-cy))
			r := float64(radius)
			switch {
			case d <= r*parameter.PlanetCoreRatio:
				canvas[y][x] = parameter.PlanetCoreFill
			case d <= r*parameter.PlanetMantleRatio:
				canvas[y][x] = parameter.PlanetMantleFill
			case d <= r*parameter.PlanetHaloRatio:
				canvas[y][x] = parameter.PlanetHaloFill
			default:
				canvas[y][x] = ' '
			}
		}
	}

	put := func(x, y int, glyph rune, onlyBlank bool) {
		if y < 0 || y >= height || x < 0 || x >= width {
			return
		}
		if onlyBlank && canvas[y][x] != ' ' {
			return
		}
		canvas[y][x] = glyph
	}

	for _, o := range orbits {
		for a := 0; a < 360; a += parameter.PlanetOrbitStep {
			x, y := vmath.EllipsePoint(cx, cy, o.RX, o.RY, float64(a))
			put(x, y, '.', true)
		}
	}

	glyphs := []rune(parameter.PlanetShipGlyphs)
	idx := 0
	for j, n := range ShipsPerOrbit(orbits, ships) {
		offset := float64(j)*34.4 + phase // ~0.6 rad stagger between rings
		for k := range n {
			deg := 360*float64(k)/float64(n) + offset
			x, y := vmath.EllipsePoint(cx, cy, orbits[j].RX, orbits[j].RY, deg)
			put(x, y, glyphs[idx%len(glyphs)], false)
			idx++
		}
	}

	lines := make([]string, 0, height+2)
	for _, row := range canvas {
		lines = append(lines, string(row))
	}
	return append(lines, "", fmt.Sprintf(" Planet Size: %d | Ships: %d ", size, ships))
}
