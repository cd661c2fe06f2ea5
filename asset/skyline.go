package asset

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/idle-city/parameter"
	"github.com/lixenwraith/idle-city/vmath"
)

// BuildingStyle is the roof and body glyph of a building kind
type BuildingStyle struct {
	Name string
	Roof rune
	Body rune
}

var buildingStyles = []BuildingStyle{
	{"house", '▲', '▓'},
	{"factory", '■', '▒'},
	{"tower", '▲', '▌'},
	{"skyscraper", '■', '█'},
	{"dome", '◯', '░'},
	{"antenna", '│', '┃'},
	{"villa", '♢', '▒'},
	{"castle", '♜', '█'},
	{"tent", '△', '┼'},
}

// Building is one column of the skyline
type Building struct {
	Style      BuildingStyle
	Width      int
	MidOffset  int // distance from the central building
	RandOffset int
}

// Skyline is the city layout, generated once per game and grown by purchases
type Skyline struct {
	Buildings []Building
}

// NewSkyline lays out buildings in a pyramid: widest in the middle
func NewSkyline(rng *vmath.FastRand) *Skyline {
	n := parameter.CityBuildingCount
	mid := n / 2
	s := &Skyline{Buildings: make([]Building, n)}
	for i := range s.Buildings {
		off := vmath.AbsInt(i - mid)
		s.Buildings[i] = Building{
			Style:      buildingStyles[rng.Intn(len(buildingStyles))],
			Width:      1 + (mid-off)/2,
			MidOffset:  off,
			RandOffset: rng.Range(0, parameter.CityRandomOffset),
		}
	}
	return s
}

// Height returns a building's height after purchased city upgrades
func (b Building) Height(purchased int) int {
	pyramid := purchased/2/(b.MidOffset+1) + 1
	return min(parameter.CityMaxHeight, pyramid+b.RandOffset)
}

// Lines renders the cloud row, a gap, the buildings and the ground, each centered on the canvas
func (s *Skyline) Lines(purchased int, rng *vmath.FastRand) []string {
	width := parameter.CityCanvasWidth
	lines := make([]string, 0, parameter.CityMaxHeight+3)
	lines = append(lines, Clouds(rng, width), "")

	var sb strings.Builder
	for y := parameter.CityMaxHeight - 1; y >= 0; y-- {
		sb.Reset()
		for _, b := range s.Buildings {
			h := b.Height(purchased)
			glyph := ' '
			switch {
			case y == h-1:
				glyph = b.Style.Roof
			case y < h:
				glyph = b.Style.Body
			}
			sb.WriteString(strings.Repeat(string(glyph), b.Width))
			sb.WriteByte(' ')
		}
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, sb.String()))
	}
	return append(lines, strings.Repeat("_", width))
}

// Clouds returns a sky row with sparse cloud glyphs
func Clouds(rng *vmath.FastRand, width int) string {
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
		if rng.Chance(parameter.CityCloudChance) {
			row[i] = parameter.CityCloudGlyph
		}
	}
	return string(row)
}
