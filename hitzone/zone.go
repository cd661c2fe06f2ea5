// Package hitzone maps screen cells to named clickable areas
package hitzone

// Point is a cell coordinate, X is the column
type Point struct{ X, Y int }

// Zone is a named inclusive rectangle of cells
type Zone struct {
	Name        string
	TopLeft     Point
	BottomRight Point
}

// Rect is a convenience constructor for Zone
func Rect(name string, left, top, right, bottom int) Zone {
	return Zone{Name: name, TopLeft: Point{left, top}, BottomRight: Point{right, bottom}}
}

// Contains returns true if the cell lies inside the zone, edges included
func (z Zone) Contains(x, y int) bool {
	return x >= z.TopLeft.X && x <= z.BottomRight.X && y >= z.TopLeft.Y && y <= z.BottomRight.Y
}

// Translate returns a copy moved by (dx, dy)
func (z Zone) Translate(dx, dy int) Zone {
	z.TopLeft = Point{z.TopLeft.X + dx, z.TopLeft.Y + dy}
	z.BottomRight = Point{z.BottomRight.X + dx, z.BottomRight.Y + dy}
	return z
}

// Width returns the column span
func (z Zone) Width() int {
	return z.BottomRight.X - z.TopLeft.X + 1
}

// Height returns the row span
func (z Zone) Height() int {
	return z.BottomRight.Y - z.TopLeft.Y + 1
}

// Map is the set of zones drawn in the current frame
// Renderers add zones; the input handler resolves clicks against the last frame
type Map struct {
	zones []Zone
}

// NewMap creates an empty map
func NewMap() *Map {
	return &Map{zones: make([]Zone, 0, 16)}
}

// Reset drops all zones, called at the start of each frame
func (m *Map) Reset() {
	m.zones = m.zones[:0]
}

// Add registers a zone; earlier zones win on overlap
func (m *Map) Add(z Zone) {
	m.zones = append(m.zones, z)
}

// Hit returns the first zone containing the cell
func (m *Map) Hit(x, y int) (Zone, bool) {
	for _, z := range m.zones {
		if z.Contains(x, y) {
			return z, true
		}
	}
	return Zone{}, false
}

// Zones returns a copy of the registered zones
func (m *Map) Zones() []Zone {
	out := make([]Zone, len(m.zones))
	copy(out, m.zones)
	return out
}
