package parameter

// Gauges
const (
	// SanityBarWidth is the inner width of the sanity bar
	SanityBarWidth = 30

	// HPBarWidth is the inner width of combat HP bars
	HPBarWidth = 20
)

// City Skyline
const (
	CityBuildingCount = 25
	CityMaxHeight     = 15
	CityCanvasWidth   = 100
	CityRandomOffset  = 2
	CityCloudChance   = 0.15
	CityCloudGlyph    = '☁'
)

// Layout
const (
	// MiningLeftWidth is the width of the left mining column
	MiningLeftWidth = 35

	// BlackholeLeftWidth is the width of the planet column
	BlackholeLeftWidth = 60

	// KillListButton is the map header control that opens the kill list
	KillListButton = "[≡] Kill List"

	// MapHeaderTitle prefixes the map header row
	MapHeaderTitle = "=== WORLD 2: MAP ==="

	// GlitchCharset is the noise pool for transition frames
	GlitchCharset = "#$%*^&@!~+=<>?/|"

	VictoryText = "You won"
)

// Map page layout: header rows above the art, footer rows below it
const (
	MapHeaderRows = 2
	MapFooterRows = 2
)

// Named click zones outside the map regions
const (
	ZoneKillList     = "kill_list"
	ZoneBreakReality = "break_reality"
	ZoneMineShaft    = "mine_shaft"
)

// Planet
const (
	PlanetBaseRadius  = 2
	PlanetMaxOrbits   = 5
	PlanetOrbitStep   = 8 // degrees between orbit dots
	PlanetShipGlyphs  = "▲▶✦◉✺*✶"
	PlanetCoreFill    = 'O'
	PlanetMantleFill  = 'o'
	PlanetHaloFill    = '~'
	PlanetCoreRatio   = 0.6
	PlanetMantleRatio = 0.95
	PlanetHaloRatio   = 1.15
)
