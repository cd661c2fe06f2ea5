package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityEconomy   = 10 // Seen flags before any purchase this tick
	PriorityUpgrade   = 20
	PriorityResearch  = 30
	PriorityMining    = 40
	PriorityBlackhole = 50
	PrioritySanity    = 60 // After every purchase source
	PriorityMap       = 70
	PriorityCombat    = 80
	PriorityAdmin     = 90
	PrioritySettings  = 100
	PriorityMessage   = 500 // After game logic, footer countdown
	PriorityAudio     = 800
	PriorityTelemetry = 1000 // After all others, metric collection
)

// Render Priorities (lower draws first)
const (
	PriorityRenderPage   = 100
	PriorityRenderZones  = 150 // Highlight over page art
	PriorityRenderFooter = 200
	PriorityRenderDebug  = 300
)
