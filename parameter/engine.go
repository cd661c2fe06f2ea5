package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickInterval is the fixed game logic step
	TickInterval = 100 * time.Millisecond

	// FrameUpdateInterval is the rendering frame interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// MaxTicksPerStep caps catch-up ticks after a stall so a suspended process does not burst
	MaxTicksPerStep = 10

	// InputChannelSize is the buffered capacity between input pump and game loop
	InputChannelSize = 256
)

// Event Queue
const (
	// EventQueueSize is the soft capacity of the event queue, oldest events drop beyond it
	EventQueueSize = 1024
)

// Settings Watch
const (
	// SettingsReloadDebounce coalesces bursts of file writes from editors
	SettingsReloadDebounce = 250 * time.Millisecond
)
