package engine

import (
	"time"

	"github.com/lixenwraith/idle-city/parameter"
)

// Settings are runtime tunables; the loop goroutine owns them after start
type Settings struct {
	TickInterval    time.Duration
	FrameInterval   time.Duration
	IncomePeriod    time.Duration
	GlitchDuration  time.Duration
	AdminMultiplier float64
	AdminKeys       bool
	SoundEnabled    bool
	Debug           bool
}

// DefaultSettings returns the stock tuning
func DefaultSettings() Settings {
	return Settings{
		TickInterval:    parameter.TickInterval,
		FrameInterval:   parameter.FrameUpdateInterval,
		IncomePeriod:    parameter.IncomePeriod,
		GlitchDuration:  parameter.GlitchDuration,
		AdminMultiplier: parameter.AdminMultiplier,
		SoundEnabled:    true,
	}
}
