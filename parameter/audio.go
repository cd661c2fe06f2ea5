package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate     = 48000
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue Durations
const (
	SoundPurchaseDuration = 90 * time.Millisecond
	SoundDeniedDuration   = 150 * time.Millisecond
	SoundOreDuration      = 120 * time.Millisecond
	SoundHitDuration      = 80 * time.Millisecond
	SoundHealDuration     = 200 * time.Millisecond
	SoundGlitchDuration   = 600 * time.Millisecond
	SoundVictoryDuration  = 700 * time.Millisecond
)

// Volume
const (
	SoundVolume = 0.18
)
