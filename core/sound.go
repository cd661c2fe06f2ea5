package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundPurchase SoundType = iota // Accepted purchase
	SoundDenied                    // Rejected purchase
	SoundOreBreak                  // Ore mined out
	SoundHit                       // Combat damage dealt or taken
	SoundHeal                      // Combat heal
	SoundGlitch                    // World transition
	SoundVictory                   // Enemy defeated
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	"purchase", "denied", "ore_break", "hit", "heal", "glitch", "victory",
}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
