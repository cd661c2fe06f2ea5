package event

import (
	"time"

	"github.com/lixenwraith/idle-city/core"
)

// SoundRequestPayload selects the cue to play
type SoundRequestPayload struct {
	Sound core.SoundType
}

// Map send causes, also the sanity bookkeeping keys
const (
	CauseResearch  = "research"
	CauseMining    = "mining"
	CauseBlackhole = "blackhole"
	CauseManual    = "manual"
)

// SendToMapPayload records why and from which mine depth the player left
type SendToMapPayload struct {
	Cause string
	Depth int
}

// EnterCombatPayload names the region being fought
type EnterCombatPayload struct {
	Region string
}

// Shop identifies the purchase source
type Shop string

const (
	ShopCity       Shop = "city"
	ShopResearch   Shop = "research"
	ShopTechnology Shop = "technology"
	ShopBlackhole  Shop = "blackhole"
)

// PurchasePayload describes an accepted purchase
type PurchasePayload struct {
	Shop  Shop
	Key   string
	Name  string
	Cost  int64
	Count int
}

// SanityProgressPayload applies Amount only while the gauge is in Stage
type SanityProgressPayload struct {
	Stage  int
	Amount int
}

// SanityMilestonePayload names a one-shot milestone
type SanityMilestonePayload struct {
	Name string
}

// OreBrokenPayload names the ore and the money earned
type OreBrokenPayload struct {
	Ore    string
	Earned float64
	Auto   bool
}

// EnemyDefeatedPayload names the fallen enemy
type EnemyDefeatedPayload struct {
	Region string
	Name   string
}

// MessagePayload is a footer message shown for Duration
type MessagePayload struct {
	Text     string
	Duration time.Duration
}

// SettingsPayload carries live-tunable values; nil pointers mean unchanged
type SettingsPayload struct {
	AdminMultiplier *float64
	GlitchDuration  *time.Duration
	SoundEnabled    *bool
}
