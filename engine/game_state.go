package engine

import (
	"time"

	"github.com/lixenwraith/idle-city/content"
	"github.com/lixenwraith/idle-city/parameter"
)

// Sanity stages rotate through the world-1 pages
const (
	StageCity = iota
	StageResearch
	StageTechnology
	StageBlackhole
	StageCount
)

// UpgradeState is the runtime counter of a repeatable purchase
type UpgradeState struct {
	Count int
	Cost  int64
	Seen  bool // sticky once money reached a fraction of cost
}

// OreState is the ore currently in the shaft
type OreState struct {
	Name  string
	HP    int
	MaxHP int
}

// MiningState holds shaft, tools and inventory
type MiningState struct {
	Ore        OreState
	Damage     int
	AutoDamage int
	Miners     int
	Depth      int
	MaxDepth   int
	Inventory  map[string]int
	Techs      map[string]bool // purchased technology keys
}

// BlackholeState holds the end-game page
type BlackholeState struct {
	Unlocked  bool
	Visited   bool
	Growth    int
	Ships     int
	Upgrades  []UpgradeState
	Purchased int
}

// SanityState is the progress gauge that drives trips to the map
type SanityState struct {
	Points         int
	Stage          int
	Awarded        map[string]bool // one-shot milestones of the current cycle
	AwaitingReturn bool
	LastCause      string
	LastDepth      int
}

// CombatOutcome is the result of the current fight
type CombatOutcome int

const (
	CombatIdle CombatOutcome = iota
	CombatActive
	CombatWon
	CombatLost
)

// CombatState is the current fight
type CombatState struct {
	Region      string
	EnemyName   string
	PlayerHP    int
	PlayerMaxHP int
	EnemyHP     int
	EnemyMaxHP  int
	Heals       int
	Ability     int
	Log         []string
	Outcome     CombatOutcome
}

// MapState is world-2 progress
type MapState struct {
	Scroll        int
	Defeated      map[string]bool
	KillList      []string      // most recent first
	Highlight     string        // region flashing before combat
	HighlightLeft time.Duration // remaining flash time
}

// Message is a transient footer line
type Message struct {
	Text      string
	Remaining time.Duration
}

// GameState is the single mutable game state, owned by the game loop goroutine
type GameState struct {
	Money           float64
	Rate            float64
	AdminMultiplier float64
	OtherMultiplier float64
	IncomeTimer     time.Duration

	CityUpgrades  []UpgradeState
	CityPurchased int // total city upgrades, drives the skyline

	ResearchUnlocked   bool
	TechnologyUnlocked bool
	Research           map[string]bool

	Mining    MiningState
	Blackhole BlackholeState
	Sanity    SanityState
	Map       MapState
	Combat    CombatState
	Message   Message
	Won       bool
}

// NewGameState creates the starting state for the given content
func NewGameState(c *content.Content, adminMultiplier float64) *GameState {
	s := &GameState{
		AdminMultiplier: adminMultiplier,
		OtherMultiplier: parameter.OtherMultiplier,
		CityUpgrades:    make([]UpgradeState, len(c.Upgrades)),
		Research:        make(map[string]bool),
		Mining: MiningState{
			Damage:    parameter.OreDamageStart,
			Depth:     parameter.StartDepth,
			MaxDepth:  parameter.StartDepth,
			Inventory: make(map[string]int, len(c.Ores)),
			Techs:     make(map[string]bool),
		},
		Blackhole: BlackholeState{
			Upgrades: make([]UpgradeState, len(c.Blackhole)),
		},
		Sanity: SanityState{
			Awarded: make(map[string]bool),
		},
		Map: MapState{
			Defeated: make(map[string]bool),
		},
	}
	for i, u := range c.Upgrades {
		s.CityUpgrades[i].Cost = u.BaseCost
	}
	for i, b := range c.Blackhole {
		s.Blackhole.Upgrades[i].Cost = b.BaseCost
	}
	for _, o := range c.Ores {
		s.Mining.Inventory[o.Name] = 0
	}
	return s
}

// ShipsMultiplier is the black hole fleet income bonus
func (s *GameState) ShipsMultiplier() float64 {
	return 1 + parameter.ShipIncomeBonus*float64(s.Blackhole.Ships)
}

// IncomePerSecond is the money paid every income period
func (s *GameState) IncomePerSecond() float64 {
	return s.Rate * s.AdminMultiplier * s.OtherMultiplier * s.ShipsMultiplier()
}

// CanAfford reports whether money covers cost
func (s *GameState) CanAfford(cost int64) bool {
	return s.Money >= float64(cost)
}

// MarkSeen sets the sticky visibility flag once money reaches a fraction of cost
func (u *UpgradeState) MarkSeen(money float64) bool {
	if !u.Seen && money >= float64(u.Cost)*parameter.SeenThreshold {
		u.Seen = true
	}
	return u.Seen
}
