package content

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// EffectKind selects how a purchase mutates game state
type EffectKind string

const (
	EffectOtherMultiplier  EffectKind = "other_multiplier"
	EffectUnlockTechnology EffectKind = "unlock_technology"
	EffectRate             EffectKind = "rate"
	EffectShips            EffectKind = "ships"
	EffectGrowth           EffectKind = "growth"
	EffectBreakReality     EffectKind = "break_reality"
)

// Effect is a typed purchase effect; Amount meaning depends on Kind
type Effect struct {
	Kind   EffectKind `yaml:"kind"`
	Amount float64    `yaml:"amount,omitempty"`
}

// UpgradeDef is a repeatable city purchase that raises passive income
type UpgradeDef struct {
	Key             string  `yaml:"key"`
	Name            string  `yaml:"name"`
	RateInc         float64 `yaml:"rate"`
	BaseCost        int64   `yaml:"cost"`
	Multiplier      float64 `yaml:"multiplier"`
	Max             int     `yaml:"max"`
	UnlocksResearch bool    `yaml:"unlocks_research,omitempty"`
}

// ResearchDef is a one-time purchase on the research page
type ResearchDef struct {
	Key    string `yaml:"key"`
	Name   string `yaml:"name"`
	Cost   int64  `yaml:"cost"`
	Effect Effect `yaml:"effect"`
}

// OreDef describes a minable ore
type OreDef struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	HP    int    `yaml:"hp"`
	Value int64  `yaml:"value"`
}

// SpawnDef is a weighted entry of a depth's spawn table
type SpawnDef struct {
	Ore    string `yaml:"ore"`
	Weight int    `yaml:"weight"`
}

// DepthDef lists the ores found at a mine depth
type DepthDef struct {
	Depth  int        `yaml:"depth"`
	Spawns []SpawnDef `yaml:"spawns"`
}

// TechDef is a node of the mining technology tree
type TechDef struct {
	Key              string         `yaml:"key"`
	Name             string         `yaml:"name"`
	OreCosts         map[string]int `yaml:"ores,omitempty"`
	MoneyCost        int64          `yaml:"money"`
	Damage           int            `yaml:"damage,omitempty"`
	AutoDamage       int            `yaml:"auto_damage,omitempty"`
	Miners           int            `yaml:"miners,omitempty"`
	DepthUnlock      int            `yaml:"depth,omitempty"`
	UnlocksBlackhole bool           `yaml:"unlocks_blackhole,omitempty"`
	Unlocks          []string       `yaml:"unlocks,omitempty"`
	Desc             string         `yaml:"desc"`
}

// BlackholeDef is a repeatable end-game purchase
type BlackholeDef struct {
	Key        string  `yaml:"key"`
	Name       string  `yaml:"name"`
	Desc       string  `yaml:"desc"`
	BaseCost   int64   `yaml:"cost"`
	Multiplier float64 `yaml:"multiplier"`
	Max        int     `yaml:"max"`
	Effect     Effect  `yaml:"effect"`
}

// RegionDef is a clickable map location holding one enemy
// Label parts are matched on consecutive rows of the map art
type RegionDef struct {
	Key   string   `yaml:"key"`
	Label []string `yaml:"label"`
	Enemy string   `yaml:"enemy"`
	Art   []string `yaml:"art"`
}

// Title returns the display name derived from the key: "mirror_marsh" becomes "Mirror Marsh"
func (r RegionDef) Title() string {
	return cases.Title(language.English).String(strings.ReplaceAll(r.Key, "_", " "))
}
