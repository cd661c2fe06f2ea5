// Package content holds the static game tables: prices, effects, ores, regions and art
package content

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed game.yaml
var defaultYAML []byte

// Content is the decoded, read-only game data
type Content struct {
	Upgrades   []UpgradeDef   `yaml:"upgrades"`
	Research   []ResearchDef  `yaml:"research"`
	Ores       []OreDef       `yaml:"ores"`
	Depths     []DepthDef     `yaml:"depths"`
	Technology []TechDef      `yaml:"technology"`
	Blackhole  []BlackholeDef `yaml:"blackhole"`
	Regions    []RegionDef    `yaml:"regions"`
	PlayerArt  []string       `yaml:"player_art"`
	MapArt     []string       `yaml:"map_art"`
}

// Default returns the embedded content, panics if the embedded document is broken
func Default() *Content {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded content invalid: %v", err))
	}
	return c
}

// DefaultYAML returns a copy of the embedded document
func DefaultYAML() []byte {
	return slices.Clone(defaultYAML)
}

// Load reads and validates a content file
func Load(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a content document
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Dump encodes the content back to YAML
func (c *Content) Dump() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode content: %w", err)
	}
	return data, nil
}

// normalize lowercases keystroke keys so lookups are case-insensitive
func (c *Content) normalize() {
	for i := range c.Upgrades {
		c.Upgrades[i].Key = strings.ToLower(c.Upgrades[i].Key)
	}
	for i := range c.Research {
		c.Research[i].Key = strings.ToLower(c.Research[i].Key)
	}
	for i := range c.Technology {
		c.Technology[i].Key = strings.ToLower(c.Technology[i].Key)
		for j, k := range c.Technology[i].Unlocks {
			c.Technology[i].Unlocks[j] = strings.ToLower(k)
		}
	}
	for i := range c.Blackhole {
		c.Blackhole[i].Key = strings.ToLower(c.Blackhole[i].Key)
	}
}

// UpgradeIndex returns the index of the city upgrade bound to key, or -1
func (c *Content) UpgradeIndex(key string) int {
	return slices.IndexFunc(c.Upgrades, func(u UpgradeDef) bool { return u.Key == key })
}

// ResearchIndex returns the index of the research item bound to key, or -1
func (c *Content) ResearchIndex(key string) int {
	return slices.IndexFunc(c.Research, func(r ResearchDef) bool { return r.Key == key })
}

// TechIndex returns the index of the technology bound to key, or -1
func (c *Content) TechIndex(key string) int {
	return slices.IndexFunc(c.Technology, func(t TechDef) bool { return t.Key == key })
}

// BlackholeIndex returns the index of the black hole upgrade bound to key, or -1
func (c *Content) BlackholeIndex(key string) int {
	return slices.IndexFunc(c.Blackhole, func(b BlackholeDef) bool { return b.Key == key })
}

// RegionIndex returns the progression index of a region, or -1
func (c *Content) RegionIndex(key string) int {
	return slices.IndexFunc(c.Regions, func(r RegionDef) bool { return r.Key == key })
}

// Ore returns the ore definition by name
func (c *Content) Ore(name string) (OreDef, bool) {
	i := slices.IndexFunc(c.Ores, func(o OreDef) bool { return o.Name == name })
	if i < 0 {
		return OreDef{}, false
	}
	return c.Ores[i], true
}

// Spawns returns the spawn table for depth; depths past the table use the deepest entry
func (c *Content) Spawns(depth int) []SpawnDef {
	if len(c.Depths) == 0 {
		return nil
	}
	deepest := c.Depths[0]
	for _, d := range c.Depths {
		if d.Depth == depth {
			return d.Spawns
		}
		if d.Depth > deepest.Depth {
			deepest = d
		}
	}
	return deepest.Spawns
}

// MaxDepth returns the deepest configured mine level
func (c *Content) MaxDepth() int {
	maxDepth := 0
	for _, d := range c.Depths {
		maxDepth = max(maxDepth, d.Depth)
	}
	return maxDepth
}
