package content

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks table consistency and reports every problem found
func (c *Content) Validate() error {
	var errs []error

	checkKeys := func(table string, keys []string) {
		seen := make(map[string]bool, len(keys))
		for _, k := range keys {
			if len([]rune(k)) != 1 {
				errs = append(errs, fmt.Errorf("%s: key %q must be a single character", table, k))
			}
			if seen[k] {
				errs = append(errs, fmt.Errorf("%s: duplicate key %q", table, k))
			}
			seen[k] = true
		}
	}

	keys := make([]string, 0, len(c.Upgrades))
	for _, u := range c.Upgrades {
		keys = append(keys, u.Key)
		if u.Max < 1 {
			errs = append(errs, fmt.Errorf("upgrade %q: max must be positive", u.Name))
		}
		if u.BaseCost < 0 {
			errs = append(errs, fmt.Errorf("upgrade %q: negative cost", u.Name))
		}
	}
	checkKeys("upgrades", keys)

	keys = keys[:0]
	for _, r := range c.Research {
		keys = append(keys, r.Key)
		switch r.Effect.Kind {
		case EffectOtherMultiplier, EffectUnlockTechnology:
		default:
			errs = append(errs, fmt.Errorf("research %q: unsupported effect %q", r.Name, r.Effect.Kind))
		}
	}
	checkKeys("research", keys)

	ores := make(map[string]bool, len(c.Ores))
	for _, o := range c.Ores {
		if ores[o.Name] {
			errs = append(errs, fmt.Errorf("ore %q: duplicate", o.Name))
		}
		ores[o.Name] = true
		if o.HP <= 0 {
			errs = append(errs, fmt.Errorf("ore %q: hp must be positive", o.Name))
		}
	}

	if len(c.Depths) == 0 {
		errs = append(errs, errors.New("depths: at least one depth required"))
	}
	for _, d := range c.Depths {
		if len(d.Spawns) == 0 {
			errs = append(errs, fmt.Errorf("depth %d: empty spawn table", d.Depth))
		}
		for _, s := range d.Spawns {
			if !ores[s.Ore] {
				errs = append(errs, fmt.Errorf("depth %d: unknown ore %q", d.Depth, s.Ore))
			}
			if s.Weight <= 0 {
				errs = append(errs, fmt.Errorf("depth %d: ore %q weight must be positive", d.Depth, s.Ore))
			}
		}
	}

	techKeys := make(map[string]bool, len(c.Technology))
	keys = keys[:0]
	for _, t := range c.Technology {
		keys = append(keys, t.Key)
		techKeys[t.Key] = true
	}
	checkKeys("technology", keys)
	for _, t := range c.Technology {
		for _, u := range t.Unlocks {
			if !techKeys[u] {
				errs = append(errs, fmt.Errorf("technology %q: unlocks unknown key %q", t.Name, u))
			}
		}
		for ore := range t.OreCosts {
			if !ores[ore] {
				errs = append(errs, fmt.Errorf("technology %q: unknown ore cost %q", t.Name, ore))
			}
		}
	}

	keys = keys[:0]
	for _, b := range c.Blackhole {
		keys = append(keys, b.Key)
		switch b.Effect.Kind {
		case EffectRate, EffectShips, EffectOtherMultiplier, EffectGrowth, EffectBreakReality:
		default:
			errs = append(errs, fmt.Errorf("blackhole %q: unsupported effect %q", b.Name, b.Effect.Kind))
		}
	}
	checkKeys("blackhole", keys)

	if len(c.Regions) == 0 {
		errs = append(errs, errors.New("regions: at least one region required"))
	}
	regionKeys := make(map[string]bool, len(c.Regions))
	for _, r := range c.Regions {
		if regionKeys[r.Key] {
			errs = append(errs, fmt.Errorf("region %q: duplicate", r.Key))
		}
		regionKeys[r.Key] = true
		if len(r.Label) == 0 {
			errs = append(errs, fmt.Errorf("region %q: empty label", r.Key))
			continue
		}
		if !labelInArt(c.MapArt, r.Label) {
			errs = append(errs, fmt.Errorf("region %q: label %q not found in map art", r.Key, strings.Join(r.Label, " / ")))
		}
	}

	return errors.Join(errs...)
}

// labelInArt reports whether label parts appear on consecutive art rows
func labelInArt(art, label []string) bool {
	for row := range art {
		if row+len(label) > len(art) {
			return false
		}
		ok := true
		for i, part := range label {
			if !strings.Contains(strings.ToUpper(art[row+i]), strings.ToUpper(part)) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}
