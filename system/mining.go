package system

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/idle-city/core"
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/event"
	"github.com/lixenwraith/idle-city/parameter"
)

// MiningSystem runs the mine shaft and the technology tree
type MiningSystem struct {
	statBroken *atomic.Int64
	statTechs  *atomic.Int64
	statDepth  *atomic.Int64
}

// NewMiningSystem creates the mining system
func NewMiningSystem(ctx *engine.GameContext) *MiningSystem {
	return &MiningSystem{
		statBroken: ctx.Status.Ints.Get("mining.broken"),
		statTechs:  ctx.Status.Ints.Get("mining.techs"),
		statDepth:  ctx.Status.Ints.Get("mining.depth"),
	}
}

// Name returns system's name
func (s *MiningSystem) Name() string {
	return "mining"
}

// Priority returns the system's priority
func (s *MiningSystem) Priority() int {
	return parameter.PriorityMining
}

// EventTypes returns the event types MiningSystem handles
func (s *MiningSystem) EventTypes() []event.EventType {
	return nil
}

// HandleEvent is a no-op, mining is driven by input and the income clock
func (s *MiningSystem) HandleEvent(_ *engine.GameContext, _ event.GameEvent) {}

// Update keeps an ore in the shaft
func (s *MiningSystem) Update(ctx *engine.GameContext, _ time.Duration) {
	if ctx.State.Mining.Ore.Name == "" {
		s.SpawnOre(ctx)
	}
	s.statDepth.Store(int64(ctx.State.Mining.Depth))
}

// SpawnOre replaces the current ore with a weighted pick from the depth's table
func (s *MiningSystem) SpawnOre(ctx *engine.GameContext) {
	m := &ctx.State.Mining
	spawns := ctx.Content.Spawns(m.Depth)
	weights := make([]int, len(spawns))
	for i, sp := range spawns {
		weights[i] = sp.Weight
	}
	idx := ctx.Rand.Weighted(weights)
	if idx < 0 {
		m.Ore = engine.OreState{}
		return
	}
	def, ok := ctx.Content.Ore(spawns[idx].Ore)
	if !ok {
		m.Ore = engine.OreState{}
		return
	}
	m.Ore = engine.OreState{Name: def.Name, HP: def.HP, MaxHP: def.HP}
}

// Mine strikes the current ore with the pickaxe
func (s *MiningSystem) Mine(ctx *engine.GameContext) {
	s.Strike(ctx, ctx.State.Mining.Damage, false)
}

// Strike deals damage to the current ore; a broken ore is banked and replaced
func (s *MiningSystem) Strike(ctx *engine.GameContext, damage int, auto bool) {
	m := &ctx.State.Mining
	if m.Ore.Name == "" {
		s.SpawnOre(ctx)
		if m.Ore.Name == "" {
			return
		}
	}

	m.Ore.HP -= damage
	if m.Ore.HP > 0 {
		return
	}

	def, _ := ctx.Content.Ore(m.Ore.Name)
	m.Inventory[def.Name]++
	earned := float64(def.Value) * ctx.State.AdminMultiplier * ctx.State.OtherMultiplier
	ctx.State.Money += earned
	s.statBroken.Add(1)

	if !auto {
		ctx.PlaySound(core.SoundOreBreak)
	}
	ctx.PushEvent(event.EventOreBroken, &event.OreBrokenPayload{Ore: def.Name, Earned: earned, Auto: auto})
	s.SpawnOre(ctx)
}

// Available reports whether a technology can be offered: the root, or unlocked by an owned node
func (s *MiningSystem) Available(ctx *engine.GameContext, key string) bool {
	if len(ctx.Content.Technology) > 0 && ctx.Content.Technology[0].Key == key {
		return true
	}
	for _, t := range ctx.Content.Technology {
		if !ctx.State.Mining.Techs[t.Key] {
			continue
		}
		for _, u := range t.Unlocks {
			if u == key {
				return true
			}
		}
	}
	return false
}

// BuyTech purchases a technology node
func (s *MiningSystem) BuyTech(ctx *engine.GameContext, key string) error {
	idx := ctx.Content.TechIndex(key)
	if idx < 0 {
		return ErrUnknownKey
	}
	def := ctx.Content.Technology[idx]
	st := ctx.State
	m := &st.Mining

	if m.Techs[def.Key] {
		return reject(ctx, ErrAlreadyOwned)
	}
	if !s.Available(ctx, def.Key) {
		return reject(ctx, ErrLocked)
	}
	if !st.CanAfford(def.MoneyCost) {
		return reject(ctx, ErrInsufficientFunds)
	}
	for ore, n := range def.OreCosts {
		if m.Inventory[ore] < n {
			return reject(ctx, ErrInsufficientOre)
		}
	}

	st.Money -= float64(def.MoneyCost)
	for ore, n := range def.OreCosts {
		m.Inventory[ore] -= n
	}
	m.Techs[def.Key] = true
	m.Damage += def.Damage
	m.AutoDamage += def.AutoDamage
	m.Miners += def.Miners
	if def.DepthUnlock > 0 {
		m.MaxDepth = max(m.MaxDepth, def.DepthUnlock)
	}
	s.statTechs.Add(1)

	ctx.PlaySound(core.SoundPurchase)
	ctx.PushEvent(event.EventPurchase, &event.PurchasePayload{
		Shop:  event.ShopTechnology,
		Key:   def.Key,
		Name:  def.Name,
		Cost:  def.MoneyCost,
		Count: 1,
	})
	ctx.Logger.Debug("technology bought", zap.String("key", def.Key), zap.Int("max_depth", m.MaxDepth))

	if def.UnlocksBlackhole && !st.Blackhole.Unlocked {
		s.openBlackhole(ctx)
	}
	if def.DepthUnlock == parameter.MapSendDepth {
		ctx.PushEvent(event.EventSendToMap, &event.SendToMapPayload{Cause: event.CauseMining, Depth: def.DepthUnlock})
	}

	ctx.PushEvent(event.EventSanityProgress, &event.SanityProgressPayload{
		Stage:  engine.StageTechnology,
		Amount: parameter.SanityIncTechnology,
	})
	return nil
}

// SetDepth moves the shaft to depth d, limited to unlocked depths
func (s *MiningSystem) SetDepth(ctx *engine.GameContext, d int) error {
	m := &ctx.State.Mining
	if d < 1 || d > m.MaxDepth {
		return reject(ctx, ErrLocked)
	}
	m.Depth = d
	s.SpawnOre(ctx)

	if d >= (m.MaxDepth+1)/2 {
		ctx.PushEvent(event.EventSanityMilestone, &event.SanityMilestonePayload{Name: MilestoneMineHalf})
	}
	return nil
}

// UnlockBlackhole trades a shard and money for the black hole page
func (s *MiningSystem) UnlockBlackhole(ctx *engine.GameContext) error {
	st := ctx.State
	m := &st.Mining
	if st.Blackhole.Unlocked {
		return reject(ctx, ErrAlreadyOwned)
	}
	if m.MaxDepth < parameter.BlackholeMinDepth {
		return reject(ctx, ErrLocked)
	}
	if m.Inventory[parameter.BlackholeShardOre] < parameter.BlackholeShardCost {
		return reject(ctx, ErrInsufficientOre)
	}
	if !st.CanAfford(parameter.BlackholeMoneyCost) {
		return reject(ctx, ErrInsufficientFunds)
	}

	st.Money -= float64(parameter.BlackholeMoneyCost)
	m.Inventory[parameter.BlackholeShardOre] -= parameter.BlackholeShardCost
	ctx.PlaySound(core.SoundPurchase)
	s.openBlackhole(ctx)
	return nil
}

// openBlackhole unlocks the page and sends the player to the map
func (s *MiningSystem) openBlackhole(ctx *engine.GameContext) {
	ctx.State.Blackhole.Unlocked = true
	ctx.Notify("The sky tears open. Press B from the city.", parameter.LongMessageDuration)
	ctx.Logger.Info("black hole unlocked")
	ctx.PushEvent(event.EventSanityMilestone, &event.SanityMilestonePayload{Name: MilestoneBlackholeUnlock})
	ctx.PushEvent(event.EventSendToMap, &event.SendToMapPayload{Cause: event.CauseBlackhole})
}

// HandleKey routes a technology page keystroke
// Space mines, 'u' unlocks the black hole once it is reachable, a digit buys an
// offered tech before it selects a depth, any other key buys the matching tech
func (s *MiningSystem) HandleKey(ctx *engine.GameContext, r rune) error {
	key := string(r)
	m := &ctx.State.Mining

	switch {
	case r == ' ':
		s.Mine(ctx)
		return nil
	case r == 'u' && m.MaxDepth >= parameter.BlackholeMinDepth && !ctx.State.Blackhole.Unlocked:
		return s.UnlockBlackhole(ctx)
	case r >= '1' && r <= '9':
		if ctx.Content.TechIndex(key) >= 0 && !m.Techs[key] && s.Available(ctx, key) {
			return s.BuyTech(ctx, key)
		}
		if d := int(r - '0'); d <= ctx.Content.MaxDepth() {
			return s.SetDepth(ctx, d)
		}
	}

	if ctx.Content.TechIndex(key) < 0 {
		return fmt.Errorf("technology key %q: %w", key, ErrUnknownKey)
	}
	return s.BuyTech(ctx, key)
}
