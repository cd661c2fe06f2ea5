package system

import (
	"fmt"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/idle-city/core"
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/event"
	"github.com/lixenwraith/idle-city/parameter"
)

// RegionChapterEnd always returns the player to the city when cleared
const RegionChapterEnd = "obsidian_quarry"

// CombatAction is a player move
type CombatAction int

const (
	ActionAttack CombatAction = iota
	ActionHeal
	ActionAbility
)

// CombatSystem runs turn-based fights against region enemies
type CombatSystem struct {
	statFights *atomic.Int64
	statWins   *atomic.Int64
	statLosses *atomic.Int64
}

// NewCombatSystem creates the combat system
func NewCombatSystem(ctx *engine.GameContext) *CombatSystem {
	return &CombatSystem{
		statFights: ctx.Status.Ints.Get("combat.fights"),
		statWins:   ctx.Status.Ints.Get("combat.wins"),
		statLosses: ctx.Status.Ints.Get("combat.losses"),
	}
}

// Name returns system's name
func (s *CombatSystem) Name() string {
	return "combat"
}

// Priority returns the system's priority
func (s *CombatSystem) Priority() int {
	return parameter.PriorityCombat
}

// EventTypes returns the event types CombatSystem handles
func (s *CombatSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventEnterCombat}
}

// HandleEvent starts a fight
func (s *CombatSystem) HandleEvent(ctx *engine.GameContext, ev event.GameEvent) {
	if ev.Type != event.EventEnterCombat {
		return
	}
	if payload, ok := ev.Payload.(*event.EnterCombatPayload); ok {
		s.Enter(ctx, payload.Region)
	}
}

// Update implements System interface (no tick-based logic)
func (s *CombatSystem) Update(_ *engine.GameContext, _ time.Duration) {}

// EnemyName returns the enemy shown for a region; unnamed enemies get fresh noise
func (s *CombatSystem) EnemyName(ctx *engine.GameContext, region string) string {
	idx := ctx.Content.RegionIndex(region)
	if idx >= 0 && ctx.Content.Regions[idx].Enemy != "" {
		return ctx.Content.Regions[idx].Enemy
	}
	var b strings.Builder
	for range parameter.GarbleLength {
		b.WriteRune(ctx.Rand.Pick(parameter.GarbleCharset))
	}
	return b.String()
}

// Enter sets up a fight; a cleared region sends the player back to the map
func (s *CombatSystem) Enter(ctx *engine.GameContext, region string) {
	idx := ctx.Content.RegionIndex(region)
	if idx < 0 {
		ctx.PushEvent(event.EventShowMap, nil)
		return
	}
	def := ctx.Content.Regions[idx]
	if ctx.State.Map.Defeated[def.Key] {
		ctx.Notify(fmt.Sprintf("'%s' has already been defeated!", s.EnemyName(ctx, def.Key)), parameter.MessageDuration)
		ctx.PushEvent(event.EventShowMap, nil)
		return
	}

	name := s.EnemyName(ctx, def.Key)
	ctx.State.Combat = engine.CombatState{
		Region:      def.Key,
		EnemyName:   name,
		PlayerHP:    parameter.CombatPlayerHP,
		PlayerMaxHP: parameter.CombatPlayerHP,
		EnemyHP:     parameter.CombatEnemyHP,
		EnemyMaxHP:  parameter.CombatEnemyHP,
		Heals:       parameter.CombatHeals,
		Ability:     parameter.CombatAbility,
		Log:         []string{fmt.Sprintf("'%s' has appeared at %s!", name, def.Title())},
		Outcome:     engine.CombatActive,
	}
	s.statFights.Add(1)
	ctx.Logger.Info("combat started", zap.String("region", def.Key), zap.String("enemy", name))
}

// Act performs one player move followed by the enemy's answer
// A move refused for lack of charges still gives the enemy its turn
func (s *CombatSystem) Act(ctx *engine.GameContext, action CombatAction) {
	c := &ctx.State.Combat
	if c.Outcome != engine.CombatActive {
		return
	}

	switch action {
	case ActionAttack:
		dmg := ctx.Rand.Range(parameter.CombatAttackMin, parameter.CombatAttackMax)
		c.EnemyHP -= dmg
		c.Log = append(c.Log, fmt.Sprintf("You attack the enemy for %d dmg.", dmg))
		ctx.PlaySound(core.SoundHit)
	case ActionHeal:
		if c.Heals <= 0 {
			c.Log = append(c.Log, "No heals left!")
			ctx.PlaySound(core.SoundDenied)
			break
		}
		heal := ctx.Rand.Range(parameter.CombatHealMin, parameter.CombatHealMax)
		c.PlayerHP = min(c.PlayerMaxHP, c.PlayerHP+heal)
		c.Heals--
		c.Log = append(c.Log, fmt.Sprintf("You heal for %d HP.", heal))
		ctx.PlaySound(core.SoundHeal)
	case ActionAbility:
		if c.Ability <= 0 {
			c.Log = append(c.Log, "No ability charges!")
			ctx.PlaySound(core.SoundDenied)
			break
		}
		dmg := ctx.Rand.Range(parameter.CombatAbilityMin, parameter.CombatAbilityMax)
		c.EnemyHP -= dmg
		c.Ability--
		c.Log = append(c.Log, fmt.Sprintf("You use your ability for %d dmg!", dmg))
		ctx.PlaySound(core.SoundHit)
	}

	if c.EnemyHP <= 0 {
		c.EnemyHP = 0
		s.win(ctx)
		return
	}

	edmg := ctx.Rand.Range(parameter.CombatEnemyMin, parameter.CombatEnemyMax)
	c.PlayerHP -= edmg
	c.Log = append(c.Log, fmt.Sprintf("Enemy hits you for %d dmg.", edmg))
	if c.PlayerHP <= 0 {
		c.PlayerHP = 0
		c.Log = append(c.Log, "You were slain...")
		c.Outcome = engine.CombatLost
		s.statLosses.Add(1)
		ctx.Logger.Info("combat lost", zap.String("region", c.Region))
	}
}

func (s *CombatSystem) win(ctx *engine.GameContext) {
	c := &ctx.State.Combat
	m := &ctx.State.Map
	c.Log = append(c.Log, "Enemy defeated!")
	c.Outcome = engine.CombatWon
	s.statWins.Add(1)

	if !m.Defeated[c.Region] {
		m.Defeated[c.Region] = true
		if !slices.Contains(m.KillList, c.EnemyName) {
			m.KillList = slices.Insert(m.KillList, 0, c.EnemyName)
		}
	}
	ctx.PushEvent(event.EventEnemyDefeated, &event.EnemyDefeatedPayload{Region: c.Region, Name: c.EnemyName})
}

// Acknowledge closes a finished fight and routes the player onward
// Returns false while the fight is still running
func (s *CombatSystem) Acknowledge(ctx *engine.GameContext) bool {
	c := &ctx.State.Combat
	outcome, region := c.Outcome, c.Region

	switch outcome {
	case engine.CombatLost:
		ctx.PushEvent(event.EventReturnToCity, nil)
	case engine.CombatWon:
		total := len(ctx.State.Map.Defeated)
		switch {
		case s.isFinal(ctx, region):
			ctx.State.Won = true
			ctx.PlaySound(core.SoundVictory)
			ctx.PushEvent(event.EventVictory, nil)
		case region == RegionChapterEnd || chapterBreak(total):
			ctx.PushEvent(event.EventReturnToCity, nil)
		default:
			ctx.PushEvent(event.EventShowMap, nil)
		}
	default:
		return false
	}

	c.Outcome = engine.CombatIdle
	return true
}

// isFinal reports whether region is the last one in progression order
func (s *CombatSystem) isFinal(ctx *engine.GameContext, region string) bool {
	n := len(ctx.Content.Regions)
	return n > 0 && ctx.Content.Regions[n-1].Key == region
}

// chapterBreak reports whether a defeat count sends the player back to the city
func chapterBreak(total int) bool {
	return total > 0 && total <= parameter.MapDefeatReturnMax && total%parameter.MapDefeatReturnEvery == 0
}

// RecentLog returns the last combat log lines, oldest first
func RecentLog(c *engine.CombatState) []string {
	start := max(0, len(c.Log)-parameter.CombatLogLines)
	return c.Log[start:]
}
