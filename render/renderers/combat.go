package renderers

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/idle-city/asset"
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/engine/fsm"
	"github.com/lixenwraith/idle-city/parameter"
	"github.com/lixenwraith/idle-city/render"
	"github.com/lixenwraith/idle-city/system"
)

// artColumn is the padded width of each fighter's art
const artColumn = 20

// CombatRenderer draws the fight: both fighters, HP bars, the log and the prompt
type CombatRenderer struct {
	gameCtx *engine.GameContext
}

// NewCombatRenderer creates a combat page renderer
func NewCombatRenderer(gameCtx *engine.GameContext) *CombatRenderer {
	return &CombatRenderer{gameCtx: gameCtx}
}

// Pages implements PageBound
func (r *CombatRenderer) Pages() []fsm.StateID { return []fsm.StateID{engine.PageCombat} }

// Render implements SystemRenderer
func (r *CombatRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	c := &r.gameCtx.State.Combat

	buf.Text(0, 0, "=== ENEMY - COMBAT ===", render.StyleTitle)
	buf.Text(0, 1, "Enemy: "+c.EnemyName, render.StyleWarning)

	y := buf.Lines(0, 3, fighters(r.gameCtx.Content.PlayerArt, r.enemyArt(c.Region)), render.StyleDefault)
	y++

	y = hpBar(buf, y, "You:   ", c.PlayerHP, c.PlayerMaxHP)
	y = hpBar(buf, y, "Enemy: ", c.EnemyHP, c.EnemyMaxHP)
	y++

	buf.Text(0, y, "-- Combat Log --", render.StyleTitle)
	y++
	for _, line := range system.RecentLog(c) {
		buf.Text(0, y, " - "+line, render.StyleMessage)
		y++
	}
	y++

	switch c.Outcome {
	case engine.CombatLost:
		buf.Text(0, y, "You have died! Press [space] to restart.", render.StyleWarning)
	case engine.CombatWon:
		buf.Text(0, y, fmt.Sprintf("You have defeated %s! Press [space] to exit.", c.EnemyName), render.StyleDone)
	default:
		buf.Text(0, y, fmt.Sprintf("[A] Attack   [H] Heal (%d)   [U] Ability (%d)", c.Heals, c.Ability), render.StyleDefault)
	}
}

func (r *CombatRenderer) enemyArt(region string) []string {
	idx := r.gameCtx.Content.RegionIndex(region)
	if idx < 0 {
		return nil
	}
	return r.gameCtx.Content.Regions[idx].Art
}

// fighters joins the player art, left aligned, with the enemy art, right aligned
func fighters(player, enemy []string) []string {
	rows := max(len(player), len(enemy))
	out := make([]string, rows)
	gap := strings.Repeat(" ", 10)
	for i := range rows {
		var left, right string
		if i < len(player) {
			left = player[i]
		}
		if i < len(enemy) {
			right = enemy[i]
		}
		out[i] = padRight(left, artColumn) + gap + padLeft(right, artColumn)
	}
	return out
}

func padRight(s string, w int) string {
	return s + strings.Repeat(" ", max(0, w-render.StringWidth(s)))
}

func padLeft(s string, w int) string {
	return strings.Repeat(" ", max(0, w-render.StringWidth(s))) + s
}

// hpBar draws "label [####    ] hp/max" with the fill colored by remaining health
func hpBar(buf *render.RenderBuffer, y int, label string, hp, maxHP int) int {
	x := buf.Text(0, y, label, render.StyleDefault)
	style := render.StyleDefault.Foreground(render.GaugeColor(ratio(hp, maxHP)))
	x += buf.Text(x, y, asset.Bar(hp, maxHP, parameter.HPBarWidth), style)
	buf.Text(x+1, y, fmt.Sprintf("%d/%d", hp, maxHP), render.StyleDim)
	return y + 1
}

func ratio(value, maximum int) float64 {
	if maximum <= 0 {
		return 0
	}
	return min(1, max(0, float64(value)/float64(maximum)))
}
