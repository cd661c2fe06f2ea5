package renderers

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lixenwraith/idle-city/asset"
	"github.com/lixenwraith/idle-city/content"
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/engine/fsm"
	"github.com/lixenwraith/idle-city/hitzone"
	"github.com/lixenwraith/idle-city/parameter"
	"github.com/lixenwraith/idle-city/render"
	"github.com/lixenwraith/idle-city/system"
)

// TechnologyRenderer draws the mining page: shaft and inventory left, tech tree right
type TechnologyRenderer struct {
	gameCtx *engine.GameContext
	mining  *system.MiningSystem

	left  lipgloss.Style
	title cases.Caser
}

// NewTechnologyRenderer creates a technology page renderer
func NewTechnologyRenderer(gameCtx *engine.GameContext, mining *system.MiningSystem) *TechnologyRenderer {
	return &TechnologyRenderer{
		gameCtx: gameCtx,
		mining:  mining,
		left:    lipgloss.NewStyle().Width(parameter.MiningLeftWidth),
		title:   cases.Title(language.English),
	}
}

// Pages implements PageBound
func (r *TechnologyRenderer) Pages() []fsm.StateID { return []fsm.StateID{engine.PageTechnology} }

// Render implements SystemRenderer
func (r *TechnologyRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	left, shaftTop, shaftWidth := r.leftColumn()
	right := r.rightColumn()

	page := lipgloss.JoinHorizontal(lipgloss.Top, r.left.Render(strings.Join(left, "\n")), strings.Join(right, "\n"))
	buf.Lines(0, 0, strings.Split(page, "\n"), render.StyleDefault)

	// restyle header and ore rows after the plain text pass
	buf.SetStyle(0, 0, parameter.MiningLeftWidth, render.StyleMoney)
	if r.gameCtx.State.Mining.Ore.Name != "" {
		for row := shaftTop + asset.ShaftOreRow; row < shaftTop+asset.ShaftOreRow+3; row++ {
			buf.SetStyle(0, row, shaftWidth, render.StyleCost)
		}
	}

	ctx.Publish(hitzone.Rect(parameter.ZoneMineShaft,
		0, shaftTop+asset.ShaftOreRow-1,
		shaftWidth-1, shaftTop+asset.ShaftOreRow+3))
}

// leftColumn returns the column lines plus the row and width of the shaft art
func (r *TechnologyRenderer) leftColumn() (lines []string, shaftTop, shaftWidth int) {
	s := r.gameCtx.State
	m := s.Mining

	lines = append(lines, "Money: "+Money(s.Money), "")

	glyph := " "
	value := int64(0)
	if def, ok := r.gameCtx.Content.Ore(m.Ore.Name); ok {
		glyph, value = def.Glyph, def.Value
	}
	shaftTop = len(lines)
	shaft := asset.MineShaft(m.Depth, glyph)
	for _, l := range shaft {
		shaftWidth = max(shaftWidth, render.StringWidth(l))
	}
	lines = append(lines, shaft...)
	lines = append(lines,
		"",
		"Ore: "+strings.ToUpper(m.Ore.Name),
		"HP: "+asset.Bar(m.Ore.HP, m.Ore.MaxHP, 25),
		fmt.Sprintf("%d/%d", m.Ore.HP, m.Ore.MaxHP),
		"Value: "+Cost(value),
		fmt.Sprintf("Click: %d dmg", m.Damage),
		fmt.Sprintf("Auto: %d DPS", m.AutoDamage),
		"",
		"=== ORE INVENTORY ===",
	)

	found := false
	for _, o := range r.gameCtx.Content.Ores {
		if n := m.Inventory[o.Name]; n > 0 {
			found = true
			lines = append(lines, fmt.Sprintf("%s: %d", r.title.String(strings.ReplaceAll(o.Name, "_", " ")), n))
		}
	}
	if !found {
		lines = append(lines, "(None yet)")
	}

	var depths strings.Builder
	for d := 1; d <= min(m.MaxDepth, r.gameCtx.Content.MaxDepth()); d++ {
		if d == m.Depth {
			fmt.Fprintf(&depths, "[%d] ", d)
		} else {
			fmt.Fprintf(&depths, " %d  ", d)
		}
	}
	lines = append(lines,
		"",
		"=== DEPTH ===",
		fmt.Sprintf("Current: %d | Max: %d", m.Depth, m.MaxDepth),
		depths.String(),
		"",
		fmt.Sprintf("Auto-Miners: %d", m.Miners),
		"",
		"[SPACE] Mine",
		"[R] Return to City",
		"[1-5] Change Depth",
	)

	if m.MaxDepth >= parameter.BlackholeMinDepth && !s.Blackhole.Unlocked {
		lines = append(lines,
			"",
			"=== BLACK HOLE ===",
			"[U] Unlock Black Hole - Cost: "+Cost(parameter.BlackholeMoneyCost),
			"(Requires Depth 5 and a shard)",
		)
	}
	return lines, shaftTop, shaftWidth
}

func (r *TechnologyRenderer) rightColumn() []string {
	m := r.gameCtx.State.Mining
	techs := r.gameCtx.Content.Technology

	nodes := make([]asset.Node, len(techs))
	for i, t := range techs {
		nodes[i] = asset.Node{Label: strings.ToUpper(t.Key), Done: m.Techs[t.Key]}
	}

	lines := []string{"=== MINING TECH TREE ===", ""}
	lines = append(lines, asset.TechnologyTree(nodes)...)
	lines = append(lines, "", "=== AVAILABLE TECHS ===")

	count := 0
	for _, t := range techs {
		if m.Techs[t.Key] || !r.mining.Available(r.gameCtx, t.Key) {
			continue
		}
		count++
		lines = append(lines,
			fmt.Sprintf("%s %s - %s", keyLabel(t.Key), t.Name, t.Desc),
			"    "+techCost(t))
	}
	if count == 0 {
		lines = append(lines, "(All available techs purchased)")
	}
	return lines
}

// techCost lists ore costs by three-letter abbreviation followed by the money cost
func techCost(t content.TechDef) string {
	var parts []string
	for _, o := range slices.Sorted(maps.Keys(t.OreCosts)) {
		name := o
		if len(name) > 3 {
			name = name[:3]
		}
		parts = append(parts, fmt.Sprintf("%s:%d", name, t.OreCosts[o]))
	}
	ores := "Free"
	if len(parts) > 0 {
		ores = strings.Join(parts, " ")
	}
	return ores + " | " + Cost(t.MoneyCost)
}
