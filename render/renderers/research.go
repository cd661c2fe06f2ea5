package renderers

import (
	"fmt"

	"github.com/lixenwraith/idle-city/asset"
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/engine/fsm"
	"github.com/lixenwraith/idle-city/render"
)

// ResearchRenderer draws the research tree and the purchase list
type ResearchRenderer struct {
	gameCtx *engine.GameContext
}

// NewResearchRenderer creates a research page renderer
func NewResearchRenderer(gameCtx *engine.GameContext) *ResearchRenderer {
	return &ResearchRenderer{gameCtx: gameCtx}
}

// Pages implements PageBound
func (r *ResearchRenderer) Pages() []fsm.StateID { return []fsm.StateID{engine.PageResearch} }

// Render implements SystemRenderer
func (r *ResearchRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	s := r.gameCtx.State
	defs := r.gameCtx.Content.Research

	buf.Text(0, 0, "Money: "+Money(s.Money), render.StyleMoney)
	buf.Text(0, 2, "=== RESEARCH ===", render.StyleTitle)

	nodes := make([]asset.Node, len(defs))
	for i, def := range defs {
		nodes[i] = asset.Node{Label: fmt.Sprintf("R%d", i+1), Done: s.Research[def.Key]}
	}
	y := buf.Lines(0, 4, asset.ResearchTree(nodes), render.StyleDim) + 1

	for _, def := range defs {
		x := buf.Text(0, y, fmt.Sprintf("[%s] %s ", def.Key, def.Name), render.StyleDefault)
		switch {
		case s.Research[def.Key]:
			buf.Text(x, y, "- COMPLETED", render.StyleDone)
		case s.CanAfford(def.Cost):
			buf.Text(x, y, "| Cost: "+Cost(def.Cost), render.StyleCost)
		default:
			buf.Text(x, y, "| Cost: "+Cost(def.Cost), render.StyleLocked)
		}
		y++
	}

	buf.Text(0, y+1, "Press [R] to switch pages.", render.StyleDim)
}
