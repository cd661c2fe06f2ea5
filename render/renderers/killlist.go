package renderers

import (
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/engine/fsm"
	"github.com/lixenwraith/idle-city/render"
)

// KillListRenderer lists defeated enemies, most recent first
type KillListRenderer struct {
	gameCtx *engine.GameContext
}

func NewKillListRenderer(gameCtx *engine.GameContext) *KillListRenderer {
	return &KillListRenderer{gameCtx: gameCtx}
}

// Pages implements PageBound
func (r *KillListRenderer) Pages() []fsm.StateID { return []fsm.StateID{engine.PageKillList} }

// Render implements SystemRenderer
func (r *KillListRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	buf.Text(0, 0, "=== KILL LIST ===", render.StyleTitle)

	y := 2
	kills := r.gameCtx.State.Map.KillList
	if len(kills) == 0 {
		buf.Text(0, y, "[No kills yet]", render.StyleDim)
		y++
	}
	for _, name := range kills {
		if y >= ctx.Height-3 {
			break
		}
		buf.Text(0, y, " - "+name, render.StyleDefault)
		y++
	}

	buf.Text(0, y+1, "Press [K] to go back to Map.", render.StyleDim)
}
