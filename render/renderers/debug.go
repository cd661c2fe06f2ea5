package renderers

import (
	"fmt"

	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/render"
)

// DebugRenderer overlays the status registry in the top-right corner
type DebugRenderer struct {
	gameCtx *engine.GameContext
}

func NewDebugRenderer(gameCtx *engine.GameContext) *DebugRenderer {
	return &DebugRenderer{gameCtx: gameCtx}
}

// IsVisible implements VisibilityToggle
func (r *DebugRenderer) IsVisible() bool {
	return r.gameCtx.Settings.Debug
}

// Render implements SystemRenderer
func (r *DebugRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	lines := []string{fmt.Sprintf("frame %d", ctx.Frame)}
	if ctx.Zones != nil {
		lines = append(lines, fmt.Sprintf("zones %d", len(ctx.Zones.Zones())))
	}
	for _, m := range r.gameCtx.Status.Snapshot() {
		lines = append(lines, m.Key+" "+m.Value)
	}

	width := 0
	for _, l := range lines {
		width = max(width, render.StringWidth(l))
	}
	x := max(0, ctx.Width-width-1)
	for i, l := range lines {
		if i >= ctx.Height-2 {
			break
		}
		buf.Fill(x-1, i, width+2, 1, ' ', render.StyleDim)
		buf.Text(x, i, l, render.StyleDim)
	}
}
