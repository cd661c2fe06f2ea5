package renderers

import (
	"fmt"

	"github.com/lixenwraith/idle-city/asset"
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/parameter"
	"github.com/lixenwraith/idle-city/render"
)

// FooterRenderer draws the status message on the last row and the sanity gauge above it in world 1
type FooterRenderer struct {
	gameCtx *engine.GameContext
}

func NewFooterRenderer(gameCtx *engine.GameContext) *FooterRenderer {
	return &FooterRenderer{gameCtx: gameCtx}
}

// Render implements SystemRenderer
func (r *FooterRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Height < 2 || ctx.Page == engine.PageGlitch || ctx.Page == engine.PageVictory {
		return
	}
	s := r.gameCtx.State

	if r.gameCtx.InWorld1() {
		y := ctx.Height - 2
		x := buf.Text(0, y, "Sanity: ", render.StyleDim)
		color := render.GaugeColor(ratio(s.Sanity.Points, parameter.SanityTarget))
		x += buf.Text(x, y, asset.Bar(s.Sanity.Points, parameter.SanityTarget, parameter.SanityBarWidth),
			render.StyleDefault.Foreground(color))
		buf.Text(x+1, y, fmt.Sprintf("%d/%d", s.Sanity.Points, parameter.SanityTarget), render.StyleDim)
	}

	if s.Message.Text != "" {
		buf.Fill(0, ctx.Height-1, ctx.Width, 1, ' ', render.StyleDefault)
		buf.Text(0, ctx.Height-1, s.Message.Text, render.StyleMessage)
	}
}
