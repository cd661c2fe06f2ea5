package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/idle-city/asset"
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/engine/fsm"
	"github.com/lixenwraith/idle-city/parameter"
	"github.com/lixenwraith/idle-city/render"
	"github.com/lixenwraith/idle-city/vmath"
)

// victoryFade dims the noise behind the victory text
const victoryFade = 0.7

// GlitchRenderer fills the screen with noise during the world change and behind the victory text
type GlitchRenderer struct {
	rng *vmath.FastRand
}

func NewGlitchRenderer(seed uint64) *GlitchRenderer {
	return &GlitchRenderer{rng: vmath.NewFastRand(seed)}
}

// Pages implements PageBound
func (r *GlitchRenderer) Pages() []fsm.StateID {
	return []fsm.StateID{engine.PageGlitch, engine.PageVictory}
}

// Render implements SystemRenderer
func (r *GlitchRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	switch ctx.Page {
	case engine.PageGlitch:
		r.noise(ctx, buf, render.StyleGlitch)
	case engine.PageVictory:
		r.noise(ctx, buf, render.StyleDefault.Foreground(render.Fade(render.RgbGlitch, victoryFade)))
		mid := ctx.Height / 2
		buf.Center(mid, " "+parameter.VictoryText+" ", render.StyleTitle)
		buf.Center(mid+2, " Press [Q] to quit ", render.StyleDim)
	}
}

func (r *GlitchRenderer) noise(ctx render.RenderContext, buf *render.RenderBuffer, style tcell.Style) {
	for y := range ctx.Height {
		buf.Text(0, y, asset.Noise(r.rng, parameter.GlitchCharset, ctx.Width), style)
	}
}
