package renderers

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/idle-city/asset"
	"github.com/lixenwraith/idle-city/content"
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/engine/fsm"
	"github.com/lixenwraith/idle-city/hitzone"
	"github.com/lixenwraith/idle-city/parameter"
	"github.com/lixenwraith/idle-city/render"
)

// shipSpeed is the orbit rotation in degrees per second
const shipSpeed = 12.0

// BlackholeRenderer draws the animated planet and the black hole upgrade column
type BlackholeRenderer struct {
	gameCtx *engine.GameContext
}

// NewBlackholeRenderer creates a black hole page renderer
func NewBlackholeRenderer(gameCtx *engine.GameContext) *BlackholeRenderer {
	return &BlackholeRenderer{gameCtx: gameCtx}
}

// Pages implements PageBound
func (r *BlackholeRenderer) Pages() []fsm.StateID { return []fsm.StateID{engine.PageBlackhole} }

// Render implements SystemRenderer
func (r *BlackholeRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	s := r.gameCtx.State
	bh := s.Blackhole

	buf.Center(0, "=== BLACK HOLE - ORBITAL VIEW ===", render.StyleTitle)

	phase := ctx.Elapsed.Seconds() * shipSpeed
	planet := crop(asset.Planet(bh.Growth, bh.Ships, phase), parameter.BlackholeLeftWidth)
	top := max(2, (ctx.Height-len(planet))/2)
	pad := max(0, (parameter.BlackholeLeftWidth-render.StringWidth(planet[0]))/2)
	drawArt(buf, pad, top, planet, planetStyle)

	col := parameter.BlackholeLeftWidth + 2
	buf.Text(col, 2, "Money: "+Money(s.Money), render.StyleMoney)
	buf.Text(col, 3, fmt.Sprintf("Ships: %d  (mult x%.2f)", bh.Ships, s.ShipsMultiplier()), render.StyleDefault)
	buf.Text(col, 4, fmt.Sprintf("Planet Size: %d", bh.Growth), render.StyleDefault)
	buf.Text(col, 6, "=== BLACK HOLE UPGRADES ===", render.StyleTitle)

	y := 7
	for i, def := range r.gameCtx.Content.Blackhole {
		u := bh.Upgrades[i]
		if !u.Seen {
			continue
		}
		name := fmt.Sprintf("%s %s", keyLabel(def.Key), def.Name)
		w := buf.Text(col, y, name, render.StyleDefault)
		if def.Effect.Kind == content.EffectBreakReality {
			buf.SetStyle(col, y, w, render.StyleZone)
			ctx.Publish(hitzone.Rect(parameter.ZoneBreakReality, col, y, col+w-1, y))
		}

		status := fmt.Sprintf("%s - %s %s", def.Desc, Cost(u.Cost), countLabel(u.Count, def.Max))
		style := render.StyleCost
		switch {
		case u.Count >= def.Max:
			status = fmt.Sprintf("%s - MAXED %s", def.Desc, countLabel(u.Count, def.Max))
			style = render.StyleDone
		case !s.CanAfford(u.Cost):
			style = render.StyleLocked
		}
		buf.Text(col+3, y+1, status, style)
		y += 2
	}
	if y == 7 {
		buf.Text(col, y, "(No black hole upgrades available yet...)", render.StyleDim)
		y++
	}

	buf.Text(col, y+1, "[R] Return to City   [K] Drift to the map", render.StyleDim)
}

func planetStyle(r rune) tcell.Style {
	switch {
	case r == '.':
		return render.StyleDim
	case r == parameter.PlanetCoreFill || r == parameter.PlanetMantleFill || r == parameter.PlanetHaloFill:
		return render.StyleDefault.Foreground(render.RgbPlanet)
	case strings.ContainsRune(parameter.PlanetShipGlyphs, r):
		return render.StyleDefault.Foreground(render.RgbShip).Bold(true)
	}
	return render.StyleDefault
}
