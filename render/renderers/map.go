package renderers

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/engine/fsm"
	"github.com/lixenwraith/idle-city/hitzone"
	"github.com/lixenwraith/idle-city/parameter"
	"github.com/lixenwraith/idle-city/render"
	"github.com/lixenwraith/idle-city/system"
)

const mapIntro = "You seem to have transported to another world... Click on bolded text to enter dungeon."

// regionZones is a region's label area and its padded click area, in art coordinates
type regionZones struct {
	key   string
	label hitzone.Zone
	click hitzone.Zone
}

// MapRenderer draws the world-2 header and the scrolled map art
type MapRenderer struct {
	gameCtx *engine.GameContext
	mapSys  *system.MapSystem
}

// NewMapRenderer creates a map page renderer
func NewMapRenderer(gameCtx *engine.GameContext, mapSys *system.MapSystem) *MapRenderer {
	return &MapRenderer{gameCtx: gameCtx, mapSys: mapSys}
}

// Pages implements PageBound
func (r *MapRenderer) Pages() []fsm.StateID { return []fsm.StateID{engine.PageMap} }

// Render implements SystemRenderer
func (r *MapRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	x := buf.Text(0, 0, parameter.MapHeaderTitle+"   ", render.StyleTitle)
	w := buf.Text(x, 0, parameter.KillListButton, render.StyleZone)
	ctx.Publish(hitzone.Rect(parameter.ZoneKillList, x, 0, x+w-1, 0))
	buf.Text(0, 1, mapIntro, render.StyleDim)

	art := r.gameCtx.Content.MapArt
	scroll := r.gameCtx.State.Map.Scroll
	view := r.mapSys.ViewHeight(r.gameCtx)
	for i := range view {
		row := scroll + i
		if row < 0 || row >= len(art) {
			break
		}
		buf.Text(0, parameter.MapHeaderRows+i, art[row], render.StyleDim)
	}
}

// RegionRenderer styles region labels over the map art and publishes their click zones
type RegionRenderer struct {
	gameCtx *engine.GameContext
	mapSys  *system.MapSystem
	regions []regionZones
}

// NewRegionRenderer locates every region label in the map art once
func NewRegionRenderer(gameCtx *engine.GameContext, mapSys *system.MapSystem) *RegionRenderer {
	art := gameCtx.Content.MapArt
	r := &RegionRenderer{gameCtx: gameCtx, mapSys: mapSys}
	for _, reg := range gameCtx.Content.Regions {
		label, ok := hitzone.Locate(reg.Key, art, reg.Label, 0)
		if !ok {
			gameCtx.Logger.Warn("region label not in map art", zap.String("region", reg.Key))
			continue
		}
		click, _ := hitzone.Locate(reg.Key, art, reg.Label, parameter.ZonePadCol)
		r.regions = append(r.regions, regionZones{key: reg.Key, label: label, click: click})
	}
	return r
}

// Pages implements PageBound
func (r *RegionRenderer) Pages() []fsm.StateID { return []fsm.StateID{engine.PageMap} }

// Render implements SystemRenderer
func (r *RegionRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	ms := r.gameCtx.State.Map
	next, hasNext := r.mapSys.NextRegion(r.gameCtx)

	top := parameter.MapHeaderRows
	bottom := top + r.mapSys.ViewHeight(r.gameCtx) - 1
	dy := top - ms.Scroll

	for _, reg := range r.regions {
		label := reg.label.Translate(0, dy)
		style := render.StyleDim
		switch {
		case ms.Highlight == reg.key:
			style = render.StyleHighlight
		case hasNext && next.Key == reg.key:
			style = render.StyleZone
		case ms.Defeated[reg.key]:
			style = render.StyleDone
		}
		for y := max(top, label.TopLeft.Y); y <= min(bottom, label.BottomRight.Y); y++ {
			buf.SetStyle(label.TopLeft.X, y, label.Width(), style)
		}

		click := reg.click.Translate(0, dy)
		click.TopLeft.Y = max(top, click.TopLeft.Y)
		click.BottomRight.Y = min(bottom, click.BottomRight.Y)
		if click.TopLeft.Y <= click.BottomRight.Y {
			ctx.Publish(click)
		}
	}
}
