package renderers

import (
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/render"
	"github.com/lixenwraith/idle-city/system"
)

// RegisterAll adds every page and overlay renderer to the orchestrator
func RegisterAll(o *render.RenderOrchestrator, ctx *engine.GameContext, set *system.Set, seed uint64) {
	o.Register(NewCityRenderer(ctx, seed), render.PriorityPage)
	o.Register(NewResearchRenderer(ctx), render.PriorityPage)
	o.Register(NewTechnologyRenderer(ctx, set.Mining), render.PriorityPage)
	o.Register(NewBlackholeRenderer(ctx), render.PriorityPage)
	o.Register(NewMapRenderer(ctx, set.Map), render.PriorityPage)
	o.Register(NewCombatRenderer(ctx), render.PriorityPage)
	o.Register(NewKillListRenderer(ctx), render.PriorityPage)
	o.Register(NewGlitchRenderer(seed+1), render.PriorityPage)

	o.Register(NewRegionRenderer(ctx, set.Map), render.PriorityZones)
	o.Register(NewFooterRenderer(ctx), render.PriorityFooter)
	o.Register(NewDebugRenderer(ctx), render.PriorityDebug)
}
