package render

import (
	"time"

	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/engine/fsm"
	"github.com/lixenwraith/idle-city/hitzone"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Game  *engine.GameContext
	Zones *hitzone.Map // renderers publish clickable areas here

	Page    fsm.StateID
	Frame   uint64
	Elapsed time.Duration // since start, drives animations

	// Screen dimensions (terminal size)
	Width  int
	Height int
}

// NewRenderContext snapshots the frame state from the game context
func NewRenderContext(ctx *engine.GameContext, zones *hitzone.Map, elapsed time.Duration) RenderContext {
	return RenderContext{
		Game:    ctx,
		Zones:   zones,
		Page:    ctx.Page(),
		Frame:   ctx.FrameNumber,
		Elapsed: elapsed,
		Width:   ctx.Width,
		Height:  ctx.Height,
	}
}

// Publish registers a zone given in screen coordinates, nothing when zones are not tracked
func (rc RenderContext) Publish(z hitzone.Zone) {
	if rc.Zones != nil {
		rc.Zones.Add(z)
	}
}
