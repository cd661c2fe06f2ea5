package render

import (
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/idle-city/engine/fsm"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int           // registration order for stable sort
	pages    []fsm.StateID // nil draws on every page
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator with the given screen and dimensions
func NewRenderOrchestrator(screen tcell.Screen, width, height int) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(width, height),
		renderers: make([]rendererEntry, 0, 16),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	if pb, ok := r.(PageBound); ok {
		entry.pages = pb.Pages()
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// Buffer exposes the last composed frame
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
// Zones are rebuilt every frame so clicks resolve against what is on screen
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	if w, h := o.buffer.Bounds(); w != ctx.Width || h != ctx.Height {
		o.Resize(ctx.Width, ctx.Height)
	}

	o.buffer.Clear()
	if ctx.Zones != nil {
		ctx.Zones.Reset()
	}

	for _, entry := range o.renderers {
		if entry.pages != nil && !slices.Contains(entry.pages, ctx.Page) {
			continue
		}
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	o.buffer.FlushToScreen(o.screen)
	o.screen.Show()
}
