package render

import "github.com/lixenwraith/idle-city/engine/fsm"

// SystemRenderer is implemented by page and overlay renderers
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// PageBound limits a renderer to the listed pages, read once at registration
type PageBound interface {
	Pages() []fsm.StateID
}
