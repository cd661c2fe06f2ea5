package render

import "github.com/lixenwraith/idle-city/parameter"

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityPage   RenderPriority = parameter.PriorityRenderPage
	PriorityZones  RenderPriority = parameter.PriorityRenderZones
	PriorityFooter RenderPriority = parameter.PriorityRenderFooter
	PriorityDebug  RenderPriority = parameter.PriorityRenderDebug
)
