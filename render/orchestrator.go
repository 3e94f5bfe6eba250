package render

import (
	"slices"

	"github.com/gdamore/tcell/v2"
)

type layer struct {
	renderer SystemRenderer
	priority RenderPriority
}

// RenderOrchestrator draws registered layers back to front, one full frame per call
type RenderOrchestrator struct {
	screen tcell.Screen
	layers []layer
}

func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	return &RenderOrchestrator{screen: screen}
}

// Register adds a layer; equal priorities draw in registration order
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	o.layers = append(o.layers, layer{renderer: r, priority: priority})
	slices.SortStableFunc(o.layers, func(a, b layer) int {
		return int(a.priority) - int(b.priority)
	})
}

// RenderFrame clears the screen, draws every visible layer and flushes
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.screen.SetStyle(StyleBackground)
	o.screen.Clear()

	for _, l := range o.layers {
		if vt, ok := l.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		l.renderer.Render(ctx, o.screen)
	}

	o.screen.Show()
}
