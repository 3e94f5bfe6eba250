package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/emitter"
	"github.com/lixenwraith/territory/grid"
	"github.com/lixenwraith/territory/snapshot"
)

// SystemRenderer draws one layer of a frame
type SystemRenderer interface {
	Render(ctx RenderContext, screen tcell.Screen)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// RenderContext is everything a frame is drawn from, the snapshot is never mutated
type RenderContext struct {
	Snapshot snapshot.Snapshot
	Map      int // Index into Snapshot.Maps

	// Map origin on screen
	OffsetX, OffsetY int

	// Controller state
	Cursor    core.Position
	Selected  emitter.Kind
	Direction grid.Direction
	Message   string
	Muted     bool
}

// MapState returns the drawn map, false when the snapshot has none
func (ctx RenderContext) MapState() (snapshot.MapState, bool) {
	if ctx.Map < 0 || ctx.Map >= len(ctx.Snapshot.Maps) {
		return snapshot.MapState{}, false
	}
	return ctx.Snapshot.Maps[ctx.Map], true
}
