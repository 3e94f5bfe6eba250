package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/territory/component"
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/grid"
	"github.com/lixenwraith/territory/snapshot"
)

// TileRenderer draws every tile of the current map
type TileRenderer struct{}

func (r *TileRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	ms, ok := ctx.MapState()
	if !ok {
		return
	}
	for _, t := range ms.Tiles {
		screen.SetContent(ctx.OffsetX+t.Pos.X, ctx.OffsetY+t.Pos.Y,
			TileGlyph(t.Strength, t.Terrain), nil, TileStyle(t.Owner, t.Strength, t.Terrain))
	}
}

// EmitterRenderer marks placed emitters with their kind letter, keeping the tile background
type EmitterRenderer struct{}

func (r *EmitterRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	ms, ok := ctx.MapState()
	if !ok {
		return
	}
	for _, e := range ctx.Snapshot.Emitters {
		if e.Map != ms.ID {
			continue
		}
		style := StyleBackground.Foreground(PlayerColor(e.Player, component.StrengthMax))
		if t, ok := tileAt(ms, e.Pos); ok && t.Strength != component.StrengthNeutral {
			style = TileStyle(t.Owner, t.Strength, t.Terrain).Foreground(RgbText)
		}
		screen.SetContent(ctx.OffsetX+e.Pos.X, ctx.OffsetY+e.Pos.Y, KindGlyph(e.Kind), nil, style.Bold(true))
	}
}

// CursorRenderer highlights the placement cursor
type CursorRenderer struct{}

func (r *CursorRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	ms, ok := ctx.MapState()
	if !ok || !ms.Bounds.Contains(ctx.Cursor) {
		return
	}
	glyph := ' '
	if t, ok := tileAt(ms, ctx.Cursor); ok {
		glyph = TileGlyph(t.Strength, t.Terrain)
	}
	for _, e := range ctx.Snapshot.Emitters {
		if e.Map == ms.ID && e.Pos == ctx.Cursor {
			glyph = KindGlyph(e.Kind)
		}
	}
	screen.SetContent(ctx.OffsetX+ctx.Cursor.X, ctx.OffsetY+ctx.Cursor.Y, glyph, nil,
		StyleBackground.Background(RgbCursor).Foreground(RgbBackground))
}

// StatusBarRenderer prints tile counts, points and controller state under the map
type StatusBarRenderer struct{}

func (r *StatusBarRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	ms, ok := ctx.MapState()
	if !ok {
		return
	}
	y := ctx.OffsetY + ms.Bounds.Height + 1
	s := ctx.Snapshot

	x := drawText(screen, ctx.OffsetX, y, StyleBackground, fmt.Sprintf("tick %d ", s.Tick))
	for _, p := range s.Points {
		label := fmt.Sprintf(" p%d:%d ", p.Player, s.Owned(p.Player))
		if p.Player == core.HumanPlayer {
			label = fmt.Sprintf(" you:%d ", s.Owned(p.Player))
		}
		x = drawText(screen, x, y, StyleBackground.Foreground(PlayerColor(p.Player, component.StrengthMax)), label)
	}
	for _, p := range s.Points {
		if p.Player == core.HumanPlayer {
			drawText(screen, x, y, StyleBackground, fmt.Sprintf(" | B:%d A:%d", p.Building, p.Ability))
		}
	}

	dir := "all"
	if ctx.Direction != grid.DirNone {
		dir = ctx.Direction.String()
	}
	controls := fmt.Sprintf("[1-6] %s  [d] dir:%s  [space] place  [m] %s  [q] quit", ctx.Selected, dir, muteLabel(ctx.Muted))
	drawText(screen, ctx.OffsetX, y+1, StyleBackground.Foreground(RgbBlocked), controls)

	if ctx.Message != "" {
		drawText(screen, ctx.OffsetX, y+2, StyleBackground.Foreground(RgbCursor), ctx.Message)
	}
}

func muteLabel(muted bool) string {
	if muted {
		return "unmute"
	}
	return "mute"
}

// OverlayRenderer shows the result banner once the match ended
type OverlayRenderer struct {
	Dismissed bool
}

func (r *OverlayRenderer) IsVisible() bool { return !r.Dismissed }

func (r *OverlayRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	if !ctx.Snapshot.Ended {
		return
	}
	ms, ok := ctx.MapState()
	if !ok {
		return
	}
	banner := " VICTORY "
	if ctx.Snapshot.Winner != core.HumanPlayer {
		banner = fmt.Sprintf(" DEFEAT - player %d wins ", ctx.Snapshot.Winner)
	}
	x := ctx.OffsetX + max((ms.Bounds.Width-len(banner))/2, 0)
	y := ctx.OffsetY + ms.Bounds.Height/2
	style := StyleBackground.Background(PlayerColor(ctx.Snapshot.Winner, component.StrengthMax)).Foreground(RgbBackground).Bold(true)
	drawText(screen, x, y-1, style, strings.Repeat(" ", len(banner)))
	drawText(screen, x, y, style, banner)
	drawText(screen, x, y+1, style, strings.Repeat(" ", len(banner)))
}

// drawText writes s left to right and returns the column after it
func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// tileAt finds the tile at p, direct index for full maps and a scan when the map has holes
func tileAt(ms snapshot.MapState, p core.Position) (snapshot.TileState, bool) {
	if !ms.Bounds.Contains(p) {
		return snapshot.TileState{}, false
	}
	if len(ms.Tiles) == ms.Bounds.Area() {
		if t := ms.Tiles[ms.Bounds.Index(p)]; t.Pos == p {
			return t, true
		}
	}
	for _, t := range ms.Tiles {
		if t.Pos == p {
			return t, true
		}
	}
	return snapshot.TileState{}, false
}
