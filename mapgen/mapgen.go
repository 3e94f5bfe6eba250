// Package mapgen bootstraps map terrain and player start regions
package mapgen

import (
	"fmt"

	"github.com/lixenwraith/territory/component"
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/engine"
	"github.com/lixenwraith/territory/grid"
)

// Layout selects the terrain generator
type Layout uint8

const (
	LayoutOpen Layout = iota
	LayoutNoise
	LayoutMaze
)

// ParseLayout maps a config name to its layout
func ParseLayout(name string) (Layout, error) {
	switch name {
	case "open":
		return LayoutOpen, nil
	case "", "noise":
		return LayoutNoise, nil
	case "maze":
		return LayoutMaze, nil
	}
	return LayoutOpen, fmt.Errorf("unknown layout %q", name)
}

// Options configure a generated map
type Options struct {
	Bounds    grid.Bounds
	Seed      int64
	Layout    Layout
	Threshold float64 // Noise level above which tiles are blocked
	Braiding  float64 // Maze dead-end removal chance in [0, 1]

	Players     int
	StartRadius int
}

// Plan is a generated map before it is built into a world
type Plan struct {
	Bounds  grid.Bounds
	blocked []bool
	Starts  []core.Position
	Radius  int
}

// Generate lays out terrain and start regions, start regions are always colorable
func Generate(opts Options) Plan {
	plan := Plan{
		Bounds:  opts.Bounds,
		blocked: make([]bool, opts.Bounds.Area()),
		Starts:  StartPositions(opts.Bounds, opts.Players, opts.StartRadius),
		Radius:  opts.StartRadius,
	}

	switch opts.Layout {
	case LayoutNoise:
		fillNoise(plan.blocked, opts.Bounds, opts.Seed, opts.Threshold)
	case LayoutMaze:
		fillMaze(plan.blocked, opts.Bounds, opts.Seed, opts.Braiding)
	}

	for _, s := range plan.Starts {
		for _, p := range Region(s, opts.StartRadius, opts.Bounds) {
			plan.blocked[opts.Bounds.Index(p)] = false
		}
	}
	if opts.Layout == LayoutMaze {
		connectStarts(plan.blocked, opts.Bounds, plan.Starts)
	}
	return plan
}

// Blocked reports whether p is non-colorable
func (pl Plan) Blocked(p core.Position) bool {
	return pl.Bounds.Contains(p) && pl.blocked[pl.Bounds.Index(p)]
}

// Terrain adapts the plan for World.NewTileMap
func (pl Plan) Terrain() engine.TerrainFunc {
	return func(p core.Position) (component.Terrain, bool) {
		if pl.Blocked(p) {
			return component.TerrainNonColorable, true
		}
		return component.TerrainColorable, true
	}
}

// Claim gives every player its start region at the given strength
// Player i owns the region around Starts[i]
func (pl Plan) Claim(tm *engine.TileMap, players []core.PlayerID, s component.Strength) {
	for i, player := range players {
		if i >= len(pl.Starts) {
			return
		}
		for _, p := range Region(pl.Starts[i], pl.Radius, pl.Bounds) {
			t, ok := tm.Tile(p)
			if !ok || !t.Colorable() {
				continue
			}
			t.Owner = player
			t.Strength = s
			tm.SetTile(p, t)
		}
	}
}

// StartPositions spreads n start points over the map: corners first, then edge midpoints
func StartPositions(b grid.Bounds, n, radius int) []core.Position {
	if n <= 0 || b.Area() == 0 {
		return nil
	}
	clampX := func(x int) int { return max(0, min(b.Width-1, x)) }
	clampY := func(y int) int { return max(0, min(b.Height-1, y)) }

	left, right := clampX(radius), clampX(b.Width-1-radius)
	top, bottom := clampY(radius), clampY(b.Height-1-radius)
	midX, midY := b.Width/2, b.Height/2

	candidates := []core.Position{
		core.Pos(left, top),
		core.Pos(right, bottom),
		core.Pos(right, top),
		core.Pos(left, bottom),
		core.Pos(midX, top),
		core.Pos(midX, bottom),
		core.Pos(left, midY),
		core.Pos(right, midY),
	}
	if n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n]
}

// Region returns the in-bounds tiles within Chebyshev distance radius of c, row-major
func Region(c core.Position, radius int, b grid.Bounds) []core.Position {
	var out []core.Position
	for y := c.Y - radius; y <= c.Y+radius; y++ {
		for x := c.X - radius; x <= c.X+radius; x++ {
			if p := core.Pos(x, y); b.Contains(p) {
				out = append(out, p)
			}
		}
	}
	return out
}
