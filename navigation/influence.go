// Package navigation computes emitter influence: every tile reachable from an origin within a path-cost budget
package navigation

import (
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/grid"
)

// Graph is the tile storage view the search walks
type Graph interface {
	Bounds() grid.Bounds
	// Exists reports whether tile storage has an entry at p
	Exists(p core.Position) bool
}

// Predicate accepts or rejects a discovered tile, rejected tiles are dead ends
type Predicate func(p core.Position) bool

// StepCost prices the edge from one tile to an orthogonal neighbor, must be >= 1
type StepCost func(from, to core.Position) int

// Options configure a single search
type Options struct {
	Budget int
	Valid  Predicate // nil accepts every existing tile
	Cost   StepCost  // nil prices every step at 1
	// Lines restricts expansion to straight rays: the origin expands in four directions,
	// every other node only continues in the heading it was entered from
	Lines bool
}

// Node is one reachable tile
type Node struct {
	Pos  core.Position
	Cost int
	// Side is the first step taken from the origin, DirNone for the origin itself
	Side grid.Direction
}

const (
	stateUnseen uint8 = iota
	stateValid
	stateInvalid
)

// Search runs a uniform-cost search from origin and returns every valid node with cost <= Budget,
// ordered by ascending cost with ties in discovery order
// A missing origin tile or a degenerate map yields an empty result
func Search(g Graph, origin core.Position, opts Options) []Node {
	b := g.Bounds()
	size := b.Area()
	if size == 0 || !b.Contains(origin) || !g.Exists(origin) || opts.Budget < 0 {
		return nil
	}

	valid := func(p core.Position) bool {
		if !g.Exists(p) {
			return false
		}
		return opts.Valid == nil || opts.Valid(p)
	}
	stepCost := opts.Cost
	if stepCost == nil {
		stepCost = func(core.Position, core.Position) int { return 1 }
	}

	state := make([]uint8, size)
	best := make([]int, size)
	settled := make([]bool, size)
	side := make([]grid.Direction, size)
	heading := make([]grid.Direction, size)

	originIdx := b.Index(origin)
	if !valid(origin) {
		return nil
	}
	state[originIdx] = stateValid
	best[originIdx] = 0
	side[originIdx] = grid.DirNone
	heading[originIdx] = grid.DirNone

	var h minHeap
	seq := 0
	h.push(heapEntry{idx: originIdx, cost: 0, seq: seq})
	seq++

	out := make([]Node, 0, 16)

	for len(h) > 0 {
		entry := h.pop()
		if settled[entry.idx] || entry.cost > best[entry.idx] {
			continue // Stale entry
		}
		settled[entry.idx] = true

		cur := core.Pos(entry.idx%b.Width, entry.idx/b.Width)
		out = append(out, Node{Pos: cur, Cost: entry.cost, Side: side[entry.idx]})

		for d := grid.Direction(0); d < grid.DirCount; d++ {
			if opts.Lines && entry.idx != originIdx && d != heading[entry.idx] {
				continue
			}

			next := grid.Step(cur, d)
			if !b.Contains(next) {
				continue
			}
			nIdx := b.Index(next)
			if settled[nIdx] {
				continue
			}

			switch state[nIdx] {
			case stateInvalid:
				continue
			case stateUnseen:
				if !valid(next) {
					state[nIdx] = stateInvalid
					continue
				}
				state[nIdx] = stateValid
				best[nIdx] = -1
			}

			step := stepCost(cur, next)
			if step < 1 {
				step = 1
			}
			newCost := entry.cost + step
			if newCost > opts.Budget {
				continue
			}
			if best[nIdx] >= 0 && newCost >= best[nIdx] {
				continue
			}

			best[nIdx] = newCost
			heading[nIdx] = d
			if entry.idx == originIdx {
				side[nIdx] = d
			} else {
				side[nIdx] = side[entry.idx]
			}
			h.push(heapEntry{idx: nIdx, cost: newCost, seq: seq})
			seq++
		}
	}

	return out
}

// PerSide splits nodes by the ray they were reached on, preserving order
// The origin node is returned separately
func PerSide(nodes []Node) (origin *Node, sides [grid.DirCount][]Node) {
	for i := range nodes {
		n := nodes[i]
		if n.Side == grid.DirNone {
			origin = &nodes[i]
			continue
		}
		sides[n.Side] = append(sides[n.Side], n)
	}
	return origin, sides
}

// Rings groups nodes by cost, preserving order within each ring
func Rings(nodes []Node) [][]Node {
	var rings [][]Node
	for i, n := range nodes {
		if i == 0 || n.Cost != nodes[i-1].Cost {
			rings = append(rings, nil)
		}
		rings[len(rings)-1] = append(rings[len(rings)-1], n)
	}
	return rings
}
