package navigation

import (
	"github.com/lixenwraith/territory/core"
)

// Cache is an emitter's precomputed influence, owned by exactly one emitter
// Recompute replaces Nodes wholesale; consumers never mutate it in place
type Cache struct {
	Origin  core.Position
	Version uint64 // Terrain version of the map at compute time
	Valid   bool
	Nodes   []Node
}

// Stale reports whether the cache no longer matches the emitter's origin or the map's terrain
func (c *Cache) Stale(origin core.Position, version uint64) bool {
	return !c.Valid || c.Origin != origin || c.Version != version
}

// Recompute runs a fresh search and replaces the cached nodes
func (c *Cache) Recompute(g Graph, origin core.Position, version uint64, opts Options) {
	c.Nodes = Search(g, origin, opts)
	c.Origin = origin
	c.Version = version
	c.Valid = true
}

// Invalidate forces the next activation to recompute
func (c *Cache) Invalidate() {
	c.Valid = false
}

// Positions returns the cached tile positions in cost order
func (c *Cache) Positions() []core.Position {
	out := make([]core.Position, len(c.Nodes))
	for i, n := range c.Nodes {
		out[i] = n.Pos
	}
	return out
}
