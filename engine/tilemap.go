package engine

import (
	"github.com/lixenwraith/territory/component"
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/emitter"
	"github.com/lixenwraith/territory/grid"
)

// TerrainFunc decides the terrain of each cell when a map is built
// Returning false leaves the cell without tile storage
type TerrainFunc func(p core.Position) (component.Terrain, bool)

// TileMap indexes one map's tile entities by position
// It is the tile view both the influence search and the conflict resolver work against
type TileMap struct {
	ID     core.MapID
	bounds grid.Bounds
	tiles  *Store[component.TileComponent]
	cells  []core.Entity // 0 marks a missing tile

	// version increments on every terrain change, invalidating influence caches
	version uint64
}

// Bounds returns the map dimensions
func (m *TileMap) Bounds() grid.Bounds {
	return m.bounds
}

// Exists reports whether tile storage has an entry at p
func (m *TileMap) Exists(p core.Position) bool {
	_, ok := m.Entity(p)
	return ok
}

// Entity returns the tile entity at p
func (m *TileMap) Entity(p core.Position) (core.Entity, bool) {
	if !m.bounds.Contains(p) {
		return 0, false
	}
	e := m.cells[m.bounds.Index(p)]
	return e, e != 0
}

// Tile returns the tile state at p
func (m *TileMap) Tile(p core.Position) (component.TileComponent, bool) {
	e, ok := m.Entity(p)
	if !ok {
		return component.TileComponent{}, false
	}
	return m.tiles.GetComponent(e)
}

// SetTile writes tile state at p, no-op for missing tiles
func (m *TileMap) SetTile(p core.Position, t component.TileComponent) {
	e, ok := m.Entity(p)
	if !ok {
		return
	}
	t.Map = m.ID
	t.Pos = p
	m.tiles.SetComponent(e, t)
}

// Version returns the terrain version
func (m *TileMap) Version() uint64 {
	return m.version
}

// SetTerrain changes a tile's terrain and bumps the version when it differs
func (m *TileMap) SetTerrain(p core.Position, terrain component.Terrain) bool {
	t, ok := m.Tile(p)
	if !ok || t.Terrain == terrain {
		return false
	}
	t.Terrain = terrain
	if terrain == component.TerrainNonColorable {
		t.Clear()
	}
	m.SetTile(p, t)
	m.version++
	return true
}

// Occupy reserves a stacking slot of class c at p
func (m *TileMap) Occupy(p core.Position, c emitter.Class) bool {
	t, ok := m.Tile(p)
	if !ok || !t.HasRoom(c) {
		return false
	}
	t.Occupied[c]++
	m.SetTile(p, t)
	return true
}

// Release frees a stacking slot of class c at p
func (m *TileMap) Release(p core.Position, c emitter.Class) {
	t, ok := m.Tile(p)
	if !ok || c >= emitter.ClassCount || t.Occupied[c] == 0 {
		return
	}
	t.Occupied[c]--
	m.SetTile(p, t)
}

// Positions returns every existing tile position in row-major order
func (m *TileMap) Positions() []core.Position {
	out := make([]core.Position, 0, len(m.cells))
	for y := 0; y < m.bounds.Height; y++ {
		for x := 0; x < m.bounds.Width; x++ {
			p := core.Pos(x, y)
			if m.cells[m.bounds.Index(p)] != 0 {
				out = append(out, p)
			}
		}
	}
	return out
}

// MapRegistry holds every map of the world in creation order
type MapRegistry struct {
	order []core.MapID
	maps  map[core.MapID]*TileMap
}

func newMapRegistry() *MapRegistry {
	return &MapRegistry{maps: make(map[core.MapID]*TileMap)}
}

// Get returns the map with the given handle
func (r *MapRegistry) Get(id core.MapID) (*TileMap, bool) {
	m, ok := r.maps[id]
	return m, ok
}

// All returns maps in creation order
func (r *MapRegistry) All() []*TileMap {
	out := make([]*TileMap, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.maps[id])
	}
	return out
}

// Len returns the number of maps
func (r *MapRegistry) Len() int {
	return len(r.order)
}

// NewTileMap creates a tile entity for every cell terrain accepts and registers the map
// A nil terrain makes every cell colorable
func (w *World) NewTileMap(id core.MapID, bounds grid.Bounds, capacity [emitter.ClassCount]uint8, terrain TerrainFunc) *TileMap {
	m := &TileMap{
		ID:     id,
		bounds: bounds,
		tiles:  w.Components.Tile,
		cells:  make([]core.Entity, bounds.Area()),
	}

	for y := 0; y < bounds.Height; y++ {
		for x := 0; x < bounds.Width; x++ {
			p := core.Pos(x, y)
			kind := component.TerrainColorable
			if terrain != nil {
				var ok bool
				if kind, ok = terrain(p); !ok {
					continue
				}
			}
			e := w.CreateEntity()
			m.cells[bounds.Index(p)] = e
			w.Components.Tile.SetComponent(e, component.TileComponent{
				Map:      id,
				Pos:      p,
				Terrain:  kind,
				Capacity: capacity,
			})
		}
	}

	reg := w.Resources.Maps
	if _, exists := reg.maps[id]; !exists {
		reg.order = append(reg.order, id)
	}
	reg.maps[id] = m
	return m
}
