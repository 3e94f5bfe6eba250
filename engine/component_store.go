package engine

import (
	"github.com/lixenwraith/territory/component"
)

// ComponentStore provides typed access to every component store of the world
type ComponentStore struct {
	// Map
	Tile *Store[component.TileComponent]

	// Emitter
	Emitter   *Store[component.EmitterComponent]
	Placement *Store[component.PlacementComponent]
	Influence *Store[component.InfluenceComponent]
	Spawned   *Store[component.SpawnedComponent]

	// Lifecycle
	Cooldown *Store[component.CooldownComponent]
	Activate *Store[component.ActivateComponent]
	Death    *Store[component.DeathComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Tile:      NewStore[component.TileComponent](),
		Emitter:   NewStore[component.EmitterComponent](),
		Placement: NewStore[component.PlacementComponent](),
		Influence: NewStore[component.InfluenceComponent](),
		Spawned:   NewStore[component.SpawnedComponent](),
		Cooldown:  NewStore[component.CooldownComponent](),
		Activate:  NewStore[component.ActivateComponent](),
		Death:     NewStore[component.DeathComponent](),
	}
}

// all lists every store for uniform lifecycle operations
func (c *ComponentStore) all() []AnyStore {
	return []AnyStore{
		c.Tile,
		c.Emitter,
		c.Placement,
		c.Influence,
		c.Spawned,
		c.Cooldown,
		c.Activate,
		c.Death,
	}
}
