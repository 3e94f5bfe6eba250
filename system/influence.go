package system

import (
	"sync/atomic"

	"github.com/lixenwraith/territory/component"
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/emitter"
	"github.com/lixenwraith/territory/engine"
	"github.com/lixenwraith/territory/navigation"
	"github.com/lixenwraith/territory/parameter"
)

// InfluenceSystem refreshes the influence cache of every emitter activating this tick
// Static kinds recompute only when their origin or the map terrain changed
type InfluenceSystem struct {
	world *engine.World

	statRecomputed *atomic.Int64

	enabled bool
}

// NewInfluenceSystem creates a new influence system
func NewInfluenceSystem(world *engine.World) engine.System {
	s := &InfluenceSystem{
		world: world,
	}
	s.statRecomputed = world.Resources.Status.Ints.Get("influence.recomputed")
	s.Init()
	return s
}

// Init resets session state for new game
func (s *InfluenceSystem) Init() {
	s.statRecomputed.Store(0)
	s.enabled = true
}

// Name returns system's name
func (s *InfluenceSystem) Name() string {
	return "influence"
}

// Priority returns the system's priority
func (s *InfluenceSystem) Priority() int {
	return parameter.PriorityInfluence
}

// SetEnabled toggles the system
func (s *InfluenceSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Update recomputes stale caches of activating emitters
func (s *InfluenceSystem) Update() {
	if !s.enabled {
		return
	}

	entities := s.world.Query().
		With(s.world.Components.Activate).
		With(s.world.Components.Emitter).
		With(s.world.Components.Placement).
		Execute()

	for _, entity := range entities {
		em, ok := s.world.Components.Emitter.GetComponent(entity)
		if !ok {
			continue
		}
		pl, ok := s.world.Components.Placement.GetComponent(entity)
		if !ok {
			continue
		}
		tm, ok := s.world.Resources.Maps.Get(pl.Map)
		if !ok {
			continue
		}

		inf, _ := s.world.Components.Influence.GetComponent(entity)
		if em.Behavior.Dynamic() {
			inf.Cache.Invalidate()
		}
		if !inf.Cache.Stale(pl.Pos, tm.Version()) {
			continue
		}

		inf.Cache.Recompute(tm, pl.Pos, tm.Version(), SearchOptions(tm, em))
		s.world.Components.Influence.SetComponent(entity, inf)
		s.statRecomputed.Add(1)
	}
}

// SearchOptions returns the influence search configuration for an emitter on a map
// Territory-walking abilities restrict the walk to tiles they may affect
func SearchOptions(tm *engine.TileMap, em component.EmitterComponent) navigation.Options {
	opts := navigation.Options{
		Budget: em.Behavior.Budget(),
		Valid:  colorable(tm),
	}

	switch em.Behavior.(type) {
	case emitter.Line:
		opts.Lines = true
	case emitter.Fortify:
		opts.Valid = func(p core.Position) bool {
			t, ok := tm.Tile(p)
			return ok && t.Colorable() && t.OwnedBy(em.Player)
		}
	case emitter.Expand:
		opts.Valid = func(p core.Position) bool {
			t, ok := tm.Tile(p)
			return ok && t.Colorable() && (!t.Owned() || t.Owner == em.Player)
		}
	}
	return opts
}

func colorable(tm *engine.TileMap) navigation.Predicate {
	return func(p core.Position) bool {
		t, ok := tm.Tile(p)
		return ok && t.Colorable()
	}
}
