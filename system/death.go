package system

import (
	"sync/atomic"

	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/engine"
	"github.com/lixenwraith/territory/event"
	"github.com/lixenwraith/territory/parameter"
)

// DeathSystem removes every entity tagged destroy-pending
// Emitters free their tile stacking slot and leave a despawn record for change tracking
type DeathSystem struct {
	world *engine.World

	statRemoved *atomic.Int64

	enabled bool
}

// NewDeathSystem creates a new death system
func NewDeathSystem(world *engine.World) engine.System {
	s := &DeathSystem{
		world: world,
	}
	s.statRemoved = world.Resources.Status.Ints.Get("death.removed")
	s.Init()
	return s
}

// Init resets session state for new game
func (s *DeathSystem) Init() {
	s.statRemoved.Store(0)
	s.enabled = true
}

// Name returns system's name
func (s *DeathSystem) Name() string {
	return "death"
}

// Priority returns the system's priority
func (s *DeathSystem) Priority() int {
	return parameter.PriorityDeath
}

// SetEnabled toggles the system
func (s *DeathSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Update destroys tagged entities
func (s *DeathSystem) Update() {
	if !s.enabled {
		return
	}

	doomed := s.world.Components.Death.GetAllEntities()
	if len(doomed) == 0 {
		return
	}
	for _, entity := range doomed {
		s.release(entity)
	}
	s.world.DestroyEntities(doomed)
	s.statRemoved.Add(int64(len(doomed)))
}

// release frees the emitter's stacking slot and records the despawn
func (s *DeathSystem) release(entity core.Entity) {
	em, isEmitter := s.world.Components.Emitter.GetComponent(entity)
	pl, placed := s.world.Components.Placement.GetComponent(entity)

	if isEmitter && placed {
		if tm, ok := s.world.Resources.Maps.Get(pl.Map); ok {
			tm.Release(pl.Pos, em.Class)
		}
		s.world.PushEvent(event.EventObjectDespawned, &event.ObjectPayload{
			Entity: entity,
			Kind:   em.Kind,
			Player: em.Player,
			Map:    pl.Map,
			Pos:    pl.Pos,
		})
	}
}
