package system

import (
	"sync/atomic"

	"github.com/lixenwraith/territory/component"
	"github.com/lixenwraith/territory/engine"
	"github.com/lixenwraith/territory/parameter"
)

// CooldownSystem counts emitter cooldowns down and marks expired ones for activation
// It runs first so every emitter pass of the same tick sees the activations
type CooldownSystem struct {
	world *engine.World

	statActivated *atomic.Int64

	enabled bool
}

// NewCooldownSystem creates a new cooldown system
func NewCooldownSystem(world *engine.World) engine.System {
	s := &CooldownSystem{
		world: world,
	}
	s.statActivated = world.Resources.Status.Ints.Get("cooldown.activated")
	s.Init()
	return s
}

// Init resets session state for new game
func (s *CooldownSystem) Init() {
	s.statActivated.Store(0)
	s.enabled = true
}

// Name returns system's name
func (s *CooldownSystem) Name() string {
	return "cooldown"
}

// Priority returns the system's priority
func (s *CooldownSystem) Priority() int {
	return parameter.PriorityCooldown
}

// SetEnabled toggles the system
func (s *CooldownSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Update decrements cooldowns and handles expiration
func (s *CooldownSystem) Update() {
	if !s.enabled {
		return
	}

	// Spawn markers describe the previous tick's placements only
	s.world.Components.Spawned.ClearAllComponents()

	dt := s.world.Resources.Time.DeltaTime

	for _, entity := range s.world.Components.Cooldown.GetAllEntities() {
		if s.world.Components.Death.HasEntity(entity) {
			continue
		}
		cd, ok := s.world.Components.Cooldown.GetComponent(entity)
		if !ok {
			continue
		}

		cd.Remaining -= dt
		if cd.Expired() {
			cd.Consume()
			s.world.Components.Activate.SetComponent(entity, component.ActivateComponent{})
			s.statActivated.Add(1)
		}
		s.world.Components.Cooldown.SetComponent(entity, cd)
	}
}
