package system

import (
	"sync/atomic"

	"github.com/lixenwraith/territory/conflict"
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/engine"
	"github.com/lixenwraith/territory/event"
	"github.com/lixenwraith/territory/parameter"
)

// ResolveSystem converts the tick's conflicts into tile transitions
// It is the only stage that writes tile ownership
type ResolveSystem struct {
	world    *engine.World
	resolver *conflict.Resolver

	statConsumed *atomic.Int64
	statChanges  *atomic.Int64
	statGained   *atomic.Int64
	statLost     *atomic.Int64

	enabled bool
}

// NewResolveSystem creates a new resolve system
func NewResolveSystem(world *engine.World) engine.System {
	s := &ResolveSystem{
		world:    world,
		resolver: conflict.NewResolver(),
	}
	s.statConsumed = world.Resources.Status.Ints.Get("resolve.consumed")
	s.statChanges = world.Resources.Status.Ints.Get("resolve.changes")
	s.statGained = world.Resources.Status.Ints.Get("resolve.gained")
	s.statLost = world.Resources.Status.Ints.Get("resolve.lost")
	s.Init()
	return s
}

// Init resets session state for new game
func (s *ResolveSystem) Init() {
	s.statConsumed.Store(0)
	s.statChanges.Store(0)
	s.statGained.Store(0)
	s.statLost.Store(0)
	s.enabled = true
}

// Name returns system's name
func (s *ResolveSystem) Name() string {
	return "resolve"
}

// Priority returns the system's priority
func (s *ResolveSystem) Priority() int {
	return parameter.PriorityResolve
}

// SetEnabled toggles the system
func (s *ResolveSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Update resolves every map and publishes the human player's gains and losses
func (s *ResolveSystem) Update() {
	if !s.enabled {
		return
	}

	tick := s.world.Resources.Tick
	gained, lost := 0, 0
	s.statConsumed.Add(int64(tick.Pending()))

	for _, tm := range s.world.Resources.Maps.All() {
		outcome := s.resolver.Resolve(tick.Aggregator(tm.ID), tm)
		gained += outcome.Gained
		lost += outcome.Lost
		s.statChanges.Add(int64(len(outcome.Changes)))

		for _, ch := range outcome.Changes {
			if ch.Gained(core.HumanPlayer) {
				s.world.PushEvent(event.EventTileGained, &event.TilePayload{Map: tm.ID, Pos: ch.Pos, Player: ch.NewOwner})
			}
			if ch.Lost(core.HumanPlayer) {
				s.world.PushEvent(event.EventTileLost, &event.TilePayload{Map: tm.ID, Pos: ch.Pos, Player: ch.OldOwner})
			}
		}
	}

	s.world.Resources.Signal.Record(gained, lost)
	s.statGained.Add(int64(gained))
	s.statLost.Add(int64(lost))
	tick.Reset()
}
