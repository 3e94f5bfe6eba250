package system

import (
	"sync/atomic"

	"github.com/lixenwraith/territory/engine"
	"github.com/lixenwraith/territory/parameter"
)

// ContestSystem publishes a read-only summary of the tick's conflicts once every emitter pass has written
type ContestSystem struct {
	world *engine.World

	statContested *atomic.Int64

	enabled bool
}

// NewContestSystem creates a new contest system
func NewContestSystem(world *engine.World) engine.System {
	s := &ContestSystem{
		world: world,
	}
	s.statContested = world.Resources.Status.Ints.Get("contest.tiles")
	s.Init()
	return s
}

// Init resets session state for new game
func (s *ContestSystem) Init() {
	s.statContested.Store(0)
	s.enabled = true
}

// Name returns system's name
func (s *ContestSystem) Name() string {
	return "contest"
}

// Priority returns the system's priority
func (s *ContestSystem) Priority() int {
	return parameter.PriorityContest
}

// SetEnabled toggles the system
func (s *ContestSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Update summarizes every map's aggregator
func (s *ContestSystem) Update() {
	if !s.enabled {
		return
	}

	tick := s.world.Resources.Tick
	contested := 0
	for _, tm := range s.world.Resources.Maps.All() {
		summary := tick.Aggregator(tm.ID).Summarize()
		tick.SetSummary(tm.ID, summary)
		contested += summary.Len()
	}
	s.statContested.Store(int64(contested))
}
