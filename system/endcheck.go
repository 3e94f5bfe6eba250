package system

import (
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/engine"
	"github.com/lixenwraith/territory/event"
	"github.com/lixenwraith/territory/parameter"
)

// EndConditionSystem ends the match once a player dominates or reaches the target share
// It reads the tile counts refreshed by the score pass of the same tick
type EndConditionSystem struct {
	world *engine.World

	enabled bool
}

// NewEndConditionSystem creates a new end condition system
func NewEndConditionSystem(world *engine.World) engine.System {
	s := &EndConditionSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *EndConditionSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *EndConditionSystem) Name() string {
	return "endcheck"
}

// Priority returns the system's priority
func (s *EndConditionSystem) Priority() int {
	return parameter.PriorityEndCheck
}

// SetEnabled toggles the system
func (s *EndConditionSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Update checks the configured end condition
func (s *EndConditionSystem) Update() {
	if !s.enabled || s.world.Resources.Ended != nil {
		return
	}

	winner, ok := s.winner()
	if !ok {
		return
	}

	tick := s.world.Resources.Time.Tick
	s.world.Resources.Ended = &engine.GameEndedResource{Winner: winner, Tick: tick}
	s.world.PushEvent(event.EventGameEnded, &event.GameEndedPayload{Winner: winner, Tick: tick})
}

func (s *EndConditionSystem) winner() (core.PlayerID, bool) {
	cfg := s.world.Resources.Config
	score := s.world.Resources.Score
	leader, count := score.Leader()
	if count == 0 {
		return 0, false
	}

	switch cfg.EndMode {
	case engine.EndPercentage:
		if score.Colorable == 0 {
			return 0, false
		}
		return leader, float64(count) >= cfg.EndTarget*float64(score.Colorable)
	default:
		// A lone configured player has nobody to dominate
		return leader, len(cfg.Players) > 1 && score.Owners() == 1
	}
}
