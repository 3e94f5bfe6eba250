package system

import (
	"sync/atomic"

	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/emitter"
	"github.com/lixenwraith/territory/engine"
	"github.com/lixenwraith/territory/grid"
	"github.com/lixenwraith/territory/parameter"
)

// AISystem lets the configured controller place emitters for every computer player
// It runs after the contest summary so decisions see the current tick's pressure
type AISystem struct {
	world *engine.World

	statPlaced   *atomic.Int64
	statRejected *atomic.Int64

	enabled bool
}

// NewAISystem creates a new AI system
func NewAISystem(world *engine.World) engine.System {
	s := &AISystem{
		world: world,
	}
	s.statPlaced = world.Resources.Status.Ints.Get("ai.placed")
	s.statRejected = world.Resources.Status.Ints.Get("ai.rejected")
	s.Init()
	return s
}

// Init resets session state for new game
func (s *AISystem) Init() {
	s.statPlaced.Store(0)
	s.statRejected.Store(0)
	s.enabled = true
}

// Name returns system's name
func (s *AISystem) Name() string {
	return "ai"
}

// Priority returns the system's priority
func (s *AISystem) Priority() int {
	return parameter.PriorityAI
}

// SetEnabled toggles the system
func (s *AISystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Update asks the controller for each computer player's placements
func (s *AISystem) Update() {
	ai := s.world.Resources.AI
	if !s.enabled || ai == nil {
		return
	}

	for _, player := range s.world.Resources.Config.Players {
		if player == core.HumanPlayer {
			continue
		}
		for _, req := range ai.Decide(s.world, player) {
			if _, err := Place(s.world, req); err != nil {
				s.statRejected.Add(1)
				continue
			}
			s.statPlaced.Add(1)
		}
	}
}

// ThreatAI defends the most pressured owned tile and otherwise grows from its frontier
type ThreatAI struct{}

// Decide returns at most one placement per call
func (ThreatAI) Decide(w *engine.World, player core.PlayerID) []engine.PlacementRequest {
	pool := w.Resources.Points.Pool(player)
	if pool == nil {
		return nil
	}
	catalog := &w.Resources.Config.Catalog
	affordable := func(k emitter.Kind) bool {
		spec, err := catalog.Lookup(k)
		if err != nil {
			return false
		}
		if spec.Class() == emitter.ClassBuilding {
			return pool.Building >= spec.Cost
		}
		return pool.Ability >= spec.Cost
	}

	for _, tm := range w.Resources.Maps.All() {
		owned := TilesOf(tm, player)
		if len(owned) == 0 {
			continue
		}

		request := func(k emitter.Kind, p core.Position) []engine.PlacementRequest {
			return []engine.PlacementRequest{{Player: player, Kind: k, Map: tm.ID, Pos: p, Direction: grid.DirNone}}
		}
		fits := func(k emitter.Kind, p core.Position) bool {
			t, ok := tm.Tile(p)
			return ok && affordable(k) && t.HasRoom(emitter.ClassOf(k))
		}

		if summary, ok := w.Resources.Tick.Summary(tm.ID); ok {
			for _, threat := range summary.Threats(player, owned) {
				if fits(emitter.KindPulser, threat.Pos) {
					return request(emitter.KindPulser, threat.Pos)
				}
				if fits(emitter.KindFortify, threat.Pos) {
					return request(emitter.KindFortify, threat.Pos)
				}
			}
		}

		for _, p := range frontier(tm, owned) {
			if fits(emitter.KindPulser, p) {
				return request(emitter.KindPulser, p)
			}
			if fits(emitter.KindExpand, p) {
				return request(emitter.KindExpand, p)
			}
		}
	}
	return nil
}

// frontier returns owned tiles bordering a neutral colorable tile, row-major
func frontier(tm *engine.TileMap, owned []core.Position) []core.Position {
	var out []core.Position
	for _, p := range owned {
		for _, nb := range grid.Neighbors(p, tm.Bounds()) {
			if t, ok := tm.Tile(nb); ok && t.Colorable() && !t.Owned() {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
