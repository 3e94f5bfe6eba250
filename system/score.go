package system

import (
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/engine"
	"github.com/lixenwraith/territory/parameter"
	"github.com/lixenwraith/territory/status"
)

// ScoreSystem counts tiles per player and accrues points for players still on the map
type ScoreSystem struct {
	world *engine.World

	statLeaderShare *status.Gauge
	statLeaderPeak  *status.Gauge

	enabled bool
}

// NewScoreSystem creates a new score system
func NewScoreSystem(world *engine.World) engine.System {
	s := &ScoreSystem{
		world: world,
	}
	s.statLeaderShare = world.Resources.Status.Floats.Get("score.leader_share")
	s.statLeaderPeak = world.Resources.Status.Floats.Get("score.leader_peak")
	s.Init()
	return s
}

// Init resets session state for new game
func (s *ScoreSystem) Init() {
	s.statLeaderShare.Set(0)
	s.statLeaderPeak.Set(0)
	s.enabled = true
}

// Name returns system's name
func (s *ScoreSystem) Name() string {
	return "score"
}

// Priority returns the system's priority
func (s *ScoreSystem) Priority() int {
	return parameter.PriorityScore
}

// SetEnabled toggles the system
func (s *ScoreSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Update refreshes tile counts and runs due accruals
func (s *ScoreSystem) Update() {
	if !s.enabled {
		return
	}

	score := s.world.Resources.Score
	s.count(score)

	if _, n := score.Leader(); score.Colorable > 0 {
		share := float64(n) / float64(score.Colorable)
		s.statLeaderShare.Set(share)
		s.statLeaderPeak.Raise(share)
	}

	period := s.world.Resources.Config.AccrualPeriod
	if period <= 0 {
		return
	}
	score.SinceAccrual += s.world.Resources.Time.DeltaTime
	for score.SinceAccrual >= period {
		score.SinceAccrual -= period
		s.accrue(score)
	}
}

func (s *ScoreSystem) count(score *engine.ScoreResource) {
	clear(score.Tiles)
	score.Colorable = 0

	for _, tm := range s.world.Resources.Maps.All() {
		for _, p := range tm.Positions() {
			t, ok := tm.Tile(p)
			if !ok || !t.Colorable() {
				continue
			}
			score.Colorable++
			if t.Owned() {
				score.Tiles[t.Owner]++
			}
		}
	}
}

// accrue gives one accrual attempt to every configured player owning tiles, in player order
func (s *ScoreSystem) accrue(score *engine.ScoreResource) {
	rng := s.world.Resources.Rand.Rng
	for _, p := range s.world.Resources.Config.Players {
		if score.Tiles[p] == 0 {
			continue
		}
		if pool := s.world.Resources.Points.Pool(p); pool != nil {
			pool.Accrue(rng)
		}
	}
}

// TilesOf returns the positions player owns on a map, row-major
func TilesOf(tm *engine.TileMap, player core.PlayerID) []core.Position {
	var out []core.Position
	for _, p := range tm.Positions() {
		if t, ok := tm.Tile(p); ok && t.OwnedBy(player) {
			out = append(out, p)
		}
	}
	return out
}
