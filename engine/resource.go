package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/emitter"
	"github.com/lixenwraith/territory/grid"
	"github.com/lixenwraith/territory/parameter"
	"github.com/lixenwraith/territory/points"
	"github.com/lixenwraith/territory/status"
)

// Resource holds singleton world resources, accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Config *ConfigResource
	Rand   *RandResource
	Maps   *MapRegistry

	// Per-tick pipeline state
	Tick   *TickContext
	Signal *SignalResource

	// Player state
	Points *PointsResource
	Score  *ScoreResource

	// Ended is nil until an end condition fires
	Ended *GameEndedResource

	// AI decides placements for non-human players, nil disables the AI pass
	AI AIController

	// Telemetry
	Status *status.Registry
}

// TimeResource carries the tick clock
type TimeResource struct {
	DeltaTime time.Duration
	Elapsed   time.Duration
	Tick      int64
}

// Advance moves the clock forward by one tick of length dt
func (tr *TimeResource) Advance(dt time.Duration) {
	tr.DeltaTime = dt
	tr.Elapsed += dt
	tr.Tick++
}

// EndMode selects how a winner is decided
type EndMode uint8

const (
	EndDomination EndMode = iota
	EndPercentage
)

func (m EndMode) String() string {
	if m == EndPercentage {
		return "percentage"
	}
	return "domination"
}

// ConfigResource holds the match rules systems read every tick
type ConfigResource struct {
	Catalog emitter.Catalog
	Players []core.PlayerID

	AccrualPeriod time.Duration

	EndMode   EndMode
	EndTarget float64 // Fraction of colorable tiles for EndPercentage
}

// RandResource is the single random source of the simulation
type RandResource struct {
	Rng *rand.Rand
}

// NewRandResource seeds a deterministic source
func NewRandResource(seed int64) *RandResource {
	return &RandResource{Rng: rand.New(rand.NewSource(seed))}
}

// SignalResource counts human tile changes
// Gained and Lost describe the latest resolution pass only
type SignalResource struct {
	Gained int
	Lost   int

	TotalGained int64
	TotalLost   int64
}

// Record replaces the per-pass counters and accumulates totals
func (sr *SignalResource) Record(gained, lost int) {
	sr.Gained = gained
	sr.Lost = lost
	sr.TotalGained += int64(gained)
	sr.TotalLost += int64(lost)
}

// PointsResource holds every player's point pools
type PointsResource struct {
	pools map[core.PlayerID]*points.Pool
}

// NewPointsResource creates pools for players with starting balances
func NewPointsResource(players []core.PlayerID, building, ability int) *PointsResource {
	r := &PointsResource{pools: make(map[core.PlayerID]*points.Pool, len(players))}
	for _, p := range players {
		r.pools[p] = &points.Pool{Building: building, Ability: ability}
	}
	return r
}

// Pool returns the pools of player p, nil for unknown players
func (r *PointsResource) Pool(p core.PlayerID) *points.Pool {
	return r.pools[p]
}

// ScoreResource tracks tile ownership per player, refreshed by the score pass
type ScoreResource struct {
	Tiles     map[core.PlayerID]int
	Colorable int

	// SinceAccrual accumulates time toward the next points accrual
	SinceAccrual time.Duration
}

// Leader returns the player with the most tiles, lowest id on ties
func (sr *ScoreResource) Leader() (core.PlayerID, int) {
	var (
		best  core.PlayerID
		count = -1
	)
	for p, n := range sr.Tiles {
		if n > count || n == count && p < best {
			best, count = p, n
		}
	}
	if count < 0 {
		return 0, 0
	}
	return best, count
}

// Owners returns how many players hold at least one tile
func (sr *ScoreResource) Owners() int {
	n := 0
	for _, c := range sr.Tiles {
		if c > 0 {
			n++
		}
	}
	return n
}

// GameEndedResource records the match result
type GameEndedResource struct {
	Winner core.PlayerID
	Tick   int64
}

// PlacementRequest asks to put an emitter of Kind on a tile
type PlacementRequest struct {
	Player    core.PlayerID
	Kind      emitter.Kind
	Map       core.MapID
	Pos       core.Position
	Direction grid.Direction // DirNone when undirected, the zero value aims north
}

// AIController chooses placements for a computer player from the current world state
type AIController interface {
	Decide(w *World, player core.PlayerID) []PlacementRequest
}

func newResource() Resource {
	return Resource{
		Time: &TimeResource{},
		Config: &ConfigResource{
			Players:       []core.PlayerID{core.HumanPlayer},
			AccrualPeriod: parameter.PointsAccrualPeriod,
			EndMode:       EndDomination,
			EndTarget:     parameter.PercentageTarget,
		},
		Rand:   NewRandResource(1),
		Maps:   newMapRegistry(),
		Tick:   newTickContext(),
		Signal: &SignalResource{},
		Points: NewPointsResource([]core.PlayerID{core.HumanPlayer}, parameter.StartingBuildingPoints, parameter.StartingAbilityPoints),
		Score:  &ScoreResource{Tiles: make(map[core.PlayerID]int)},
		Status: status.NewRegistry(),
	}
}
