package system

import (
	"sync/atomic"

	"github.com/lixenwraith/territory/component"
	"github.com/lixenwraith/territory/conflict"
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/emitter"
	"github.com/lixenwraith/territory/engine"
	"github.com/lixenwraith/territory/grid"
	"github.com/lixenwraith/territory/navigation"
	"github.com/lixenwraith/territory/parameter"
)

var emitterPriority = [emitter.KindCount]int{
	emitter.KindPulser:  parameter.PriorityPulser,
	emitter.KindScatter: parameter.PriorityScatter,
	emitter.KindLine:    parameter.PriorityLine,
	emitter.KindNuke:    parameter.PriorityNuke,
	emitter.KindFortify: parameter.PriorityFortify,
	emitter.KindExpand:  parameter.PriorityExpand,
}

// EmitterSystem projects the conflicts of one emitter kind
// Each activating emitter of the kind writes into the tick's aggregator, then leaves the activate state
type EmitterSystem struct {
	world *engine.World
	kind  emitter.Kind

	statFired   *atomic.Int64
	statRecords *atomic.Int64

	enabled bool
}

// NewEmitterSystem creates the pass for kind
func NewEmitterSystem(world *engine.World, kind emitter.Kind) engine.System {
	s := &EmitterSystem{
		world: world,
		kind:  kind,
	}
	s.statFired = world.Resources.Status.Ints.Get("emitter." + kind.String() + ".fired")
	s.statRecords = world.Resources.Status.Ints.Get("emitter." + kind.String() + ".records")
	s.Init()
	return s
}

// Init resets session state for new game
func (s *EmitterSystem) Init() {
	s.statFired.Store(0)
	s.statRecords.Store(0)
	s.enabled = true
}

// Name returns system's name
func (s *EmitterSystem) Name() string {
	return s.kind.String()
}

// Priority returns the system's priority
func (s *EmitterSystem) Priority() int {
	if s.kind >= emitter.KindCount {
		return parameter.PriorityExpand
	}
	return emitterPriority[s.kind]
}

// SetEnabled toggles the system
func (s *EmitterSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Update fires every activating emitter of the system's kind
func (s *EmitterSystem) Update() {
	if !s.enabled {
		return
	}

	entities := s.world.Query().
		With(s.world.Components.Activate).
		With(s.world.Components.Emitter).
		Execute()

	for _, entity := range entities {
		em, ok := s.world.Components.Emitter.GetComponent(entity)
		if !ok || em.Kind != s.kind {
			continue
		}
		s.fire(entity, em)
		s.finishActivation(entity)
	}
}

func (s *EmitterSystem) fire(entity core.Entity, em component.EmitterComponent) {
	pl, ok := s.world.Components.Placement.GetComponent(entity)
	if !ok {
		return
	}
	tm, ok := s.world.Resources.Maps.Get(pl.Map)
	if !ok {
		return
	}
	inf, ok := s.world.Components.Influence.GetComponent(entity)
	if !ok || len(inf.Cache.Nodes) == 0 {
		return
	}

	agg := s.world.Resources.Tick.Aggregator(pl.Map)
	rng := s.world.Resources.Rand.Rng
	nodes := inf.Cache.Nodes
	before := agg.Len()

	switch b := em.Behavior.(type) {
	case emitter.Pulser:
		for _, n := range pulseTargets(nodes, b, rng) {
			agg.RecordNatural(n.Pos, em.Player, entity)
		}

	case emitter.Scatter:
		shots := b.Shots.Sample(rng)
		if shots < 0 {
			shots = len(nodes)
		}
		for range shots {
			n := nodes[rng.Intn(len(nodes))]
			agg.RecordNatural(n.Pos, em.Player, entity)
		}

	case emitter.Line:
		for _, n := range lineTargets(nodes, b, pl.Direction, rng) {
			agg.RecordGuarantee(conflict.Guarantee{
				Pos:           n.Pos,
				Player:        em.Player,
				AffectNeutral: true,
				AffectOther:   true,
				Kind:          conflict.KindNatural,
			})
		}

	case emitter.Nuke:
		for _, n := range nodes {
			agg.RecordGuarantee(conflict.Guarantee{
				Pos:         n.Pos,
				Player:      em.Player,
				AffectOther: true,
				Kind:        conflict.KindDamage,
			})
		}

	case emitter.Fortify:
		for _, n := range nodes {
			agg.RecordGuarantee(conflict.Guarantee{
				Pos:           n.Pos,
				Player:        em.Player,
				AffectCasting: true,
				Kind:          conflict.KindStrengthen,
			})
		}

	case emitter.Expand:
		for _, n := range nodes {
			if !expandTarget(tm, n.Pos, em.Player) {
				continue
			}
			agg.RecordGuarantee(conflict.Guarantee{
				Pos:           n.Pos,
				Player:        em.Player,
				AffectCasting: true,
				AffectNeutral: true,
				Kind:          conflict.KindStrengthen,
			})
		}
	}

	s.statFired.Add(1)
	s.statRecords.Add(int64(agg.Len() - before))
}

// finishActivation returns the emitter to dormant, or tags it for removal when out of uses
func (s *EmitterSystem) finishActivation(entity core.Entity) {
	s.world.Components.Activate.RemoveEntity(entity)

	cd, ok := s.world.Components.Cooldown.GetComponent(entity)
	if !ok || cd.Exhausted() {
		s.world.Components.Death.SetComponent(entity, component.DeathComponent{})
	}
}

// pulseTargets selects the nearest tiles a pulse colors
// Per-group sampling draws a fresh count for each cost ring
func pulseTargets(nodes []navigation.Node, b emitter.Pulser, rng emitter.Rand) []navigation.Node {
	if b.MaxTiles > 0 && len(nodes) > b.MaxTiles {
		nodes = nodes[:b.MaxTiles]
	}

	if b.Sampling == emitter.SamplePerGroup {
		var out []navigation.Node
		for _, ring := range navigation.Rings(nodes) {
			out = append(out, firstN(ring, b.Hits.Sample(rng))...)
		}
		return out
	}
	return firstN(nodes, b.Hits.Sample(rng))
}

// lineTargets selects the first tiles of each ray, the origin always included
// A set direction limits the cast to that ray
func lineTargets(nodes []navigation.Node, b emitter.Line, dir grid.Direction, rng emitter.Rand) []navigation.Node {
	origin, sides := navigation.PerSide(nodes)

	var out []navigation.Node
	if origin != nil {
		out = append(out, *origin)
	}

	var (
		n     int
		drawn bool
	)
	for d := grid.DirN; d < grid.DirCount; d++ {
		if dir != grid.DirNone && d != dir {
			continue
		}
		if !drawn || b.Sampling == emitter.SamplePerGroup {
			n = b.Hits.Sample(rng)
			drawn = true
		}
		side := sides[d]
		if b.MaxPerSide > 0 && len(side) > b.MaxPerSide {
			side = side[:b.MaxPerSide]
		}
		out = append(out, firstN(side, n)...)
	}
	return out
}

// expandTarget accepts the caster's own tiles and neutral tiles bordering them
func expandTarget(tm *engine.TileMap, p core.Position, player core.PlayerID) bool {
	t, ok := tm.Tile(p)
	if !ok {
		return false
	}
	if t.OwnedBy(player) {
		return true
	}
	if t.Owned() {
		return false
	}
	for _, nb := range grid.Neighbors(p, tm.Bounds()) {
		if nt, ok := tm.Tile(nb); ok && nt.OwnedBy(player) {
			return true
		}
	}
	return false
}

// firstN returns the first n nodes, all of them when n is negative
func firstN(nodes []navigation.Node, n int) []navigation.Node {
	if n < 0 || n >= len(nodes) {
		return nodes
	}
	return nodes[:n]
}
