package snapshot

import (
	"slices"

	"github.com/lixenwraith/territory/core"
)

// TileChange is one tile that differs between two snapshots
type TileChange struct {
	Map  core.MapID
	From TileState
	To   TileState
}

// Delta is everything needed to turn one snapshot into a later one
type Delta struct {
	FromTick int64
	ToTick   int64

	Tiles     []TileChange
	Spawned   []EmitterState
	Updated   []EmitterState
	Despawned []core.Entity
	Points    []PointsState // Balances that changed

	Ended  bool
	Winner core.PlayerID
}

// Empty reports whether nothing observable changed
func (d Delta) Empty() bool {
	return len(d.Tiles) == 0 && len(d.Spawned) == 0 && len(d.Updated) == 0 &&
		len(d.Despawned) == 0 && len(d.Points) == 0
}

// Diff compares two snapshots of the same world
// Maps are matched by handle; a map missing from prev contributes every tile
func Diff(prev, next Snapshot) Delta {
	d := Delta{FromTick: prev.Tick, ToTick: next.Tick, Ended: next.Ended, Winner: next.Winner}

	for _, nm := range next.Maps {
		pm, _ := prev.Map(nm.ID)
		before := make(map[core.Position]TileState, len(pm.Tiles))
		for _, t := range pm.Tiles {
			before[t.Pos] = t
		}
		for _, t := range nm.Tiles {
			if old, ok := before[t.Pos]; !ok || old != t {
				d.Tiles = append(d.Tiles, TileChange{Map: nm.ID, From: old, To: t})
			}
		}
	}

	prevEmitters := make(map[core.Entity]EmitterState, len(prev.Emitters))
	for _, e := range prev.Emitters {
		prevEmitters[e.Entity] = e
	}
	for _, e := range next.Emitters {
		old, ok := prevEmitters[e.Entity]
		switch {
		case !ok:
			d.Spawned = append(d.Spawned, e)
		case old != e:
			d.Updated = append(d.Updated, e)
		}
		delete(prevEmitters, e.Entity)
	}
	for e := range prevEmitters {
		d.Despawned = append(d.Despawned, e)
	}
	slices.Sort(d.Despawned)

	prevPoints := make(map[core.PlayerID]PointsState, len(prev.Points))
	for _, p := range prev.Points {
		prevPoints[p.Player] = p
	}
	for _, p := range next.Points {
		if old, ok := prevPoints[p.Player]; !ok || old != p {
			d.Points = append(d.Points, p)
		}
	}
	return d
}

// Apply returns a copy of s with d applied
// Applying Diff(a, b) to a yields b for snapshots of the same maps
func Apply(s Snapshot, d Delta) Snapshot {
	out := s.Clone()
	out.Tick = d.ToTick
	out.Ended = d.Ended
	out.Winner = d.Winner

	for _, ch := range d.Tiles {
		for i := range out.Maps {
			if out.Maps[i].ID != ch.Map {
				continue
			}
			tiles := out.Maps[i].Tiles
			idx := slices.IndexFunc(tiles, func(t TileState) bool { return t.Pos == ch.To.Pos })
			if idx >= 0 {
				tiles[idx] = ch.To
			}
		}
	}

	gone := make(map[core.Entity]bool, len(d.Despawned))
	for _, e := range d.Despawned {
		gone[e] = true
	}
	updated := make(map[core.Entity]EmitterState, len(d.Updated))
	for _, e := range d.Updated {
		updated[e.Entity] = e
	}
	emitters := out.Emitters[:0]
	for _, e := range out.Emitters {
		if gone[e.Entity] {
			continue
		}
		if u, ok := updated[e.Entity]; ok {
			e = u
		}
		emitters = append(emitters, e)
	}
	emitters = append(emitters, d.Spawned...)
	slices.SortFunc(emitters, func(a, b EmitterState) int {
		switch {
		case a.Entity < b.Entity:
			return -1
		case a.Entity > b.Entity:
			return 1
		}
		return 0
	})
	out.Emitters = emitters

	for _, p := range d.Points {
		idx := slices.IndexFunc(out.Points, func(q PointsState) bool { return q.Player == p.Player })
		if idx >= 0 {
			out.Points[idx] = p
		} else {
			out.Points = append(out.Points, p)
		}
	}
	return out
}
