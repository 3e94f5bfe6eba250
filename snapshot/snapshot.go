// Package snapshot captures world state and computes the changes between two captures
package snapshot

import (
	"time"

	"github.com/lixenwraith/territory/component"
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/emitter"
	"github.com/lixenwraith/territory/engine"
	"github.com/lixenwraith/territory/grid"
)

// TileState is the observable part of a tile
type TileState struct {
	Pos      core.Position
	Owner    core.PlayerID
	Strength component.Strength
	Terrain  component.Terrain
}

// MapState lists a map's tiles in row-major order
type MapState struct {
	ID     core.MapID
	Bounds grid.Bounds
	Tiles  []TileState
}

// EmitterState is the observable part of a placed emitter
type EmitterState struct {
	Entity    core.Entity
	Kind      emitter.Kind
	Player    core.PlayerID
	Map       core.MapID
	Pos       core.Position
	Remaining time.Duration
	UsesLeft  int
}

// PointsState is one player's balances
type PointsState struct {
	Player   core.PlayerID
	Building int
	Ability  int
}

// Snapshot is a value copy of the world at the end of a tick
type Snapshot struct {
	Tick     int64
	Maps     []MapState
	Emitters []EmitterState // Ascending entity order
	Points   []PointsState  // Configured player order
	Ended    bool
	Winner   core.PlayerID
}

// Capture copies the world's observable state
func Capture(w *engine.World) Snapshot {
	s := Snapshot{Tick: w.Resources.Time.Tick}

	for _, tm := range w.Resources.Maps.All() {
		ms := MapState{ID: tm.ID, Bounds: tm.Bounds()}
		for _, p := range tm.Positions() {
			t, ok := tm.Tile(p)
			if !ok {
				continue
			}
			ms.Tiles = append(ms.Tiles, tileState(t))
		}
		s.Maps = append(s.Maps, ms)
	}

	for _, e := range w.Components.Emitter.GetAllEntities() {
		em, ok := w.Components.Emitter.GetComponent(e)
		if !ok {
			continue
		}
		pl, _ := w.Components.Placement.GetComponent(e)
		cd, _ := w.Components.Cooldown.GetComponent(e)
		s.Emitters = append(s.Emitters, EmitterState{
			Entity:    e,
			Kind:      em.Kind,
			Player:    em.Player,
			Map:       pl.Map,
			Pos:       pl.Pos,
			Remaining: cd.Remaining,
			UsesLeft:  cd.UsesLeft,
		})
	}

	for _, p := range w.Resources.Config.Players {
		if pool := w.Resources.Points.Pool(p); pool != nil {
			s.Points = append(s.Points, PointsState{Player: p, Building: pool.Building, Ability: pool.Ability})
		}
	}

	if ended := w.Resources.Ended; ended != nil {
		s.Ended = true
		s.Winner = ended.Winner
	}
	return s
}

func tileState(t component.TileComponent) TileState {
	return TileState{Pos: t.Pos, Owner: t.Owner, Strength: t.Strength, Terrain: t.Terrain}
}

// Clone returns a deep copy
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Maps = make([]MapState, len(s.Maps))
	for i, m := range s.Maps {
		out.Maps[i] = m
		out.Maps[i].Tiles = append([]TileState(nil), m.Tiles...)
	}
	out.Emitters = append([]EmitterState(nil), s.Emitters...)
	out.Points = append([]PointsState(nil), s.Points...)
	return out
}

// Map returns the state of the map with the given handle
func (s Snapshot) Map(id core.MapID) (MapState, bool) {
	for _, m := range s.Maps {
		if m.ID == id {
			return m, true
		}
	}
	return MapState{}, false
}

// Owned counts tiles held by player across all maps
func (s Snapshot) Owned(player core.PlayerID) int {
	n := 0
	for _, m := range s.Maps {
		for _, t := range m.Tiles {
			if t.Strength != component.StrengthNeutral && t.Owner == player {
				n++
			}
		}
	}
	return n
}
