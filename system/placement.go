package system

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/territory/component"
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/emitter"
	"github.com/lixenwraith/territory/engine"
	"github.com/lixenwraith/territory/event"
)

// Placement errors
var (
	ErrGameOver           = errors.New("game over")
	ErrNoTile             = errors.New("no tile at position")
	ErrNotColorable       = errors.New("tile is not colorable")
	ErrTileFull           = errors.New("tile stacking capacity reached")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrUnknownKind        = emitter.ErrUnknownKind
)

// Place validates a placement request, charges the player and spawns the emitter
// The emitter's first activation comes one cooldown after placement
func Place(w *engine.World, req engine.PlacementRequest) (core.Entity, error) {
	if w.Resources.Ended != nil {
		return 0, ErrGameOver
	}

	spec, err := w.Resources.Config.Catalog.Lookup(req.Kind)
	if err != nil {
		return 0, err
	}
	class := spec.Class()

	tm, ok := w.Resources.Maps.Get(req.Map)
	if !ok {
		return 0, fmt.Errorf("map %s: %w", req.Map, ErrNoTile)
	}
	tile, ok := tm.Tile(req.Pos)
	if !ok {
		return 0, fmt.Errorf("%s: %w", req.Pos, ErrNoTile)
	}
	if !tile.Colorable() {
		return 0, fmt.Errorf("%s: %w", req.Pos, ErrNotColorable)
	}
	if !tile.HasRoom(class) {
		return 0, fmt.Errorf("%s %s: %w", req.Pos, class, ErrTileFull)
	}

	pool := w.Resources.Points.Pool(req.Player)
	if pool == nil || !pool.Spend(class == emitter.ClassBuilding, spec.Cost) {
		return 0, fmt.Errorf("player %d %s costs %d: %w", req.Player, req.Kind, spec.Cost, ErrInsufficientPoints)
	}
	tm.Occupy(req.Pos, class)

	entity := w.CreateEntity()
	w.Components.Emitter.SetComponent(entity, component.EmitterComponent{
		Kind:     req.Kind,
		Class:    class,
		Player:   req.Player,
		Behavior: spec.Behavior,
	})
	w.Components.Placement.SetComponent(entity, component.PlacementComponent{
		Map:       req.Map,
		Pos:       req.Pos,
		Direction: req.Direction,
	})
	w.Components.Cooldown.SetComponent(entity, component.CooldownComponent{
		Remaining: spec.Cooldown,
		Reset:     spec.Cooldown,
		UsesLeft:  spec.Uses,
		Unbounded: spec.Uses == 0,
	})
	w.Components.Influence.SetComponent(entity, component.InfluenceComponent{})
	w.Components.Spawned.SetComponent(entity, component.SpawnedComponent{Tick: w.Resources.Time.Tick})

	w.PushEvent(event.EventObjectSpawned, &event.ObjectPayload{
		Entity: entity,
		Kind:   req.Kind,
		Player: req.Player,
		Map:    req.Map,
		Pos:    req.Pos,
	})
	return entity, nil
}
