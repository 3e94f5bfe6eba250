package component

import (
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/emitter"
	"github.com/lixenwraith/territory/grid"
	"github.com/lixenwraith/territory/navigation"
)

// EmitterComponent identifies a placed building or invoked ability
type EmitterComponent struct {
	Kind     emitter.Kind
	Class    emitter.Class
	Player   core.PlayerID
	Behavior emitter.Behavior
}

// PlacementComponent anchors an emitter on a map tile
type PlacementComponent struct {
	Map core.MapID
	Pos core.Position
	// Direction is the aim for directional abilities, DirNone otherwise
	Direction grid.Direction
}

// InfluenceComponent holds the emitter's cached reachable tiles
type InfluenceComponent struct {
	Cache navigation.Cache
}

// SpawnedComponent marks an emitter placed during the current tick
type SpawnedComponent struct {
	Tick int64
}
