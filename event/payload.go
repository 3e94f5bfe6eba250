package event

import (
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/emitter"
)

// GameEvent is one signal with the tick that produced it
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64
}

// TilePayload carries a tile ownership change
type TilePayload struct {
	Map    core.MapID
	Pos    core.Position
	Player core.PlayerID // New owner on gain, previous owner on loss
}

// ObjectPayload carries an emitter lifecycle change
type ObjectPayload struct {
	Entity core.Entity
	Kind   emitter.Kind
	Player core.PlayerID
	Map    core.MapID
	Pos    core.Position
}

// GameEndedPayload carries the match result
type GameEndedPayload struct {
	Winner core.PlayerID
	Tick   int64
}

// GameResetPayload carries the seed and map of the regenerated match
type GameResetPayload struct {
	Seed int64
	Map  core.MapID
}
