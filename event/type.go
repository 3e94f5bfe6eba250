package event

// EventType represents the type of simulation signal
type EventType int

const (
	// EventTileGained signals the human player colored a previously foreign or neutral tile
	// Trigger: ResolveSystem | Consumer: audio, render | Payload: *TilePayload
	EventTileGained EventType = iota

	// EventTileLost signals the human player lost a tile
	// Trigger: ResolveSystem | Consumer: audio, render | Payload: *TilePayload
	EventTileLost

	// EventObjectSpawned signals a building was placed or an ability invoked
	// Trigger: Place | Consumer: audio, render | Payload: *ObjectPayload
	EventObjectSpawned

	// EventObjectDespawned records the removal of an emitter for change tracking
	// Trigger: DeathSystem | Consumer: render, snapshot tracking | Payload: *ObjectPayload
	EventObjectDespawned

	// EventGameEnded signals an end condition was met
	// Trigger: EndConditionSystem | Consumer: audio, CLI | Payload: *GameEndedPayload
	EventGameEnded

	// EventGameReset signals the world was cleared and a new match generated in place
	// Trigger: Match.Restart | Consumer: audio | Payload: *GameResetPayload
	EventGameReset

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	"tile_gained",
	"tile_lost",
	"object_spawned",
	"object_despawned",
	"game_ended",
	"game_reset",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "unknown"
	}
	return eventNames[t]
}
