package audio

import (
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/event"
)

// Player is the sink a cue handler plays into, *AudioEngine satisfies it
type Player interface {
	Play(core.SoundType) bool
}

// CueHandler turns match signals into sound cues for the human player
// Tile cues are coalesced to one per tick so a large capture plays a single blip
type CueHandler struct {
	player Player

	lastGained int64
	lastLost   int64
}

// NewCueHandler creates a handler playing into p
func NewCueHandler(p Player) *CueHandler {
	return &CueHandler{player: p, lastGained: -1, lastLost: -1}
}

// EventTypes implements event.Handler
func (h *CueHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTileGained,
		event.EventTileLost,
		event.EventObjectSpawned,
		event.EventObjectDespawned,
		event.EventGameEnded,
		event.EventGameReset,
	}
}

// HandleEvent implements event.Handler
func (h *CueHandler) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventTileGained:
		if ev.Tick != h.lastGained {
			h.lastGained = ev.Tick
			h.player.Play(core.SoundTileGained)
		}

	case event.EventTileLost:
		if ev.Tick != h.lastLost {
			h.lastLost = ev.Tick
			h.player.Play(core.SoundTileLost)
		}

	case event.EventObjectSpawned:
		if p, ok := ev.Payload.(*event.ObjectPayload); ok && p.Player == core.HumanPlayer {
			h.player.Play(core.SoundSpawn)
		}

	case event.EventObjectDespawned:
		if p, ok := ev.Payload.(*event.ObjectPayload); ok && p.Player == core.HumanPlayer {
			h.player.Play(core.SoundExpire)
		}

	case event.EventGameReset:
		// Ticks restart from zero
		h.lastGained, h.lastLost = -1, -1

	case event.EventGameEnded:
		p, ok := ev.Payload.(*event.GameEndedPayload)
		if !ok {
			return
		}
		if p.Winner == core.HumanPlayer {
			h.player.Play(core.SoundVictory)
		} else {
			h.player.Play(core.SoundDefeat)
		}
	}
}
