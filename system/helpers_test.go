package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/territory/component"
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/emitter"
	"github.com/lixenwraith/territory/engine"
	"github.com/lixenwraith/territory/event"
	"github.com/lixenwraith/territory/grid"
)

const tick = 100 * time.Millisecond

func testCatalog() emitter.Catalog {
	var c emitter.Catalog
	c[emitter.KindPulser] = emitter.Spec{
		Behavior: emitter.Pulser{Strength: 1, Hits: emitter.HitRange{Min: 5, Max: 5}},
		Cost:     10,
		Cooldown: time.Second,
	}
	c[emitter.KindScatter] = emitter.Spec{
		Behavior: emitter.Scatter{Strength: 2, Shots: emitter.HitRange{Min: 3, Max: 3}},
		Cost:     10,
		Cooldown: time.Second,
	}
	c[emitter.KindLine] = emitter.Spec{Behavior: emitter.Line{Strength: 4}, Cost: 5, Cooldown: 300 * time.Millisecond, Uses: 1}
	c[emitter.KindNuke] = emitter.Spec{Behavior: emitter.Nuke{Strength: 1}, Cost: 5, Cooldown: tick, Uses: 1}
	c[emitter.KindFortify] = emitter.Spec{Behavior: emitter.Fortify{Strength: 10}, Cost: 5, Cooldown: tick, Uses: 1}
	c[emitter.KindExpand] = emitter.Spec{Behavior: emitter.Expand{Strength: 10}, Cost: 5, Cooldown: tick, Uses: 1}
	return c
}

type fixture struct {
	w  *engine.World
	tm *engine.TileMap
	q  *event.EventQueue
}

// newFixture builds a two-player world with the full pipeline, end checks and accrual off
func newFixture(t *testing.T, width, height int) *fixture {
	t.Helper()

	w := engine.NewWorld()
	players := []core.PlayerID{core.HumanPlayer, 1}
	w.Resources.Config.Catalog = testCatalog()
	w.Resources.Config.Players = players
	w.Resources.Config.AccrualPeriod = 0
	w.Resources.Points = engine.NewPointsResource(players, 100, 100)

	q := event.NewEventQueue()
	w.SetEventQueue(q)

	tm := w.NewTileMap(core.NewMapID(), grid.Bounds{Width: width, Height: height}, [emitter.ClassCount]uint8{1, 2}, nil)
	Pipeline(w)
	w.SetSystemEnabled("endcheck", false)

	return &fixture{w: w, tm: tm, q: q}
}

func (f *fixture) step(n int) {
	for range n {
		f.w.Resources.Time.Advance(tick)
		f.w.Update()
	}
}

func (f *fixture) own(p core.Position, player core.PlayerID, s component.Strength) {
	tile, _ := f.tm.Tile(p)
	tile.Owner = player
	tile.Strength = s
	f.tm.SetTile(p, tile)
}

func (f *fixture) tile(p core.Position) component.TileComponent {
	tile, _ := f.tm.Tile(p)
	return tile
}

func (f *fixture) place(t *testing.T, player core.PlayerID, kind emitter.Kind, p core.Position, dir grid.Direction) core.Entity {
	t.Helper()
	e, err := Place(f.w, engine.PlacementRequest{Player: player, Kind: kind, Map: f.tm.ID, Pos: p, Direction: dir})
	if err != nil {
		t.Fatalf("Place %s at %s: %v", kind, p, err)
	}
	return e
}

func countEvents(events []event.GameEvent, et event.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == et {
			n++
		}
	}
	return n
}
