package game

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/lixenwraith/territory/config"
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/emitter"
	"github.com/lixenwraith/territory/engine"
	"github.com/lixenwraith/territory/event"
	"github.com/lixenwraith/territory/grid"
	"github.com/lixenwraith/territory/snapshot"
	"github.com/lixenwraith/territory/system"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Map.Width = 12
	cfg.Map.Height = 8
	cfg.Map.Seed = 5
	cfg.Map.Layout = "open"
	cfg.Players.Enemies = 1
	cfg.Players.AI = false
	return cfg
}

type countingHandler struct {
	counts map[event.EventType]int
}

func (h *countingHandler) HandleEvent(ev event.GameEvent) { h.counts[ev.Type]++ }
func (h *countingHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventObjectSpawned, event.EventTileGained}
}

func TestNewClaimsStartRegions(t *testing.T) {
	m, err := New(testConfig(), quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s := m.Snapshot()
	if got := s.Owned(core.HumanPlayer); got != 9 {
		t.Errorf("Expected 9 start tiles for the human, got %d", got)
	}
	if got := s.Owned(1); got != 9 {
		t.Errorf("Expected 9 start tiles for the enemy, got %d", got)
	}
	if m.Map().ID != core.SeededMapID(5, 0) {
		t.Errorf("Expected map handle derived from the seed")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Map.Width = 0
	if _, err := New(cfg, quietLogger()); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestPlaceWrapsErrors(t *testing.T) {
	m, err := New(testConfig(), quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = m.Place(engine.PlacementRequest{Player: core.HumanPlayer, Kind: emitter.KindPulser, Pos: core.Pos(99, 99)})
	if !errors.Is(err, system.ErrNoTile) {
		t.Errorf("Expected ErrNoTile, got %v", err)
	}
}

func TestSignalsReachHandlers(t *testing.T) {
	m, err := New(testConfig(), quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h := &countingHandler{counts: make(map[event.EventType]int)}
	m.Register(h)

	// East edge of the human start region, the ray runs into neutral ground
	req := engine.PlacementRequest{Player: core.HumanPlayer, Kind: emitter.KindLine, Pos: core.Pos(2, 1), Direction: grid.DirE}
	if _, err := m.Place(req); err != nil {
		t.Fatalf("Place: %v", err)
	}
	for range 5 {
		m.Step()
	}

	if h.counts[event.EventObjectSpawned] != 1 {
		t.Errorf("Expected 1 spawn signal, got %d", h.counts[event.EventObjectSpawned])
	}
	if h.counts[event.EventTileGained] == 0 {
		t.Error("Expected the line to gain tiles")
	}
}

func TestSameSeedSameDigests(t *testing.T) {
	run := func() []snapshot.Digest {
		cfg := testConfig()
		cfg.Map.Layout = "noise"
		cfg.Players.Enemies = 3
		cfg.Players.AI = true
		m, err := New(cfg, quietLogger())
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		var out []snapshot.Digest
		for range 60 {
			m.Step()
			out = append(out, snapshot.Sum(m.Snapshot()))
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected identical digest at tick %d, got %s vs %s", i+1, a[i], b[i])
		}
	}
}

func TestTickIsNoOpAfterEnd(t *testing.T) {
	cfg := testConfig()
	cfg.EndCondition.Mode = "percentage"
	cfg.EndCondition.Target = 0.05

	m, err := New(cfg, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	events := m.Step()
	res, ended := m.Ended()
	if !ended {
		t.Fatal("Expected the match to end on the first tick")
	}
	if res.Winner != core.HumanPlayer || res.Tick != 1 {
		t.Errorf("Expected human win at tick 1, got %d at %d", res.Winner, res.Tick)
	}
	found := false
	for _, ev := range events {
		if ev.Type == event.EventGameEnded {
			found = true
		}
	}
	if !found {
		t.Error("Expected a game ended signal")
	}

	if got := m.Step(); got != nil {
		t.Errorf("Expected no events after the end, got %d", len(got))
	}
	if tick := m.Snapshot().Tick; tick != 1 {
		t.Errorf("Expected the clock to stop at 1, got %d", tick)
	}
}

func TestRunStopsAtEnd(t *testing.T) {
	cfg := testConfig()
	cfg.Tick.IntervalMS = 1
	cfg.EndCondition.Mode = "percentage"
	cfg.EndCondition.Target = 0.05

	m, err := New(cfg, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var seen []snapshot.Snapshot
	if err := m.Run(context.Background(), func(s snapshot.Snapshot) { seen = append(seen, s) }); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(seen) != 1 || !seen[0].Ended {
		t.Errorf("Expected one observed snapshot with the match ended, got %d", len(seen))
	}
}

func TestRunHonoursCancel(t *testing.T) {
	m, err := New(testConfig(), quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := m.Run(ctx, nil); err != nil {
		t.Errorf("Expected nil on cancel, got %v", err)
	}
}

type resetHandler struct {
	seeds []int64
}

func (h *resetHandler) EventTypes() []event.EventType { return []event.EventType{event.EventGameReset} }
func (h *resetHandler) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.GameResetPayload); ok {
		h.seeds = append(h.seeds, p.Seed)
	}
}

func TestRestartAfterEnd(t *testing.T) {
	cfg := testConfig()
	cfg.EndCondition.Mode = "percentage"
	cfg.EndCondition.Target = 0.05

	m, err := New(cfg, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h := &resetHandler{}
	m.Register(h)
	m.Step()
	if _, ended := m.Ended(); !ended {
		t.Fatal("Expected the first match to end")
	}

	m.Restart(9)

	if _, ended := m.Ended(); ended {
		t.Error("Expected the restarted match to be running")
	}
	if len(h.seeds) != 1 || h.seeds[0] != 9 {
		t.Errorf("Expected one reset signal for seed 9, got %v", h.seeds)
	}
	if m.Seed() != 9 || m.Map().ID != core.SeededMapID(9, 0) {
		t.Errorf("Expected seed 9 and its map handle, got seed %d", m.Seed())
	}
	s := m.Snapshot()
	if s.Tick != 0 || len(s.Maps) != 1 || len(s.Emitters) != 0 {
		t.Errorf("Expected a fresh single-map world, got tick %d, %d maps, %d emitters", s.Tick, len(s.Maps), len(s.Emitters))
	}
	if got := s.Owned(core.HumanPlayer); got != 9 {
		t.Errorf("Expected 9 start tiles after restart, got %d", got)
	}
	m.Step()
	if tick := m.Snapshot().Tick; tick != 1 {
		t.Errorf("Expected the restarted match to tick, got %d", tick)
	}
}

func TestRestartReplaysSeed(t *testing.T) {
	cfg := testConfig()
	cfg.Map.Layout = "noise"
	cfg.Players.Enemies = 2
	cfg.Players.AI = true

	m, err := New(cfg, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	play := func() []snapshot.Digest {
		var out []snapshot.Digest
		for range 40 {
			m.Step()
			out = append(out, snapshot.Sum(m.Snapshot()))
		}
		return out
	}

	first := play()
	m.Restart(cfg.Map.Seed)
	second := play()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Expected identical digest at tick %d after restart, got %s vs %s", i+1, first[i], second[i])
		}
	}
}

func TestAIOffSurvivesRestart(t *testing.T) {
	m, err := New(testConfig(), quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for round := range 2 {
		for range 5 {
			m.Step()
		}
		if n := len(m.Snapshot().Emitters); n != 0 {
			t.Errorf("Round %d: expected no computer placements, got %d emitters", round, n)
		}
		m.Restart(m.Seed())
	}
	if got := m.World().Resources.Status.Ints.Get("ai.placed").Load(); got != 0 {
		t.Errorf("Expected the ai pass to stay off, got %d placements", got)
	}
}
