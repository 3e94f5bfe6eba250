// Package game assembles a playable match from a config and drives its tick pipeline
package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lixenwraith/territory/component"
	"github.com/lixenwraith/territory/config"
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/engine"
	"github.com/lixenwraith/territory/event"
	"github.com/lixenwraith/territory/mapgen"
	"github.com/lixenwraith/territory/parameter"
	"github.com/lixenwraith/territory/snapshot"
	"github.com/lixenwraith/territory/system"
)

// StartStrength is the strength of every tile in a player's start region
const StartStrength = component.StrengthTwo

// Match owns one world and its event plumbing
type Match struct {
	cfg    config.Config
	world  *engine.World
	tm     *engine.TileMap
	queue  *event.EventQueue
	router *event.Router
	logger *slog.Logger

	seed     int64
	interval time.Duration

	endLogged    bool
	lastRejected int64
}

// New builds a match: rules, start map, start regions and the tick pipeline
// A zero map seed draws one from the clock, Seed reports the value used
func New(cfg config.Config, logger *slog.Logger) (*Match, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rules, err := cfg.Rules()
	if err != nil {
		return nil, err
	}

	w := engine.NewWorld()
	w.Resources.Config = rules
	w.Resources.AI = system.ThreatAI{}

	queue := event.NewEventQueue()
	w.SetEventQueue(queue)
	system.Pipeline(w)

	interval := cfg.Tick.Interval()
	if interval <= 0 {
		interval = parameter.TickInterval
	}

	m := &Match{
		cfg:      cfg,
		world:    w,
		queue:    queue,
		router:   event.NewRouter(queue),
		logger:   logger,
		interval: interval,
	}
	m.generate(cfg.Map.Seed)
	m.applyToggles()
	m.logStart("match started")
	return m, nil
}

// generate seeds the world and lays out its map and start regions, zero seed draws from the clock
// The world must hold no map; callers own the update lock when the pipeline may be running
func (m *Match) generate(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m.seed = seed
	m.cfg.Map.Seed = seed

	rules := m.world.Resources.Config
	m.world.Resources.Rand = engine.NewRandResource(seed)
	m.world.Resources.Points = engine.NewPointsResource(rules.Players, m.cfg.Points.StartingBuilding, m.cfg.Points.StartingAbility)

	plan := mapgen.Generate(m.cfg.MapOptions())
	m.tm = m.world.NewTileMap(core.SeededMapID(seed, 0), plan.Bounds, m.cfg.Capacity(), plan.Terrain())
	plan.Claim(m.tm, rules.Players, StartStrength)
}

// applyToggles switches off the systems the config excludes, Init re-enables everything
func (m *Match) applyToggles() {
	m.world.SetSystemEnabled("ai", m.cfg.Players.AI)
}

func (m *Match) logStart(msg string) {
	b := m.tm.Bounds()
	m.logger.Info(msg,
		"seed", m.seed,
		"map", m.tm.ID.String(),
		"width", b.Width,
		"height", b.Height,
		"players", len(m.world.Resources.Config.Players),
		"end", m.world.Resources.Config.EndMode.String(),
	)
}

// Restart discards the current match and generates a new one in the same world
// Registered handlers stay subscribed and receive EventGameReset; zero seed draws from the clock
func (m *Match) Restart(seed int64) {
	m.world.RunSafe(func() {
		m.world.Reset()
		m.generate(seed)
		m.applyToggles()
		m.world.PushEvent(event.EventGameReset, &event.GameResetPayload{Seed: m.seed, Map: m.tm.ID})
	})
	m.router.DispatchAll()

	m.endLogged = false
	m.lastRejected = 0
	m.logStart("match restarted")
}

// World exposes the underlying world, callers reading it concurrently with Run use RunSafe
func (m *Match) World() *engine.World { return m.world }

// Map returns the match's tile map, replaced by Restart
func (m *Match) Map() *engine.TileMap { return m.tm }

// Seed returns the seed the match was generated from
func (m *Match) Seed() int64 { return m.seed }

// Interval returns the configured tick length
func (m *Match) Interval() time.Duration { return m.interval }

// Register subscribes a handler to the match's signals
func (m *Match) Register(h event.Handler) {
	m.router.Register(h)
}

// Tick advances the world by dt and dispatches the signals it produced
// Once the match has ended Tick does nothing
func (m *Match) Tick(dt time.Duration) []event.GameEvent {
	if _, ended := m.Ended(); ended {
		return nil
	}

	m.world.RunSafe(func() {
		m.world.Resources.Time.Advance(dt)
		m.world.UpdateLocked()
	})
	events := m.router.DispatchAll()

	if rejected := m.world.Resources.Status.Ints.Get("ai.rejected").Load(); rejected > m.lastRejected {
		m.logger.Debug("ai placements rejected", "count", rejected-m.lastRejected, "tick", m.world.Resources.Time.Tick)
		m.lastRejected = rejected
	}
	if res, ended := m.Ended(); ended && !m.endLogged {
		m.endLogged = true
		m.logger.Info("match ended", "winner", res.Winner, "tick", res.Tick)
	}
	return events
}

// Step advances the world by one configured interval
func (m *Match) Step() []event.GameEvent {
	return m.Tick(m.interval)
}

// Place validates and spawns an emitter between ticks
func (m *Match) Place(req engine.PlacementRequest) (core.Entity, error) {
	var (
		e   core.Entity
		err error
	)
	m.world.RunSafe(func() {
		if req.Map.IsZero() {
			req.Map = m.tm.ID
		}
		e, err = system.Place(m.world, req)
	})
	if err != nil {
		return 0, fmt.Errorf("place %s at %s: %w", req.Kind, req.Pos, err)
	}
	return e, nil
}

// Ended reports the result once an end condition fired
func (m *Match) Ended() (engine.GameEndedResource, bool) {
	var (
		res   engine.GameEndedResource
		ended bool
	)
	m.world.RunSafe(func() {
		if r := m.world.Resources.Ended; r != nil {
			res, ended = *r, true
		}
	})
	return res, ended
}

// Snapshot captures the world between ticks
func (m *Match) Snapshot() snapshot.Snapshot {
	var s snapshot.Snapshot
	m.world.RunSafe(func() {
		s = snapshot.Capture(m.world)
	})
	return s
}

// Run ticks at the configured interval until the match ends or ctx is cancelled
// observe, when set, receives a snapshot after every tick
func (m *Match) Run(ctx context.Context, observe func(snapshot.Snapshot)) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	last := m.Snapshot()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		m.Step()
		s := m.Snapshot()
		if observe != nil {
			observe(s)
		}
		if s.Tick%parameter.DigestEveryTicks == 0 {
			d := snapshot.Diff(last, s)
			m.logger.Debug("state digest",
				"tick", s.Tick,
				"digest", snapshot.Sum(s).String(),
				"tiles_changed", len(d.Tiles),
				"spawned", len(d.Spawned),
				"despawned", len(d.Despawned),
			)
			last = s
		}
		if s.Ended {
			return nil
		}
	}
}
