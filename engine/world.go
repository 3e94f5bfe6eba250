// Package engine is the entity/component world the simulation runs on
package engine

import (
	"sort"
	"sync"

	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/event"
)

// World contains all entities, their components and the world resources
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Components ComponentStore
	Resources  Resource

	eventQueue *event.EventQueue

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates an empty world with default resources
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		Resources:    newResource(),
		systems:      make([]System, 0),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntities removes a batch of entities with one compaction pass per store
func (w *World) DestroyEntities(entities []core.Entity) {
	for _, store := range w.Components.all() {
		store.RemoveBatch(entities)
	}
}

// Clear removes all entities, components and maps and rewinds the clock
// Rules, randomness, points, AI and telemetry stay; the caller replaces what the next match needs
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextEntityID = 1
	for _, store := range w.Components.all() {
		store.ClearAllComponents()
	}
	w.Resources.Maps = newMapRegistry()
	w.Resources.Tick.Reset()
	w.Resources.Time = &TimeResource{}
	w.Resources.Signal = &SignalResource{}
	w.Resources.Score = &ScoreResource{Tiles: make(map[core.PlayerID]int)}
	w.Resources.Ended = nil
}

// Reset clears the world and re-initializes every system for a new match
func (w *World) Reset() {
	w.Clear()
	for _, s := range w.Systems() {
		s.Init()
	}
}

// AddSystem adds a system and keeps the pipeline sorted by priority
// Systems sharing a priority keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of the pipeline in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// SetSystemEnabled toggles the named system, returning false if it is missing or not toggleable
func (w *World) SetSystemEnabled(name string, enabled bool) bool {
	for _, s := range w.Systems() {
		if s.Name() != name {
			continue
		}
		t, ok := s.(Toggler)
		if !ok {
			return false
		}
		t.SetEnabled(enabled)
		return true
	}
	return false
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially under the update lock
func (w *World) Update() {
	w.RunSafe(func() {
		w.UpdateLocked()
	})
}

// UpdateLocked runs all systems assuming the caller already holds the update lock
func (w *World) UpdateLocked() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// SetEventQueue wires the queue PushEvent writes to
func (w *World) SetEventQueue(q *event.EventQueue) {
	w.eventQueue = q
}

// PushEvent emits a signal stamped with the current tick
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.eventQueue == nil {
		return
	}
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Tick:    w.Resources.Time.Tick,
	})
}
