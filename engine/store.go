package engine

import (
	"slices"
	"sync"

	"github.com/lixenwraith/territory/core"
)

// AnyStore provides type-erased operations for entity lifecycle management
type AnyStore interface {
	RemoveEntity(e core.Entity)
	RemoveBatch(entities []core.Entity)
	HasEntity(e core.Entity) bool
	GetAllEntities() []core.Entity
	CountEntities() int
	ClearAllComponents()
}

// Store is a generic container for a specific component type T
// Entities are kept in ascending id order so every pass over a store is deterministic
type Store[T any] struct {
	mu         sync.RWMutex
	components map[core.Entity]T
	entities   []core.Entity
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// SetComponent inserts or updates a component for an entity
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		idx, _ := slices.BinarySearch(s.entities, e)
		s.entities = slices.Insert(s.entities, idx, e)
	}
	s.components[e] = val
}

// GetComponent retrieves a component for an entity
func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.components[e]
	return val, ok
}

// RemoveEntity deletes the entity's component, no-op if absent
func (s *Store[T]) RemoveEntity(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	if idx, found := slices.BinarySearch(s.entities, e); found {
		s.entities = slices.Delete(s.entities, idx, idx+1)
	}
}

// HasEntity checks if entity has this component
func (s *Store[T]) HasEntity(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// GetAllEntities returns a copy of all entities with this component, ascending
func (s *Store[T]) GetAllEntities() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entities)
}

// CountEntities returns number of entities with this component
func (s *Store[T]) CountEntities() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// ClearAllComponents removes all components from this store
func (s *Store[T]) ClearAllComponents() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.components)
	s.entities = s.entities[:0]
}

// RemoveBatch deletes multiple entities with a single compaction pass
func (s *Store[T]) RemoveBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for _, e := range entities {
		if _, exists := s.components[e]; exists {
			delete(s.components, e)
			removed++
		}
	}
	if removed == 0 {
		return
	}

	s.entities = slices.DeleteFunc(s.entities, func(e core.Entity) bool {
		_, keep := s.components[e]
		return !keep
	})
}
