package engine

import (
	"sort"

	"github.com/lixenwraith/territory/core"
)

// QueryBuilder intersects component stores to find entities that have all of them
// The smallest store drives the intersection; results keep ascending entity order
type QueryBuilder struct {
	stores   []AnyStore
	executed bool
	results  []core.Entity
}

// Query starts a new component intersection
//
//	emitters := world.Query().
//	    With(world.Components.Emitter).
//	    With(world.Components.Activate).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		stores: make([]AnyStore, 0, 4),
	}
}

// With adds a component store to the filter
// Panics if called after Execute
func (qb *QueryBuilder) With(store AnyStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns the entities present in every store, cached after the first call
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	sort.SliceStable(qb.stores, func(i, j int) bool {
		return qb.stores[i].CountEntities() < qb.stores[j].CountEntities()
	})

	candidates := qb.stores[0].GetAllEntities()
	for _, store := range qb.stores[1:] {
		if len(candidates) == 0 {
			break
		}
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.HasEntity(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
	}

	qb.results = candidates
	return qb.results
}
