package engine

import (
	"github.com/lixenwraith/territory/conflict"
	"github.com/lixenwraith/territory/core"
)

// TickContext is the per-tick conflict state shared by the pipeline stages
// Emitter passes record into it, the contest pass summarizes it, the resolver drains it
type TickContext struct {
	aggregators map[core.MapID]*conflict.Aggregator
	summaries   map[core.MapID]conflict.Summary
}

func newTickContext() *TickContext {
	return &TickContext{
		aggregators: make(map[core.MapID]*conflict.Aggregator),
		summaries:   make(map[core.MapID]conflict.Summary),
	}
}

// Aggregator returns the conflict aggregator for a map, creating it on first use
func (c *TickContext) Aggregator(id core.MapID) *conflict.Aggregator {
	agg, ok := c.aggregators[id]
	if !ok {
		agg = conflict.NewAggregator()
		c.aggregators[id] = agg
	}
	return agg
}

// SetSummary stores this tick's contest summary for a map
func (c *TickContext) SetSummary(id core.MapID, s conflict.Summary) {
	c.summaries[id] = s
}

// Summary returns this tick's contest summary for a map
func (c *TickContext) Summary(id core.MapID) (conflict.Summary, bool) {
	s, ok := c.summaries[id]
	return s, ok
}

// Pending returns the number of queued records and directives across all maps
func (c *TickContext) Pending() int {
	n := 0
	for _, agg := range c.aggregators {
		n += agg.Len()
	}
	return n
}

// Reset drops summaries and empties every aggregator
func (c *TickContext) Reset() {
	for _, agg := range c.aggregators {
		agg.Reset()
	}
	clear(c.summaries)
}
