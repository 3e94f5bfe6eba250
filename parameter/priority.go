package parameter

// System Execution Priorities (lower runs first)
// The order is the tick pipeline; emitter passes run in emitter.Kinds order
const (
	PriorityCooldown  = 10
	PriorityInfluence = 20 // After cooldown marks activations, before any emitter reads its cache

	PriorityPulser  = 100
	PriorityScatter = 110
	PriorityLine    = 120
	PriorityNuke    = 130
	PriorityFortify = 140
	PriorityExpand  = 150

	PriorityContest  = 200 // Summarizes the aggregator once every emitter pass has written
	PriorityAI       = 210 // Reads the summary, may place emitters for next tick
	PriorityResolve  = 300 // Sole writer of tile ownership
	PriorityDeath    = 400 // Destroy-pending sweep
	PriorityScore    = 500
	PriorityEndCheck = 600
)
