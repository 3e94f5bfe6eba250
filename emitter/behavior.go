package emitter

// Rand is the random source emitters sample from, *rand.Rand satisfies it
type Rand interface {
	Intn(n int) int
}

// SamplingPolicy decides how often a hit count is drawn
type SamplingPolicy uint8

const (
	// SamplePerEmitter draws once per emitter per activation and reuses it for every group
	SamplePerEmitter SamplingPolicy = iota
	// SamplePerGroup draws again for every group (line side, pulse ring)
	SamplePerGroup
)

// ParseSampling maps a config name to its policy
func ParseSampling(name string) (SamplingPolicy, bool) {
	switch name {
	case "", "per_emitter":
		return SamplePerEmitter, true
	case "per_group":
		return SamplePerGroup, true
	}
	return SamplePerEmitter, false
}

// HitRange is an optional inclusive [Min, Max] count, the zero value means unlimited
type HitRange struct {
	Min, Max int
}

// Unlimited reports whether no range was configured
func (h HitRange) Unlimited() bool {
	return h.Min <= 0 && h.Max <= 0
}

// Sample draws a count in [Min, Max], -1 when unlimited
func (h HitRange) Sample(rng Rand) int {
	if h.Unlimited() {
		return -1
	}
	lo, hi := h.Min, h.Max
	if lo < 0 {
		lo = 0
	}
	if hi < lo {
		hi = lo
	}
	if hi == lo || rng == nil {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Behavior is the closed variant of emitter parameters, one struct per Kind
// The unexported method seals the set to this package
type Behavior interface {
	Kind() Kind
	// Budget is the path-cost limit of the influence search
	Budget() int
	// Dynamic emitters recompute their influence on every activation
	Dynamic() bool
	sealed()
}

// Pulser colors the nearest tiles of its influence with natural conflicts
type Pulser struct {
	Strength int
	Hits     HitRange
	MaxTiles int // 0 = no cap
	Sampling SamplingPolicy
}

// Scatter fires random natural conflicts into its influence
type Scatter struct {
	Strength int
	Shots    HitRange
}

// Line projects guaranteed conflicts along four rays from its origin
type Line struct {
	Strength   int
	Hits       HitRange
	MaxPerSide int // 0 = no cap
	Sampling   SamplingPolicy
}

// Nuke damages every enemy tile in range
type Nuke struct {
	Strength int
}

// Fortify strengthens the caster's connected territory
type Fortify struct {
	Strength int
}

// Expand claims neutral tiles reachable through the caster's territory
type Expand struct {
	Strength int
}

func (Pulser) Kind() Kind  { return KindPulser }
func (Scatter) Kind() Kind { return KindScatter }
func (Line) Kind() Kind    { return KindLine }
func (Nuke) Kind() Kind    { return KindNuke }
func (Fortify) Kind() Kind { return KindFortify }
func (Expand) Kind() Kind  { return KindExpand }

func (b Pulser) Budget() int  { return b.Strength }
func (b Scatter) Budget() int { return b.Strength }
func (b Line) Budget() int    { return b.Strength }
func (b Nuke) Budget() int    { return b.Strength }
func (b Fortify) Budget() int { return b.Strength }
func (b Expand) Budget() int  { return b.Strength }

// Buildings compute influence once; abilities follow the territory they walk
func (Pulser) Dynamic() bool  { return false }
func (Scatter) Dynamic() bool { return true }
func (Line) Dynamic() bool    { return true }
func (Nuke) Dynamic() bool    { return false }
func (Fortify) Dynamic() bool { return true }
func (Expand) Dynamic() bool  { return true }

func (Pulser) sealed()  {}
func (Scatter) sealed() {}
func (Line) sealed()    {}
func (Nuke) sealed()    {}
func (Fortify) sealed() {}
func (Expand) sealed()  {}
