package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a float64 metric stored as its IEEE bits; the zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Raise stores v only if it exceeds the current value, reporting whether it did
func (g *Gauge) Raise(v float64) bool {
	for {
		old := g.bits.Load()
		if v <= math.Float64frombits(old) {
			return false
		}
		if g.bits.CompareAndSwap(old, math.Float64bits(v)) {
			return true
		}
	}
}
