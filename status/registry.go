// Package status is the simulation's telemetry registry
package status

import (
	"log/slog"
	"sync/atomic"
)

// Registry is the central metrics facade
// Systems cache pointers during construction; Update loops write directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[Gauge]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[Gauge](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// LogValue renders all metrics as a structured log group
func (r *Registry) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, r.TotalCount())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		attrs = append(attrs, slog.Int64(key, ptr.Load()))
	})
	r.Floats.Range(func(key string, ptr *Gauge) {
		attrs = append(attrs, slog.Float64(key, ptr.Get()))
	})
	return slog.GroupValue(attrs...)
}
