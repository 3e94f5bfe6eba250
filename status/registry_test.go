package status

import (
	"testing"
)

func TestRegistryCounters(t *testing.T) {
	r := NewRegistry()

	gained := r.Ints.Get("resolve.gained")
	gained.Add(3)
	if r.Ints.Get("resolve.gained") != gained {
		t.Error("Expected cached pointer on second Get")
	}
	r.Ints.Get("death.removed").Add(1)
	r.Floats.Get("score.share").Set(0.25)

	if r.TotalCount() != 3 {
		t.Errorf("Expected 3 metrics, got %d", r.TotalCount())
	}

	if got := r.Ints.Get("resolve.gained").Load(); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}

	keys := r.Ints.Keys()
	if len(keys) != 2 || keys[0] != "death.removed" {
		t.Errorf("Expected sorted keys, got %v", keys)
	}

	if got := r.LogValue().Group(); len(got) != 3 {
		t.Errorf("Expected 3 log attrs, got %d", len(got))
	}
}

func TestGaugeRaise(t *testing.T) {
	var g Gauge
	if !g.Raise(0.5) {
		t.Errorf("Expected raise from zero to succeed")
	}
	if g.Raise(0.25) {
		t.Errorf("Expected lower value to be ignored")
	}
	if got := g.Get(); got != 0.5 {
		t.Errorf("Expected 0.5, got %v", got)
	}
}
