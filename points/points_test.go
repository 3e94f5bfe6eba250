package points

import (
	"math"
	"math/rand"
	"testing"
)

// fixedRand returns the same draw every call
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func TestProbability(t *testing.T) {
	tests := []struct {
		cur  int
		k    float64
		want float64
	}{
		{0, 4, 1},
		{49, 4, 1},
		{50, 4, 0.75},
		{100, 4, 0.5},
		{50, 3, 1 - 1.0/3},
		{150, 3, 0},
		{400, 3, 0},
	}
	for _, tt := range tests {
		if got := Probability(tt.cur, tt.k); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Probability(%d, %v): expected %v, got %v", tt.cur, tt.k, tt.want, got)
		}
	}
}

func TestIncreaseBelowThresholdAlways(t *testing.T) {
	// A draw of 0.999 would fail any probability below 1
	for cur := 0; cur < 50; cur++ {
		if got := Increase(cur, 4, fixedRand(0.999)); got != cur+1 {
			t.Fatalf("Increase(%d): expected %d, got %d", cur, cur+1, got)
		}
	}
}

func TestIncreaseAboveThreshold(t *testing.T) {
	if got := Increase(100, 4, fixedRand(0.49)); got != 101 {
		t.Errorf("Expected draw 0.49 < 0.5 to succeed, got %d", got)
	}
	if got := Increase(100, 4, fixedRand(0.5)); got != 100 {
		t.Errorf("Expected draw 0.5 to fail, got %d", got)
	}
	if got := Increase(150, 3, fixedRand(0)); got != 150 {
		t.Errorf("Expected zero probability to cap accrual, got %d", got)
	}
}

func TestAccrueSaturates(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	var p Pool
	for i := 0; i < 5000; i++ {
		p.Accrue(rng)
	}
	// Effective caps: building 200, ability 150
	if p.Building > 200 || p.Building < 100 {
		t.Errorf("Building points outside expected saturation band: %d", p.Building)
	}
	if p.Ability > 150 || p.Ability < 75 {
		t.Errorf("Ability points outside expected saturation band: %d", p.Ability)
	}
	if p.Ability >= p.Building {
		t.Errorf("Expected ability pool to saturate lower, got ability %d building %d", p.Ability, p.Building)
	}
}

func TestSpend(t *testing.T) {
	p := Pool{Building: 10, Ability: 3}
	if !p.Spend(true, 10) || p.Building != 0 {
		t.Errorf("Expected building spend to succeed, pool %+v", p)
	}
	if p.Spend(false, 4) {
		t.Error("Expected ability spend beyond pool to fail")
	}
	if p.Ability != 3 {
		t.Errorf("Expected failed spend to leave pool untouched, got %d", p.Ability)
	}
}
