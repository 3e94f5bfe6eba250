// Package points implements the building/ability point pools and their saturating accrual
package points

import "github.com/lixenwraith/territory/parameter"

// Rand is the random source accrual draws from, *rand.Rand satisfies it
type Rand interface {
	Float64() float64
}

// Pool is one player's spendable points
type Pool struct {
	Building int
	Ability  int
}

// Probability returns the chance that an accrual at cur succeeds with divisor k
// Below the threshold it is 1; above, 1 - (cur/threshold)/k clamped to [0, 1]
func Probability(cur int, k float64) float64 {
	if cur < parameter.PointsSaturationThreshold {
		return 1
	}
	if k <= 0 {
		return 0
	}
	p := 1 - (float64(cur)/parameter.PointsSaturationThreshold)/k
	if p < 0 {
		return 0
	}
	return p
}

// Increase returns cur plus one with the saturation probability, cur otherwise
func Increase(cur int, k float64, rng Rand) int {
	p := Probability(cur, k)
	if p >= 1 || rng != nil && rng.Float64() < p {
		return cur + 1
	}
	return cur
}

// Accrue attempts one increment of each pool
func (p *Pool) Accrue(rng Rand) {
	p.Building = Increase(p.Building, parameter.BuildingPointsSaturation, rng)
	p.Ability = Increase(p.Ability, parameter.AbilityPointsSaturation, rng)
}

// Spend deducts cost from the pool matching building, reporting false when unaffordable
func (p *Pool) Spend(building bool, cost int) bool {
	pool := &p.Ability
	if building {
		pool = &p.Building
	}
	if *pool < cost {
		return false
	}
	*pool -= cost
	return true
}
