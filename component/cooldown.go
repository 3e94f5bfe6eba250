package component

import "time"

// CooldownComponent drives an emitter's activation cycle
// Remaining counts down by each tick's delta; expiry marks the emitter for activation
type CooldownComponent struct {
	Remaining time.Duration
	Reset     time.Duration

	// UsesLeft counts remaining activations, ignored when Unbounded
	UsesLeft  int
	Unbounded bool
}

// Expired reports whether the countdown reached zero
func (c CooldownComponent) Expired() bool {
	return c.Remaining <= 0
}

// Consume re-arms the timer and spends one use
// UsesLeft saturates at zero
func (c *CooldownComponent) Consume() {
	c.Remaining = c.Reset
	if !c.Unbounded && c.UsesLeft > 0 {
		c.UsesLeft--
	}
}

// Exhausted reports whether the emitter has no activations left
func (c CooldownComponent) Exhausted() bool {
	return !c.Unbounded && c.UsesLeft <= 0
}

// ActivateComponent marks an emitter whose cooldown expired this tick
type ActivateComponent struct{}

// DeathComponent marks an entity for removal by the death sweep
type DeathComponent struct{}
