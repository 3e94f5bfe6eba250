package emitter

import (
	"errors"
	"fmt"
	"time"
)

// Spec is the catalog entry used when placing an emitter
type Spec struct {
	Behavior Behavior
	Cost     int
	// Cooldown is both the first delay and the re-arm duration
	Cooldown time.Duration
	// Uses is the number of activations before removal, 0 keeps the emitter forever
	Uses int
}

// Class returns the stacking class of the spec's kind
func (s Spec) Class() Class {
	return ClassOf(s.Behavior.Kind())
}

// Catalog maps every kind to its placement spec
type Catalog [KindCount]Spec

// Lookup returns the spec for k
func (c *Catalog) Lookup(k Kind) (Spec, error) {
	if k >= KindCount || c[k].Behavior == nil {
		return Spec{}, fmt.Errorf("emitter kind %d: %w", k, ErrUnknownKind)
	}
	return c[k], nil
}

// ErrUnknownKind is returned for kinds missing from a catalog
var ErrUnknownKind = errors.New("unknown emitter kind")
