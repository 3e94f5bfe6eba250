package component

import (
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/emitter"
)

// Strength is how entrenched a tile's owner is, strictly ordered Neutral < One < ... < Five
type Strength uint8

const (
	StrengthNeutral Strength = iota
	StrengthOne
	StrengthTwo
	StrengthThree
	StrengthFour
	StrengthFive
)

// StrengthMax is the ceiling for Strengthen
const StrengthMax = StrengthFive

// Damage moves one step toward Neutral, no-op at Neutral
func (s Strength) Damage() Strength {
	if s == StrengthNeutral || s > StrengthMax {
		return StrengthNeutral
	}
	return s - 1
}

// Strengthen moves one step toward Five, no-op at Five
func (s Strength) Strengthen() Strength {
	if s >= StrengthMax {
		return StrengthMax
	}
	return s + 1
}

// Valid reports whether s is one of the six defined levels
func (s Strength) Valid() bool {
	return s <= StrengthMax
}

func (s Strength) String() string {
	switch s {
	case StrengthNeutral:
		return "neutral"
	case StrengthOne:
		return "one"
	case StrengthTwo:
		return "two"
	case StrengthThree:
		return "three"
	case StrengthFour:
		return "four"
	case StrengthFive:
		return "five"
	}
	return "invalid"
}

// Terrain classifies whether a tile can be colored at all
type Terrain uint8

const (
	TerrainColorable Terrain = iota
	TerrainNonColorable
)

// TileComponent is the per-tile color state
// Owner is meaningful only while Strength is above Neutral
type TileComponent struct {
	Map      core.MapID
	Pos      core.Position
	Owner    core.PlayerID
	Strength Strength
	Terrain  Terrain

	// Stacking capacity and current occupancy per emitter class
	Capacity [emitter.ClassCount]uint8
	Occupied [emitter.ClassCount]uint8
}

// Owned reports whether the tile currently has an owner
func (t TileComponent) Owned() bool {
	return t.Strength != StrengthNeutral
}

// OwnedBy reports whether player p owns the tile
func (t TileComponent) OwnedBy(p core.PlayerID) bool {
	return t.Owned() && t.Owner == p
}

// Colorable reports whether conflicts may ever land on the tile
func (t TileComponent) Colorable() bool {
	return t.Terrain == TerrainColorable
}

// Claim sets owner at the lowest owned strength
func (t *TileComponent) Claim(p core.PlayerID) {
	t.Owner = p
	t.Strength = StrengthOne
}

// Clear removes ownership entirely
func (t *TileComponent) Clear() {
	t.Owner = 0
	t.Strength = StrengthNeutral
}

// HasRoom reports whether another emitter of class c fits on the tile
func (t TileComponent) HasRoom(c emitter.Class) bool {
	if c >= emitter.ClassCount {
		return false
	}
	return t.Occupied[c] < t.Capacity[c]
}
