package parameter

import "time"

// Pulser building
const (
	PulserCost     = 10
	PulserStrength = 3
	PulserCooldown = 1000 * time.Millisecond
	PulserHitsMin  = 2
	PulserHitsMax  = 6
	PulserMaxTiles = 12
)

// Scatter building
const (
	ScatterCost     = 14
	ScatterStrength = 5
	ScatterCooldown = 1500 * time.Millisecond
	ScatterShotsMin = 2
	ScatterShotsMax = 4
)

// Line ability
const (
	LineCost       = 6
	LineStrength   = 6
	LineCooldown   = 300 * time.Millisecond
	LineUses       = 1
	LineMaxPerSide = 4
)

// Nuke ability
const (
	NukeCost     = 15
	NukeStrength = 2
	NukeCooldown = 500 * time.Millisecond
	NukeUses     = 1
)

// Fortify ability
const (
	FortifyCost     = 5
	FortifyStrength = 4
	FortifyCooldown = 400 * time.Millisecond
	FortifyUses     = 3
)

// Expand ability
const (
	ExpandCost     = 8
	ExpandStrength = 4
	ExpandCooldown = 400 * time.Millisecond
	ExpandUses     = 2
)
