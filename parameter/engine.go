package parameter

import "time"

// Simulation Timing
const (
	// TickInterval is the default simulation step
	TickInterval = 100 * time.Millisecond

	// FrameInterval is the terminal redraw rate in interactive mode
	FrameInterval = 50 * time.Millisecond

	// DigestEveryTicks is how often the CLI logs a state digest
	DigestEveryTicks = 50
)

// Map defaults
const (
	MapWidth  = 40
	MapHeight = 20

	// ObstacleThreshold is the noise level above which a tile is non-colorable
	ObstacleThreshold = 0.72

	// Stacking capacity per tile by class
	TileBuildingCapacity = 1
	TileAbilityCapacity  = 2

	// StartRegionRadius is the path-cost radius colored for each player at match start
	StartRegionRadius = 1

	Enemies = 3
)

// End condition defaults
const (
	PercentageTarget = 0.6
)
