package parameter

import "time"

// Point accrual with diminishing returns
const (
	// PointsSaturationThreshold is the level below which every accrual succeeds
	PointsSaturationThreshold = 50

	// Saturation divisors K in p = 1 - (points/threshold)/K
	BuildingPointsSaturation = 4.0
	AbilityPointsSaturation  = 3.0

	// PointsAccrualPeriod is the game time between accrual attempts
	PointsAccrualPeriod = 1 * time.Second

	StartingBuildingPoints = 20
	StartingAbilityPoints  = 10
)
