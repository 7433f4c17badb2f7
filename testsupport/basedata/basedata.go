// Package basedata provides canned lap tables for tests.
package basedata

import (
	"time"

	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/model"
)

// fuel model constants of the default configuration
const (
	FuelEffect   = 0.032
	StartingFuel = 110.0
	FuelBurnRate = 1.6
)

// FuelMass returns the estimated fuel mass at a lap under the default
// fuel model.
func FuelMass(lapNumber int) float64 {
	fuel := StartingFuel - float64(lapNumber-1)*FuelBurnRate
	if fuel < 0 {
		return 0
	}
	return fuel
}

// SyntheticStint builds n laps for one stint whose fuel-corrected lap
// times rise linearly by slope per lap on tyre. With slope 0 the
// fuel-corrected times are constant (degenerate for trend fitting).
func SyntheticStint(
	driver, compound string,
	stint, startLap, n int,
	basePace, slope float64,
	cond model.TrackCondition,
) []model.Lap {
	laps := make([]model.Lap, 0, n)
	for i := 0; i < n; i++ {
		lapNo := startLap + i
		secs := basePace + slope*float64(i) + FuelEffect*FuelMass(lapNo)
		laps = append(laps, model.Lap{
			Driver:         driver,
			LapNumber:      lapNo,
			LapTime:        time.Duration(secs * float64(time.Second)),
			Compound:       compound,
			Stint:          stint,
			TrackCondition: cond,
		})
	}
	return laps
}

// SampleSession is a small two-driver race with a pit stop each.
func SampleSession() []model.Lap {
	laps := make([]model.Lap, 0)
	laps = append(laps, SyntheticStint("A", "MEDIUM", 1, 2, 10, 69.0, 0.03, model.ConditionDry)...)
	laps = append(laps, SyntheticStint("A", "HARD", 2, 12, 10, 69.5, 0.01, model.ConditionDry)...)
	laps = append(laps, SyntheticStint("B", "SOFT", 1, 2, 8, 68.5, 0.05, model.ConditionDry)...)
	laps = append(laps, SyntheticStint("B", "MEDIUM", 2, 10, 12, 69.0, 0.03, model.ConditionDry)...)
	return laps
}
