package tyre

import (
	"sort"

	"github.com/samber/lo"

	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/model"
)

// derivedLap is a lap record augmented with the values the estimators
// work on. Derived laps exist only inside a fit pass.
type derivedLap struct {
	model.Lap
	Seconds  float64 // lap time in seconds
	FuelMass float64 // estimated fuel mass at this lap (kg)
}

// prepareLaps returns a filtered, augmented copy of the input laps:
// warm-up and invalid laps dropped, track conditions normalized, fuel
// mass and seconds computed, sorted by (driver, lap number). The input
// slice is left untouched. The second return value counts how many
// condition labels had to be rewritten to DRY; absent labels default
// to DRY without counting.
func prepareLaps(cfg *Config, laps []model.Lap, onlyDriver string) ([]derivedLap, int) {
	valid := lo.Filter(laps, func(l model.Lap, _ int) bool {
		if onlyDriver != "" && l.Driver != onlyDriver {
			return false
		}
		return l.LapNumber > 1 && l.LapTime > 0 && l.Compound != ""
	})

	normalized := 0
	prepared := lo.Map(valid, func(l model.Lap, _ int) derivedLap {
		cond, wasNormalized := model.NormalizeCondition(l.TrackCondition)
		// an absent label is a plain default, not a rewritten one
		if wasNormalized && l.TrackCondition != "" {
			normalized++
		}
		l.TrackCondition = cond
		fuel := cfg.StartingFuel - float64(l.LapNumber-1)*cfg.FuelBurnRate
		if fuel < 0 {
			fuel = 0
		}
		return derivedLap{
			Lap:      l,
			Seconds:  l.LapTime.Seconds(),
			FuelMass: fuel,
		}
	})

	sort.SliceStable(prepared, func(i, j int) bool {
		if prepared[i].Driver != prepared[j].Driver {
			return prepared[i].Driver < prepared[j].Driver
		}
		return prepared[i].LapNumber < prepared[j].LapNumber
	})
	return prepared, normalized
}

// fuelCorrected returns the lap times with the estimated fuel effect
// subtracted, isolating the tyre-wear-only signal.
func fuelCorrected(laps []derivedLap, fuelEffect float64) []float64 {
	out := make([]float64, len(laps))
	for i, l := range laps {
		out[i] = l.Seconds - fuelEffect*l.FuelMass
	}
	return out
}

// deltaFromFirst rebases values on their first element.
func deltaFromFirst(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v - values[0]
	}
	return out
}

// lapOnTyreSeq returns 1..n as float64 x-values for trend fitting.
func lapOnTyreSeq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

// groupStints splits laps (sorted by driver, lap number) into per-driver,
// per-stint groups, preserving lap order within each group.
func groupStints(laps []derivedLap) map[string]map[int][]derivedLap {
	byDriver := lo.GroupBy(laps, func(l derivedLap) string { return l.Driver })
	out := make(map[string]map[int][]derivedLap, len(byDriver))
	for driver, driverLaps := range byDriver {
		out[driver] = lo.GroupBy(driverLaps, func(l derivedLap) int { return l.Stint })
	}
	return out
}
