package tyre

// PaceState is the filter's belief about a driver's true tyre pace
// after one processed lap.
type PaceState struct {
	Mean     float64
	Variance float64
}

// computeLatentStates runs a scalar Kalman filter per driver over the
// prepared laps, one (mean, variance) entry per processed lap. The state
// resets at every stint change to the compound's reset pace. Laps with
// unknown compounds contribute nothing. The history is diagnostic; the
// predictor computes health in closed form instead.
func computeLatentStates(
	profiles map[string]*Profile,
	laps []derivedLap,
	cfg *Config,
	abrasion float64,
) map[string][]PaceState {
	obsVar := cfg.SigmaEpsilon * cfg.SigmaEpsilon
	procVar := cfg.SigmaEta * cfg.SigmaEta

	out := make(map[string][]PaceState)
	var (
		mean, variance float64
		driver         string
		stint          int
		haveState      bool
	)
	// laps are sorted by (driver, lap number)
	for _, lap := range laps {
		profile, ok := profiles[lap.Compound]
		if !ok {
			continue
		}
		if lap.Driver != driver {
			driver = lap.Driver
			haveState = false
		}
		if !haveState || lap.Stint != stint {
			// fresh tyre: no prior pace to filter from
			mean = profile.ResetPace
			variance = procVar
			stint = lap.Stint
			haveState = true
		} else {
			drift := profile.DegradationRate * abrasion
			meanPred := mean + drift
			varPred := variance + procVar
			expected := meanPred + cfg.FuelEffect*lap.FuelMass
			innovation := lap.Seconds - expected
			gain := varPred / (varPred + obsVar)
			mean = meanPred + gain*innovation
			variance = (1 - gain) * varPred
		}
		out[lap.Driver] = append(out[lap.Driver], PaceState{Mean: mean, Variance: variance})
	}
	return out
}
