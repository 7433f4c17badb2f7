package tyre

import (
	"context"
	"errors"
	"sort"

	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/model"
)

// ErrNotFitted is returned when Predict is called before a successful Fit.
var ErrNotFitted = errors.New("model must be fitted before prediction")

type (
	// Prediction is the health summary for one driver at one lap.
	Prediction struct {
		Health               int
		LapsOnTyre           int
		Compound             string
		Category             model.TyreCategory
		EffectiveDegradation float64
		MismatchPenalty      float64
		TrackCondition       model.TrackCondition
		TrackAbrasion        float64
	}

	predictionKey struct {
		driver string
		lap    int
	}
)

const minEffectiveDegradation = 0.001 // keeps maxLaps finite for near-zero rates

// Predict returns the tyre health summary for driver at currentLap.
// cond overrides the track condition recorded on the lap; pass the empty
// value to use the recorded one. Unrecognized condition labels are
// normalized to DRY. A nil result (with nil error) means the
// driver has no laps at or before currentLap or runs an unknown
// compound. Results without an explicit condition are cached per
// (driver, lap) until ClearCache is called.
func (m *Model) Predict(
	driver string,
	currentLap int,
	cond model.TrackCondition,
) (*Prediction, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	if cond != "" {
		// explicit conditions bypass the cache: the same (driver, lap)
		// may be queried under different what-if conditions
		return m.computePrediction(driver, currentLap, cond), nil
	}
	return m.predictions.Get(context.Background(),
		predictionKey{driver: driver, lap: currentLap})
}

// ClearCache drops all cached predictions, e.g. on a playback restart.
func (m *Model) ClearCache() {
	m.predictions.InvalidateAll(context.Background())
}

func (m *Model) computePrediction(
	driver string,
	currentLap int,
	cond model.TrackCondition,
) *Prediction {
	driverLaps := m.lapsByDriver[driver]
	// laps are sorted by lap number; find the most recent one at or
	// before the query lap
	idx := sort.Search(len(driverLaps), func(i int) bool {
		return driverLaps[i].LapNumber > currentLap
	}) - 1
	if idx < 0 {
		return nil
	}
	last := driverLaps[idx]
	profile, ok := m.profiles[last.Compound]
	if !ok {
		return nil
	}

	lapsOnTyre := 0
	for i := idx; i >= 0 && driverLaps[i].Stint == last.Stint; i-- {
		lapsOnTyre++
	}

	if cond == "" {
		cond = last.TrackCondition
	}
	// --condition is free text, unrecognized labels fall back to DRY
	cond, _ = model.NormalizeCondition(cond)
	penalty := m.cfg.MismatchPenalty(profile.Category, cond)

	effDeg := profile.DegradationRate * m.trackAbrasion
	maxLaps := profile.MaxDegradation / max(effDeg, minEffectiveDegradation)
	// mismatched tyres wear faster: each penalty point adds 20% effective age
	effLaps := float64(lapsOnTyre) * (1 + penalty/5)
	health := 100 * (1 - effLaps/maxLaps)
	if health < 0 {
		health = 0
	} else if health > 100 {
		health = 100
	}

	return &Prediction{
		Health:               int(health),
		LapsOnTyre:           lapsOnTyre,
		Compound:             last.Compound,
		Category:             profile.Category,
		EffectiveDegradation: effDeg,
		MismatchPenalty:      penalty,
		TrackCondition:       cond,
		TrackAbrasion:        m.trackAbrasion,
	}
}
