package tyre

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/model"
)

func dl(driver string, lapNo int, seconds float64, compound string, stint int) derivedLap {
	fuel := 110.0 - float64(lapNo-1)*1.6
	if fuel < 0 {
		fuel = 0
	}
	return derivedLap{
		Lap: model.Lap{
			Driver: driver, LapNumber: lapNo, Compound: compound, Stint: stint,
			TrackCondition: model.ConditionDry,
		},
		Seconds:  seconds,
		FuelMass: fuel,
	}
}

func TestComputeLatentStatesSingleStint(t *testing.T) {
	cfg := DefaultConfig()
	profiles := DefaultProfiles()
	laps := []derivedLap{
		dl("A", 2, 72.5, "MEDIUM", 1),
		dl("A", 3, 72.5, "MEDIUM", 1),
	}
	states := computeLatentStates(profiles, laps, cfg, 1.0)
	require.Len(t, states["A"], 2)

	// first lap of a stint: reset pace, process noise variance
	assert.InDelta(t, 69.0, states["A"][0].Mean, 1e-9)
	assert.InDelta(t, 0.01, states["A"][0].Variance, 1e-9)

	// second lap: one full predict/update cycle
	meanPred := 69.0 + 0.03
	varPred := 0.01 + 0.01
	expected := meanPred + 0.032*(110.0-2*1.6)
	innovation := 72.5 - expected
	gain := varPred / (varPred + 0.3*0.3)
	assert.InDelta(t, meanPred+gain*innovation, states["A"][1].Mean, 1e-9)
	assert.InDelta(t, (1-gain)*varPred, states["A"][1].Variance, 1e-9)
}

func TestComputeLatentStatesResetsOnStintChange(t *testing.T) {
	cfg := DefaultConfig()
	profiles := DefaultProfiles()
	laps := []derivedLap{
		dl("A", 2, 72.5, "MEDIUM", 1),
		dl("A", 3, 72.4, "MEDIUM", 1),
		dl("A", 4, 72.0, "SOFT", 2),
	}
	states := computeLatentStates(profiles, laps, cfg, 1.0)
	require.Len(t, states["A"], 3)
	// tyre change: belief snaps back to the fresh compound's reset pace
	assert.InDelta(t, 68.5, states["A"][2].Mean, 1e-9)
	assert.InDelta(t, 0.01, states["A"][2].Variance, 1e-9)
}

func TestComputeLatentStatesSkipsUnknownCompound(t *testing.T) {
	cfg := DefaultConfig()
	profiles := DefaultProfiles()
	laps := []derivedLap{
		dl("A", 2, 72.5, "MEDIUM", 1),
		dl("A", 3, 72.5, "PROTOTYPE", 1),
		dl("A", 4, 72.4, "MEDIUM", 1),
	}
	states := computeLatentStates(profiles, laps, cfg, 1.0)
	// the unknown-compound lap contributes nothing to the history
	require.Len(t, states["A"], 2)
}

func TestComputeLatentStatesPerDriver(t *testing.T) {
	cfg := DefaultConfig()
	profiles := DefaultProfiles()
	laps := []derivedLap{
		dl("A", 2, 72.5, "MEDIUM", 1),
		dl("A", 3, 72.4, "MEDIUM", 1),
		dl("B", 2, 72.0, "SOFT", 1),
	}
	states := computeLatentStates(profiles, laps, cfg, 1.0)
	require.Len(t, states["A"], 2)
	require.Len(t, states["B"], 1)
	// driver change starts a fresh filter even with the same stint id
	assert.InDelta(t, 68.5, states["B"][0].Mean, 1e-9)
}
