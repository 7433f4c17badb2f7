package tyre

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/model"
	"github.com/Vishnu-Cyber-Blip/f1-race-replay/testsupport/basedata"
)

// scenarioLaps builds one driver with a short HARD stint followed by a
// MEDIUM stint starting at lap 5. The trends are slightly negative, so
// every slope sample is discarded: all compounds keep their prior rates
// and no abrasion evidence accumulates.
func scenarioLaps() []model.Lap {
	laps := basedata.SyntheticStint("A", "HARD", 1, 2, 3, 69.5, -0.001, model.ConditionDry)
	laps = append(laps,
		basedata.SyntheticStint("A", "MEDIUM", 2, 5, 6, 69.0, -0.001, model.ConditionDry)...)
	return laps
}

func TestModelUnfittedState(t *testing.T) {
	m := NewModel()
	assert.False(t, m.Fitted())
	assert.InDelta(t, 1.0, m.TrackAbrasion(), 1e-9)

	_, err := m.Predict("A", 10, "")
	assert.ErrorIs(t, err, ErrNotFitted)
}

func TestModelFitEmptyInputStaysUnfitted(t *testing.T) {
	m := NewModel()
	m.Fit(nil)
	assert.False(t, m.Fitted())

	// a table that filters down to nothing behaves the same
	m.Fit([]model.Lap{{Driver: "A", LapNumber: 1, Compound: "SOFT", Stint: 1}})
	assert.False(t, m.Fitted())

	_, err := m.Predict("A", 10, "")
	assert.ErrorIs(t, err, ErrNotFitted)
}

func TestModelFitSampleSession(t *testing.T) {
	m := NewModel()
	m.Fit(basedata.SampleSession())
	require.True(t, m.Fitted())

	profiles := m.Profiles()
	for name, p := range profiles {
		if p.DegradationRate < 0 {
			t.Errorf("compound %s: negative degradation rate %f", name, p.DegradationRate)
		}
	}
	abr := m.TrackAbrasion()
	assert.GreaterOrEqual(t, abr, 0.7)
	assert.LessOrEqual(t, abr, 1.4)
}

func TestModelFitOnlyDriver(t *testing.T) {
	m := NewModel()
	m.Fit(basedata.SampleSession(), WithOnlyDriver("B"))
	require.True(t, m.Fitted())

	pred, err := m.Predict("A", 10, "")
	require.NoError(t, err)
	assert.Nil(t, pred)

	pred, err = m.Predict("B", 10, "")
	require.NoError(t, err)
	assert.NotNil(t, pred)
}

func TestModelCountsNormalizedConditions(t *testing.T) {
	laps := basedata.SyntheticStint("A", "MEDIUM", 1, 2, 6, 69.0, 0.0, "FOGGY")
	m := NewModel()
	m.Fit(laps)
	assert.Equal(t, 6, m.NormalizedConditions())
}

func TestModelProfilesReturnsCopy(t *testing.T) {
	m := NewModel()
	m.Fit(scenarioLaps())
	profiles := m.Profiles()
	p := profiles["MEDIUM"]
	p.DegradationRate = 99.0
	profiles["MEDIUM"] = p
	assert.InDelta(t, 0.03, m.Profiles()["MEDIUM"].DegradationRate, 1e-9)
}

func TestModelLatentPaceSnapshot(t *testing.T) {
	m := NewModel()
	m.Fit(scenarioLaps())
	states := m.LatentPace("A")
	require.NotEmpty(t, states)
	// 3 HARD laps + 6 MEDIUM laps processed
	assert.Len(t, states, 9)
	// first lap of the MEDIUM stint resets to its fresh pace
	assert.InDelta(t, 69.0, states[3].Mean, 1e-9)

	states[0].Mean = -1
	assert.NotEqual(t, -1.0, m.LatentPace("A")[0].Mean)

	assert.Nil(t, m.LatentPace("nobody"))
}
