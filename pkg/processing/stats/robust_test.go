package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "empty", values: []float64{}, want: 0},
		{name: "single", values: []float64{3}, want: 3},
		{name: "odd", values: []float64{5, 1, 3}, want: 3},
		{name: "even", values: []float64{4, 1, 3, 2}, want: 2.5},
		{name: "even unsorted", values: []float64{9, 1}, want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Median(tt.values), 1e-9)
		})
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Median(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestHasSpread(t *testing.T) {
	assert.False(t, HasSpread(nil))
	assert.False(t, HasSpread([]float64{1}))
	assert.False(t, HasSpread([]float64{2, 2, 2}))
	assert.True(t, HasSpread([]float64{2, 2, 2.1}))
}

func TestTheilSen(t *testing.T) {
	t.Run("exact linear", func(t *testing.T) {
		xs := []float64{1, 2, 3, 4, 5}
		ys := []float64{0.0, 0.05, 0.10, 0.15, 0.20}
		slope, ok := TheilSen(xs, ys)
		assert.True(t, ok)
		assert.InDelta(t, 0.05, slope, 1e-9)
	})
	t.Run("outlier resistant", func(t *testing.T) {
		// one lap ruined by traffic must not drag the slope
		xs := []float64{1, 2, 3, 4, 5, 6, 7}
		ys := []float64{0.0, 1.0, 2.0, 3.0, 25.0, 5.0, 6.0}
		slope, ok := TheilSen(xs, ys)
		assert.True(t, ok)
		assert.InDelta(t, 1.0, slope, 1e-9)
	})
	t.Run("too few points", func(t *testing.T) {
		_, ok := TheilSen([]float64{1}, []float64{1})
		assert.False(t, ok)
	})
	t.Run("degenerate x", func(t *testing.T) {
		_, ok := TheilSen([]float64{2, 2, 2}, []float64{1, 2, 3})
		assert.False(t, ok)
	})
	t.Run("mismatched lengths", func(t *testing.T) {
		_, ok := TheilSen([]float64{1, 2}, []float64{1})
		assert.False(t, ok)
	})
}
