package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Median returns the median of values (middle value, or the mean of the
// two middle values for an even count). Returns 0 for empty input.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// HasSpread reports whether values show any variation at all. Identical
// values (or fewer than two) have no spread.
func HasSpread(values []float64) bool {
	if len(values) < 2 {
		return false
	}
	return stat.StdDev(values, nil) > 0
}

// TheilSen fits a robust linear trend through (xs, ys): the median of all
// pairwise slopes. Insensitive to outliers such as laps affected by
// traffic or yellow flags. The second return value is false if no slope
// could be computed.
func TheilSen(xs, ys []float64) (float64, bool) {
	if len(xs) != len(ys) || len(xs) < 2 {
		return 0, false
	}
	slopes := make([]float64, 0, len(xs)*(len(xs)-1)/2)
	for i := 0; i < len(xs); i++ {
		for j := i + 1; j < len(xs); j++ {
			if xs[j] == xs[i] {
				continue
			}
			slopes = append(slopes, (ys[j]-ys[i])/(xs[j]-xs[i]))
		}
	}
	if len(slopes) == 0 {
		return 0, false
	}
	return Median(slopes), true
}
