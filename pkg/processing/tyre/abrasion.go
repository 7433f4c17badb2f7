package tyre

import (
	"github.com/samber/lo"

	"github.com/Vishnu-Cyber-Blip/f1-race-replay/log"
	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/model"
	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/processing/stats"
)

const (
	minAbrasionStintLaps = 8
	minAbrasionSamples   = 3
	abrasionMin          = 0.7
	abrasionMax          = 1.4
)

// estimateTrackAbrasion infers how aggressively this track surface wears
// tyres relative to the slick-compound baseline rates. Only slick stints
// on dry track contribute. With fewer than minAbrasionSamples qualifying
// stints the neutral factor 1.0 is returned; otherwise the median sample
// clamped to [abrasionMin, abrasionMax].
func estimateTrackAbrasion(laps []derivedLap, fuelEffect float64, l *log.Logger) float64 {
	samples := make([]float64, 0)
	for compound, baseRate := range abrasionBaseline {
		slickLaps := lo.Filter(laps, func(dl derivedLap, _ int) bool {
			return dl.Compound == compound && dl.TrackCondition == model.ConditionDry
		})
		if len(slickLaps) == 0 {
			continue
		}
		for driver, stints := range groupStints(slickLaps) {
			for stint, stintLaps := range stints {
				if len(stintLaps) < minAbrasionStintLaps {
					continue
				}
				delta := deltaFromFirst(fuelCorrected(stintLaps, fuelEffect))
				if !stats.HasSpread(delta) {
					continue
				}
				slope, ok := stats.TheilSen(lapOnTyreSeq(len(stintLaps)), delta)
				if !ok || slope <= 0 {
					continue
				}
				l.Debug("abrasion sample",
					log.String("compound", compound),
					log.String("driver", driver),
					log.Int("stint", stint),
					log.Float64("slope", slope),
					log.Float64("sample", slope/baseRate))
				samples = append(samples, slope/baseRate)
			}
		}
	}

	if len(samples) < minAbrasionSamples {
		l.Debug("not enough abrasion samples", log.Int("samples", len(samples)))
		return 1.0
	}
	factor := stats.Median(samples)
	if factor < abrasionMin {
		factor = abrasionMin
	} else if factor > abrasionMax {
		factor = abrasionMax
	}
	return factor
}
