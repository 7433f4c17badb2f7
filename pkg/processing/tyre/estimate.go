package tyre

import (
	"github.com/samber/lo"

	"github.com/Vishnu-Cyber-Blip/f1-race-replay/log"
	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/processing/stats"
)

const (
	minCompoundLaps  = 5
	minStintLaps     = 5
	minAnalysisLaps  = 3
	priorBlendWeight = 0.3
)

// estimateParameters refines each compound's degradation-rate prior with
// the slopes observed in this session. Each qualifying stint contributes
// one robust slope sample; negative slopes are measurement noise and are
// discarded rather than clamped. Per compound the observed median is
// blended with the prior (priorBlendWeight on the prior); compounds
// without evidence keep their prior untouched.
func estimateParameters(
	profiles map[string]*Profile,
	laps []derivedLap,
	cfg *Config,
	l *log.Logger,
) {
	for name, profile := range profiles {
		compoundLaps := lo.Filter(laps, func(dl derivedLap, _ int) bool {
			return dl.Compound == name
		})
		if len(compoundLaps) < minCompoundLaps {
			continue
		}
		slopes := make([]float64, 0)
		for _, stints := range groupStints(compoundLaps) {
			for _, stintLaps := range stints {
				if len(stintLaps) < minStintLaps {
					continue
				}
				analysis := analysisWindow(stintLaps, profile, cfg)
				if len(analysis) < minAnalysisLaps {
					continue
				}
				delta := deltaFromFirst(fuelCorrected(analysis, cfg.FuelEffect))
				if !stats.HasSpread(delta) {
					continue
				}
				slope, ok := stats.TheilSen(lapOnTyreSeq(len(analysis)), delta)
				if ok && slope > 0 {
					slopes = append(slopes, slope)
				}
			}
		}
		if len(slopes) == 0 {
			continue
		}
		observed := stats.Median(slopes)
		prior := profile.DegradationRate
		profile.DegradationRate = priorBlendWeight*prior +
			(1-priorBlendWeight)*observed
		l.Debug("degradation rate updated",
			log.String("compound", name),
			log.Int("stints", len(slopes)),
			log.Float64("prior", prior),
			log.Float64("observed", observed),
			log.Float64("fitted", profile.DegradationRate))
	}
}

// analysisWindow trims a stint to the laps used for slope fitting:
// warmup laps dropped from the front (when enabled) and the compound's
// analysis cap applied.
func analysisWindow(stintLaps []derivedLap, profile *Profile, cfg *Config) []derivedLap {
	out := stintLaps
	if cfg.EnableWarmup && profile.WarmupLaps > 0 && profile.WarmupLaps < len(out) {
		out = out[profile.WarmupLaps:]
	}
	if profile.MaxAnalysisLaps > 0 && len(out) > profile.MaxAnalysisLaps {
		out = out[:profile.MaxAnalysisLaps]
	}
	return out
}
