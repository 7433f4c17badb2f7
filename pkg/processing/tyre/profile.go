package tyre

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/model"
)

// Profile holds the per-compound parameters. DegradationRate starts as a
// prior and is adjusted once during Fit; all other fields stay fixed.
type Profile struct {
	Name            string
	Category        model.TyreCategory
	DegradationRate float64 // seconds lost per lap of wear
	ResetPace       float64 // expected lap time on lap 1 of a fresh set, net of fuel (s)
	WarmupLaps      int
	MaxAnalysisLaps int // 0 means no cap
	MaxDegradation  float64
}

func (p *Profile) validate() error {
	if p.DegradationRate < 0 {
		return fmt.Errorf("profile %s: degradation rate must be non-negative: %f",
			p.Name, p.DegradationRate)
	}
	if p.WarmupLaps < 0 {
		return fmt.Errorf("profile %s: warmup laps must be non-negative: %d",
			p.Name, p.WarmupLaps)
	}
	return nil
}

// DefaultProfiles returns the built-in compound priors.
func DefaultProfiles() map[string]*Profile {
	return map[string]*Profile{
		"HARD": {
			Name: "HARD", Category: model.CategorySlick,
			DegradationRate: 0.01, ResetPace: 69.5,
			WarmupLaps: 3, MaxDegradation: 2.0,
		},
		"MEDIUM": {
			Name: "MEDIUM", Category: model.CategorySlick,
			DegradationRate: 0.03, ResetPace: 69.0,
			WarmupLaps: 3, MaxDegradation: 2.0,
		},
		"SOFT": {
			Name: "SOFT", Category: model.CategorySlick,
			DegradationRate: 0.05, ResetPace: 68.5,
			WarmupLaps: 1, MaxAnalysisLaps: 10, MaxDegradation: 2.0,
		},
		"INTERMEDIATE": {
			Name: "INTERMEDIATE", Category: model.CategoryInter,
			DegradationRate: 0.04, ResetPace: 75.0,
			WarmupLaps: 2, MaxDegradation: 3.0,
		},
		"WET": {
			Name: "WET", Category: model.CategoryWet,
			DegradationRate: 0.02, ResetPace: 80.0,
			WarmupLaps: 2, MaxDegradation: 2.5,
		},
	}
}

// expected degradation per lap on a neutral surface, used as the
// reference when estimating track abrasion
var abrasionBaseline = map[string]float64{
	"HARD":   0.003,
	"MEDIUM": 0.009,
	"SOFT":   0.015,
}

// ProfileOverride allows adjusting selected prior values of one compound
// via a YAML file. Only set fields are applied.
type ProfileOverride struct {
	DegradationRate *float64 `yaml:"degradationRate"`
	ResetPace       *float64 `yaml:"resetPace"`
	WarmupLaps      *int     `yaml:"warmupLaps"`
	MaxAnalysisLaps *int     `yaml:"maxAnalysisLaps"`
	MaxDegradation  *float64 `yaml:"maxDegradation"`
}

// ApplyProfileOverrides parses YAML override data (compound name to
// override block) and applies it to profiles. Unknown compounds are
// rejected; the result is validated.
func ApplyProfileOverrides(profiles map[string]*Profile, data []byte) error {
	overrides := map[string]ProfileOverride{}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("parsing profile overrides: %w", err)
	}
	for name, o := range overrides {
		p, ok := profiles[name]
		if !ok {
			return fmt.Errorf("unknown compound in overrides: %s", name)
		}
		if o.DegradationRate != nil {
			p.DegradationRate = *o.DegradationRate
		}
		if o.ResetPace != nil {
			p.ResetPace = *o.ResetPace
		}
		if o.WarmupLaps != nil {
			p.WarmupLaps = *o.WarmupLaps
		}
		if o.MaxAnalysisLaps != nil {
			p.MaxAnalysisLaps = *o.MaxAnalysisLaps
		}
		if o.MaxDegradation != nil {
			p.MaxDegradation = *o.MaxDegradation
		}
		if err := p.validate(); err != nil {
			return err
		}
	}
	return nil
}
