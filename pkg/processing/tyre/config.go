package tyre

import (
	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/model"
)

type (
	// PenaltyKey addresses one entry of the mismatch penalty table.
	PenaltyKey struct {
		Category  model.TyreCategory
		Condition model.TrackCondition
	}

	// Config holds the tunables of the degradation model.
	Config struct {
		SigmaEpsilon        float64 // observation noise std-dev (s)
		SigmaEta            float64 // process noise std-dev (s)
		FuelEffect          float64 // pace cost per kg of fuel (s/kg)
		StartingFuel        float64 // fuel mass at lap 1 (kg)
		FuelBurnRate        float64 // fuel burned per lap (kg)
		EnableWarmup        bool    // trim warmup laps before slope fitting
		EnableTrackAbrasion bool    // estimate the surface abrasion factor

		// MismatchPenalties is the additional wear penalty when a compound
		// category runs on an unsuited track condition. Matched pairs are 0.
		// Built once; treated as immutable afterwards.
		MismatchPenalties map[PenaltyKey]float64
	}
)

func DefaultMismatchPenalties() map[PenaltyKey]float64 {
	return map[PenaltyKey]float64{
		{model.CategorySlick, model.ConditionDry}:  0.0,
		{model.CategorySlick, model.ConditionDamp}: 2.0,
		{model.CategorySlick, model.ConditionWet}:  8.0,
		{model.CategoryInter, model.ConditionDry}:  1.5,
		{model.CategoryInter, model.ConditionDamp}: 0.0,
		{model.CategoryInter, model.ConditionWet}:  0.5,
		{model.CategoryWet, model.ConditionDry}:    4.0,
		{model.CategoryWet, model.ConditionDamp}:   1.0,
		{model.CategoryWet, model.ConditionWet}:    0.0,
	}
}

func DefaultConfig() *Config {
	return &Config{
		SigmaEpsilon:        0.3,
		SigmaEta:            0.1,
		FuelEffect:          0.032,
		StartingFuel:        110.0,
		FuelBurnRate:        1.6,
		EnableWarmup:        true,
		EnableTrackAbrasion: true,
		MismatchPenalties:   DefaultMismatchPenalties(),
	}
}

// MismatchPenalty looks up the penalty for a category/condition pair.
// Unknown pairs are penalty-free.
func (c *Config) MismatchPenalty(
	cat model.TyreCategory,
	cond model.TrackCondition,
) float64 {
	return c.MismatchPenalties[PenaltyKey{Category: cat, Condition: cond}]
}
