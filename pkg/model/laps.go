package model

import "time"

// TyreCategory groups compounds by construction.
type TyreCategory string

const (
	CategorySlick TyreCategory = "SLICK"
	CategoryInter TyreCategory = "INTER"
	CategoryWet   TyreCategory = "WET"
)

// TrackCondition describes the track surface wetness for a lap.
type TrackCondition string

const (
	ConditionDry  TrackCondition = "DRY"
	ConditionDamp TrackCondition = "DAMP"
	ConditionWet  TrackCondition = "WET"
)

// NormalizeCondition maps any unrecognized label to DRY.
// The second return value reports whether a normalization happened.
func NormalizeCondition(arg TrackCondition) (TrackCondition, bool) {
	switch arg {
	case ConditionDry, ConditionDamp, ConditionWet:
		return arg, false
	default:
		return ConditionDry, true
	}
}

// Lap is one timing record for one driver. Records are owned by the
// caller and are never mutated by the degradation model.
type Lap struct {
	Driver         string         `json:"driver"`
	LapNumber      int            `json:"lapNumber"`
	LapTime        time.Duration  `json:"lapTime"`
	Compound       string         `json:"compound"`
	Stint          int            `json:"stint"`
	TrackCondition TrackCondition `json:"trackCondition,omitempty"`
}
