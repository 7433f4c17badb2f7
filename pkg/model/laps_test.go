package model

import "testing"

func TestNormalizeCondition(t *testing.T) {
	tests := []struct {
		name           string
		arg            TrackCondition
		want           TrackCondition
		wantNormalized bool
	}{
		{name: "dry", arg: ConditionDry, want: ConditionDry, wantNormalized: false},
		{name: "damp", arg: ConditionDamp, want: ConditionDamp, wantNormalized: false},
		{name: "wet", arg: ConditionWet, want: ConditionWet, wantNormalized: false},
		{name: "empty", arg: "", want: ConditionDry, wantNormalized: true},
		{name: "unknown label", arg: "SNOW", want: ConditionDry, wantNormalized: true},
		{name: "lowercase is unknown", arg: "dry", want: ConditionDry, wantNormalized: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, normalized := NormalizeCondition(tt.arg)
			if got != tt.want || normalized != tt.wantNormalized {
				t.Errorf("NormalizeCondition(%q) = (%q, %v), want (%q, %v)",
					tt.arg, got, normalized, tt.want, tt.wantNormalized)
			}
		})
	}
}
