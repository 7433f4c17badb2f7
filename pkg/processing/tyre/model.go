package tyre

import (
	"github.com/Vishnu-Cyber-Blip/f1-race-replay/log"
	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/model"
	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/utils/cache"
	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/utils/cache/loadercache"
)

type (
	// Model estimates per-compound tyre degradation from a session's lap
	// table and answers per-driver health queries. Fit is a one-shot
	// batch pass and must not run concurrently with Predict; once fitted
	// the model is read-mostly and safe to query from multiple callers.
	Model struct {
		cfg      *Config
		profiles map[string]*Profile

		trackAbrasion  float64
		latent         map[string][]PaceState
		lapsByDriver   map[string][]derivedLap
		normalizedCond int
		fitted         bool

		predictions cache.Cache[predictionKey, Prediction]
		l           *log.Logger
	}
	Option    func(m *Model)
	FitOption func(o *fitOptions)

	fitOptions struct {
		onlyDriver string
	}
)

func WithConfig(cfg *Config) Option {
	return func(m *Model) {
		m.cfg = cfg
	}
}

func WithLogger(arg *log.Logger) Option {
	return func(m *Model) {
		m.l = arg
	}
}

// WithProfiles replaces the built-in compound priors.
func WithProfiles(profiles map[string]*Profile) Option {
	return func(m *Model) {
		m.profiles = profiles
	}
}

// WithOnlyDriver restricts a fit pass to a single driver's laps.
func WithOnlyDriver(driver string) FitOption {
	return func(o *fitOptions) {
		o.onlyDriver = driver
	}
}

func NewModel(opts ...Option) *Model {
	m := &Model{
		cfg:           DefaultConfig(),
		profiles:      DefaultProfiles(),
		trackAbrasion: 1.0,
		l:             log.Default().Named("tyre"),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.predictions = loadercache.New(
		loadercache.WithLoader(func(key predictionKey) (*Prediction, error) {
			return m.computePrediction(key.driver, key.lap, ""), nil
		}),
		loadercache.WithLogger[predictionKey, Prediction](m.l),
	)
	return m
}

// Fit runs the batch estimation pass: prepare the lap table, estimate
// the track abrasion factor, refine the compound degradation rates and
// compute the latent pace history. An empty (or entirely filtered) input
// leaves the model in its unfitted prior state.
func (m *Model) Fit(laps []model.Lap, opts ...FitOption) {
	fo := &fitOptions{}
	for _, opt := range opts {
		opt(fo)
	}

	prepared, normalized := prepareLaps(m.cfg, laps, fo.onlyDriver)
	m.normalizedCond = normalized
	if len(prepared) == 0 {
		m.l.Info("no usable laps, model stays unfitted",
			log.Int("input", len(laps)))
		return
	}

	if m.cfg.EnableTrackAbrasion {
		m.trackAbrasion = estimateTrackAbrasion(prepared, m.cfg.FuelEffect, m.l)
	} else {
		m.trackAbrasion = 1.0
	}
	estimateParameters(m.profiles, prepared, m.cfg, m.l)
	m.latent = computeLatentStates(m.profiles, prepared, m.cfg, m.trackAbrasion)

	m.lapsByDriver = make(map[string][]derivedLap)
	for _, lap := range prepared {
		m.lapsByDriver[lap.Driver] = append(m.lapsByDriver[lap.Driver], lap)
	}
	m.fitted = true
	m.ClearCache()

	m.l.Info("model fitted",
		log.Int("laps", len(prepared)),
		log.Int("drivers", len(m.lapsByDriver)),
		log.Int("normalizedConditions", normalized),
		log.Float64("trackAbrasion", m.trackAbrasion))
	for name, p := range m.profiles {
		m.l.Debug("degradation rate",
			log.String("compound", name),
			log.Float64("rate", p.DegradationRate))
	}
}

// Fitted reports whether a fit pass has completed successfully.
func (m *Model) Fitted() bool {
	return m.fitted
}

// TrackAbrasion returns the fitted surface abrasion factor (1.0 before fit).
func (m *Model) TrackAbrasion() float64 {
	return m.trackAbrasion
}

// NormalizedConditions returns how many track-condition labels were
// rewritten to DRY during the last fit. Laps without a label default
// to DRY silently and are not counted.
func (m *Model) NormalizedConditions() int {
	return m.normalizedCond
}

// Profiles returns a copy of the compound registry for diagnostic
// display. Mutating the result does not affect the model.
func (m *Model) Profiles() map[string]Profile {
	out := make(map[string]Profile, len(m.profiles))
	for name, p := range m.profiles {
		out[name] = *p
	}
	return out
}

// LatentPace returns the filter's (mean, variance) history for a driver,
// one entry per processed lap, or nil if the driver is unknown. The
// returned slice is a snapshot.
func (m *Model) LatentPace(driver string) []PaceState {
	states, ok := m.latent[driver]
	if !ok {
		return nil
	}
	out := make([]PaceState, len(states))
	copy(out, states)
	return out
}
