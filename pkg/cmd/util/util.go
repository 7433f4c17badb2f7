package util

import (
	"fmt"
	"os"

	"github.com/Vishnu-Cyber-Blip/f1-race-replay/log"
	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/config"
	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/model"
	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/processing/tyre"
	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/session"
)

// SetupLogger initializes the default logger from the CLI config.
func SetupLogger() (*log.Logger, error) {
	return log.InitLogger(config.LogFormat, config.LogLevel, config.LogFilters)
}

// LoadLaps reads the session lap table named by the CLI config.
func LoadLaps() ([]model.Lap, error) {
	if config.SessionFile == "" {
		return nil, fmt.Errorf("no session file given (use --session)")
	}
	return session.Load(config.SessionFile)
}

// BuildModel creates a degradation model from the CLI config, applying
// profile overrides when configured.
func BuildModel(l *log.Logger) (*tyre.Model, error) {
	cfg := tyre.DefaultConfig()
	cfg.SigmaEpsilon = config.SigmaEpsilon
	cfg.SigmaEta = config.SigmaEta
	cfg.FuelEffect = config.FuelEffect
	cfg.StartingFuel = config.StartingFuel
	cfg.FuelBurnRate = config.FuelBurnRate
	cfg.EnableWarmup = !config.NoWarmup
	cfg.EnableTrackAbrasion = !config.NoAbrasion

	profiles := tyre.DefaultProfiles()
	if config.ProfilesFile != "" {
		data, err := os.ReadFile(config.ProfilesFile)
		if err != nil {
			return nil, fmt.Errorf("reading profile overrides: %w", err)
		}
		if err := tyre.ApplyProfileOverrides(profiles, data); err != nil {
			return nil, err
		}
	}
	return tyre.NewModel(
		tyre.WithConfig(cfg),
		tyre.WithProfiles(profiles),
		tyre.WithLogger(l.Named("tyre")),
	), nil
}
