package config

// this holds the resolved configuration values from CLI
var (
	LogLevel   string // sets the log level (zap log level values)
	LogFormat  string // text vs json
	LogFilters string // zapfilter rules for scoped debug output

	SessionFile  string // path to the exported session lap table (csv or json)
	ProfilesFile string // optional yaml file with compound prior overrides
	Driver       string // restrict the fit to this driver

	SigmaEpsilon float64 // observation noise std-dev
	SigmaEta     float64 // process noise std-dev
	FuelEffect   float64 // pace cost per kg of fuel
	StartingFuel float64 // fuel mass at lap 1
	FuelBurnRate float64 // fuel burned per lap
	NoWarmup     bool    // disable warmup-lap trimming
	NoAbrasion   bool    // disable track abrasion estimation
)
