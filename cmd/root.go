package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	analyzeCmd "github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/cmd/analyze"
	healthCmd "github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/cmd/health"
	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/config"
	"github.com/Vishnu-Cyber-Blip/f1-race-replay/version"
)

const envPrefix = "F1R"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "f1replay",
	Short:   "Tyre degradation analysis for recorded race sessions",
	Long:    ``,
	Version: version.FullVersion,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.f1replay.yml)")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level",
		"info",
		"controls the log level (zap log level values)")
	rootCmd.PersistentFlags().StringVar(&config.LogFormat, "log-format",
		"text",
		"log format (text or json)")
	rootCmd.PersistentFlags().StringVar(&config.LogFilters, "log-filters",
		"",
		"zapfilter rules to raise verbosity of selected loggers")

	rootCmd.PersistentFlags().StringVar(&config.SessionFile, "session",
		"",
		"path to the exported session lap table (csv or json)")
	rootCmd.PersistentFlags().StringVar(&config.ProfilesFile, "profiles",
		"",
		"yaml file with compound prior overrides")
	rootCmd.PersistentFlags().Float64Var(&config.SigmaEpsilon, "sigma-epsilon",
		0.3,
		"observation noise std-dev (seconds)")
	rootCmd.PersistentFlags().Float64Var(&config.SigmaEta, "sigma-eta",
		0.1,
		"process noise std-dev (seconds)")
	rootCmd.PersistentFlags().Float64Var(&config.FuelEffect, "fuel-effect",
		0.032,
		"pace cost per kg of fuel (seconds)")
	rootCmd.PersistentFlags().Float64Var(&config.StartingFuel, "starting-fuel",
		110.0,
		"fuel mass at lap 1 (kg)")
	rootCmd.PersistentFlags().Float64Var(&config.FuelBurnRate, "fuel-burn-rate",
		1.6,
		"fuel burned per lap (kg)")
	rootCmd.PersistentFlags().BoolVar(&config.NoWarmup, "no-warmup",
		false,
		"disable warmup-lap trimming in the parameter estimator")
	rootCmd.PersistentFlags().BoolVar(&config.NoAbrasion, "no-abrasion",
		false,
		"disable track abrasion estimation")

	// add commands here
	rootCmd.AddCommand(analyzeCmd.NewAnalyzeCmd())
	rootCmd.AddCommand(healthCmd.NewHealthCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".f1replay" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".f1replay")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --log-level to F1R_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
