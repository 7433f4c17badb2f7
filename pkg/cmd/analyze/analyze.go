package analyze

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Vishnu-Cyber-Blip/f1-race-replay/log"
	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/cmd/util"
	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/config"
	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/processing/tyre"
)

func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "fit the degradation model on a session and report fitted parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze()
		},
	}
	cmd.Flags().StringVar(&config.Driver, "driver", "",
		"restrict the fit to this driver")
	return cmd
}

func runAnalyze() error {
	l, err := util.SetupLogger()
	if err != nil {
		return err
	}
	laps, err := util.LoadLaps()
	if err != nil {
		return err
	}
	m, err := util.BuildModel(l)
	if err != nil {
		return err
	}

	l.Info("fitting model",
		log.Int("laps", len(laps)),
		log.String("session", config.SessionFile))
	fitOpts := []tyre.FitOption{}
	if config.Driver != "" {
		fitOpts = append(fitOpts, tyre.WithOnlyDriver(config.Driver))
	}
	m.Fit(laps, fitOpts...)
	if !m.Fitted() {
		return fmt.Errorf("no usable laps in %s", config.SessionFile)
	}

	fmt.Printf("Track abrasion factor: %.3f\n", m.TrackAbrasion())
	fmt.Print(tyre.RateReport(m.Profiles()))
	return nil
}
