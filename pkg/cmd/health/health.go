package health

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/cmd/util"
	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/model"
	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/processing/tyre"
)

var (
	driver    string
	lap       int
	condition string
)

func NewHealthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "query tyre health for one driver at one lap",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHealth()
		},
	}
	cmd.Flags().StringVar(&driver, "driver", "", "driver to query")
	cmd.Flags().IntVar(&lap, "lap", 0, "lap number to query")
	cmd.Flags().StringVar(&condition, "condition", "",
		"override the track condition (DRY, DAMP, WET)")
	//nolint:errcheck // flags exist
	cmd.MarkFlagRequired("driver")
	//nolint:errcheck // flags exist
	cmd.MarkFlagRequired("lap")
	return cmd
}

func runHealth() error {
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
	m.Fit(laps)

	pred, err := m.Predict(driver, lap, model.TrackCondition(condition))
	if err != nil {
		return err
	}
	if pred == nil {
		fmt.Printf("no data for driver %s at lap %d\n", driver, lap)
		return nil
	}
	bar := tyre.FormatHealthBar(pred.Health, 100, 12)
	fmt.Println(pred.Summary())
	fmt.Printf("  health %d%% (condition %s, penalty %.1f, abrasion %.3f)\n",
		pred.Health, pred.TrackCondition, pred.MismatchPenalty, pred.TrackAbrasion)
	fmt.Printf("  effective degradation %.4f s/lap, fill %.0f/%d\n",
		pred.EffectiveDegradation, bar.FillWidth, bar.Width)
	return nil
}
