package cmd

import (
	"assetplanner/internal"
	"assetplanner/internal/app"
	"assetplanner/internal/domain"
	"assetplanner/internal/export"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation and print the yearly summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfigOrDefault(flagConfigPath)

		handler := app.SimulationHandler{}
		result, err := handler.Run(newRunContext(), app.RunSimulationInput{
			Inputs: app.InputsFromConfig(cfg),
		})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "経過年数\t年月\t株式\t債券\t預金\t総資産\t積立合計\t運用益")
		for _, entry := range result.YearlyRollup {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				entry.ElapsedYears,
				export.FormatYearMonth(entry.Date),
				internal.FormatJapaneseYen(entry.Balances[domain.AssetClassStock]),
				internal.FormatJapaneseYen(entry.Balances[domain.AssetClassBond]),
				internal.FormatJapaneseYen(entry.Balances[domain.AssetClassSavings]),
				internal.FormatJapaneseYen(entry.TotalAssets),
				internal.FormatJapaneseYen(entry.CumulativeContributions),
				internal.FormatJapaneseYen(entry.InvestmentGain),
			)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if result.Params.TotalActualCurrent > 0 {
			fmt.Printf("\nシミュレーション上の進捗点: %.1f年目 (全体の%.1f%%)\n",
				result.Progress.MatchedYears, result.Progress.HorizonPercent)
			fmt.Printf("最終予測額に対する現在の割合: %.1f%%\n", result.Progress.ProgressRatio*100)
		}

		fmt.Printf("\n年率換算成長率: %.2f%%  年率換算変動: %.2f%%  運用益比率: %.1f%%\n",
			result.Metrics.AnnualizedGrowth*100,
			result.Metrics.AnnualizedStdev*100,
			result.Metrics.GainShare*100,
		)

		return nil
	},
}
