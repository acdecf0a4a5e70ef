package cmd

import (
	"assetplanner/internal/app"
	"assetplanner/internal/export"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run the simulation and write the monthly ledger as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfigOrDefault(flagConfigPath)

		handler := app.SimulationHandler{}
		result, err := handler.Run(newRunContext(), app.RunSimulationInput{
			Inputs: app.InputsFromConfig(cfg),
		})
		if err != nil {
			return err
		}

		bytes, err := export.MonthlyCSV(result.Snapshots)
		if err != nil {
			return err
		}

		out := flagExportOut
		if out == "" {
			out = export.DefaultFilename(time.Now())
		}
		if err := os.WriteFile(out, bytes, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}

		fmt.Printf("wrote %d rows to %s\n", len(result.Snapshots), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "output path (defaults to a dated filename)")
}
