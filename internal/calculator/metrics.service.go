package calculator

import (
	"assetplanner/internal/domain"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

type SimulationMetrics struct {
	// geometric annual growth of total assets over the horizon,
	// contributions included; 0 when the starting total is 0
	AnnualizedGrowth float64 `json:"annualizedGrowth"`
	// sample stdev of month-over-month total changes, annualized
	AnnualizedStdev float64 `json:"annualizedStdev"`
	// final investment gain as a fraction of the final total
	GainShare float64 `json:"gainShare"`
}

// CalculateMetrics derives summary statistics from a simulated ledger.
// It assumes the snapshots are in increasing month order, which is how
// the projection engine hands them out.
func CalculateMetrics(snapshots []domain.MonthlySnapshot) (*SimulationMetrics, error) {
	if len(snapshots) < 2 {
		return nil, fmt.Errorf("cannot calculate metrics on < 2 snapshots")
	}

	returns := calculateMonthlyReturns(snapshots)

	out := &SimulationMetrics{}

	if len(returns) >= 2 {
		stdev, err := stats.StandardDeviationSample(returns)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate stdev: %w", err)
		}
		out.AnnualizedStdev = stdev * math.Sqrt(12)
	}

	first := snapshots[0]
	final := snapshots[len(snapshots)-1]
	numYears := float64(final.MonthIndex-first.MonthIndex) / 12
	if first.TotalAssets > 0 && numYears > 0 {
		out.AnnualizedGrowth = math.Pow(final.TotalAssets/first.TotalAssets, 1/numYears) - 1
	}
	if final.TotalAssets > 0 {
		out.GainShare = final.InvestmentGain / final.TotalAssets
	}

	return out, nil
}

// calculateMonthlyReturns yields month-over-month relative changes of
// the total, skipping months whose prior total is 0 (nothing invested
// yet means no defined return).
func calculateMonthlyReturns(snapshots []domain.MonthlySnapshot) []float64 {
	returns := []float64{}
	for i := 1; i < len(snapshots); i++ {
		lastValue := snapshots[i-1].TotalAssets
		if lastValue == 0 {
			continue
		}
		returns = append(returns, (snapshots[i].TotalAssets-lastValue)/lastValue)
	}
	return returns
}
