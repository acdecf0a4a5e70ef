package internal

import (
	"assetplanner/internal/domain"
	"fmt"
)

// ComputeProgress locates the user's real current holdings on the
// simulated trajectory. Division by zero never raises here: ratios and
// percentages against a zero total report as 0 by policy.
func ComputeProgress(params domain.SimulationParameters, snapshots []domain.MonthlySnapshot) (domain.ProgressMetrics, error) {
	if len(snapshots) == 0 {
		return domain.ProgressMetrics{}, fmt.Errorf("cannot compute progress on empty snapshot sequence")
	}

	actualTotal := float64(params.TotalActualCurrent)
	final := snapshots[len(snapshots)-1]

	matched := final.MonthIndex
	for _, snapshot := range snapshots {
		if snapshot.TotalAssets >= actualTotal {
			matched = snapshot.MonthIndex
			break
		}
	}

	metrics := domain.ProgressMetrics{
		MatchedMonthIndex:  matched,
		MatchedYears:       float64(matched) / 12,
		ActualDistribution: map[domain.AssetClass]float64{},
		FinalDistribution:  map[domain.AssetClass]float64{},
	}
	if params.Years > 0 {
		metrics.HorizonPercent = metrics.MatchedYears / float64(params.Years) * 100
	}
	if final.TotalAssets > 0 {
		metrics.ProgressRatio = actualTotal / final.TotalAssets
	}

	for _, class := range domain.AssetClasses() {
		metrics.ActualDistribution[class] = 0
		metrics.FinalDistribution[class] = 0
		if actualTotal > 0 {
			metrics.ActualDistribution[class] = float64(params.Classes[class].CurrentBalance) / actualTotal * 100
		}
		if final.TotalAssets > 0 {
			metrics.FinalDistribution[class] = final.Balances[class] / final.TotalAssets * 100
		}
	}

	return metrics, nil
}
